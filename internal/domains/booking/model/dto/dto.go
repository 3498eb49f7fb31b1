package dto

import (
	boatModel "github.com/Lucasteinmann/Aarebooking/internal/domains/boat/model"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/booking/model"
)

// AvailabilityItem is one catalog entry with its remaining inventory on a
// given date. Remaining never goes below zero, even when the ledger holds
// more quantity than the current inventory allows.
type AvailabilityItem struct {
	ID             string  `json:"item_id"`
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unit_price"`
	TotalInventory int     `json:"total_inventory"`
	Booked         int     `json:"booked"`
	Remaining      int     `json:"remaining"`
}

type GetAvailabilityResponse struct {
	Date  string             `json:"date"`
	Items []AvailabilityItem `json:"items"`
}

// ContactDetails carries the customer fields collected on submission. Field
// order matches the order checks are reported in: email format, confirmation
// match, phone, then name and address.
type ContactDetails struct {
	Email             string `json:"email"              validate:"required,email"`
	EmailConfirmation string `json:"email_confirmation" validate:"required,eqfield=Email"`
	Phone             string `json:"phone"              validate:"required,phone"`
	Name              string `json:"name"               validate:"required,max=200"`
	Address           string `json:"address"            validate:"required,max=500"`
}

type SubmitBookingLine struct {
	ItemID   string `json:"item_id"  validate:"required,max=50"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type SubmitBookingRequest struct {
	Date    string              `json:"date"  validate:"required,datetime=2006-01-02"`
	Time    string              `json:"time"  validate:"required,datetime=15:04"`
	Lines   []SubmitBookingLine `json:"lines" validate:"required,min=1,dive"`
	Contact ContactDetails      `json:"contact" validate:"required"`
}

type BookingLineResponse struct {
	ID        string  `json:"booking_id"`
	ItemID    string  `json:"item_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type SubmitBookingResponse struct {
	Date      string                `json:"date"`
	Time      string                `json:"time"`
	Lines     []BookingLineResponse `json:"lines"`
	TotalCost float64               `json:"total_cost"`
}

func (r *SubmitBookingResponse) FromModels(models []model.BookingLine) {
	if len(models) == 0 {
		return
	}

	r.Date = models[0].BookingDate
	r.Time = models[0].BookingTime

	r.Lines = make([]BookingLineResponse, len(models))
	for i, mod := range models {
		r.Lines[i] = BookingLineResponse{
			ID:        mod.ID,
			ItemID:    mod.ItemID,
			Quantity:  mod.Quantity,
			UnitPrice: mod.UnitPrice,
			LineTotal: mod.LineTotal,
		}
		r.TotalCost += mod.LineTotal
	}
}

// NewAvailabilityItems projects the boat catalog onto a booked-quantity map.
// Catalog order is preserved and ledger rows for unknown items are ignored,
// since the booked map is keyed by catalog lookups only.
func NewAvailabilityItems(catalog []boatModel.Boat, booked map[string]int) []AvailabilityItem {
	items := make([]AvailabilityItem, len(catalog))

	for i, boat := range catalog {
		qty := booked[boat.ID]

		remaining := boat.TotalInventory - qty
		if remaining < 0 {
			remaining = 0
		}

		items[i] = AvailabilityItem{
			ID:             boat.ID,
			Name:           boat.Name,
			UnitPrice:      boat.UnitPrice,
			TotalInventory: boat.TotalInventory,
			Booked:         qty,
			Remaining:      remaining,
		}
	}

	return items
}
