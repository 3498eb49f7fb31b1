package dto

import (
	bookingDto "github.com/Lucasteinmann/Aarebooking/internal/domains/booking/model/dto"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/session/model"
)

type ChooseDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type ChooseTimeRequest struct {
	Time string `json:"time" validate:"required,datetime=15:04"`
}

type AdjustQuantityRequest struct {
	ItemID string `json:"item_id" validate:"required,max=50"`
	Change int    `json:"change"  validate:"required"`
}

type ConfirmRequest struct {
	Contact bookingDto.ContactDetails `json:"contact" validate:"required"`
}

type SessionLineResponse struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Available int     `json:"available"`
	Count     int     `json:"count"`
}

type SnapshotLineResponse struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type SessionResponse struct {
	ID        string                 `json:"session_id"`
	Step      model.Step             `json:"step"`
	Date      string                 `json:"date,omitempty"`
	Time      string                 `json:"time,omitempty"`
	Loading   bool                   `json:"loading"`
	LoadError string                 `json:"load_error,omitempty"`
	Slots     []string               `json:"slots"`
	Lines     []SessionLineResponse  `json:"lines"`
	Snapshot  []SnapshotLineResponse `json:"snapshot,omitempty"`
	TotalCost float64                `json:"total_cost"`
}

func NewSessionLines(lines []model.Line) []SessionLineResponse {
	res := make([]SessionLineResponse, len(lines))
	for i, line := range lines {
		res[i] = SessionLineResponse{
			ItemID:    line.ItemID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Available: line.Available,
			Count:     line.Count,
		}
	}

	return res
}

func NewSnapshotLines(lines []model.SnapshotLine) []SnapshotLineResponse {
	res := make([]SnapshotLineResponse, len(lines))
	for i, line := range lines {
		res[i] = SnapshotLineResponse{
			ItemID:    line.ItemID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal,
		}
	}

	return res
}
