package model

import (
	"github.com/Lucasteinmann/Aarebooking/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "booking_id"
	FieldBookingDate = "booking_date"
	FieldBookingTime = "booking_time"
	FieldItemID      = "item_id"
	FieldQuantity    = "quantity"
)

// BookingLine is one reserved craft type within a booking. A customer
// confirming three different craft on one date produces three rows that share
// the same contact details, date and time slot.
type BookingLine struct {
	ID              string  `db:"booking_id"`
	BookingDate     string  `db:"booking_date"`
	BookingTime     string  `db:"booking_time"`
	ItemID          string  `db:"item_id"`
	Quantity        int     `db:"quantity"`
	UnitPrice       float64 `db:"unit_price"`
	LineTotal       float64 `db:"line_total"`
	CustomerName    string  `db:"customer_name"`
	CustomerPhone   string  `db:"customer_phone"`
	CustomerEmail   string  `db:"customer_email"`
	CustomerAddress string  `db:"customer_address"`
	model.Metadata
}
