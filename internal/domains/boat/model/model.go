package model

import "github.com/Lucasteinmann/Aarebooking/shared/model"

const (
	TableName  = "boats"
	EntityName = "boat"

	FieldID             = "boat_id"
	FieldName           = "name"
	FieldUnitPrice      = "unit_price"
	FieldTotalInventory = "total_inventory"
	FieldActive         = "active"
)

// Boat is one rentable craft type of the master catalog. TotalInventory is
// the owned stock shared by every time slot of a rental day.
type Boat struct {
	ID             string  `db:"boat_id"`
	Name           string  `db:"name"`
	UnitPrice      float64 `db:"unit_price"`
	TotalInventory int     `db:"total_inventory"`
	Active         bool    `db:"active"`
	model.Metadata
}
