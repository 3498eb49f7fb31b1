package model

// Step is the stage a booking session is in. Sessions move selection ->
// detailsEntry on proceed, back again on back, and end in committed once a
// submission succeeded.
type Step string

const (
	StepSelection    Step = "selection"
	StepDetailsEntry Step = "detailsEntry"
	StepCommitted    Step = "committed"
)

const EntityName = "session"

// Line is one catalog item inside a session, carrying the remaining
// availability loaded for the chosen date and the quantity picked so far.
type Line struct {
	ItemID    string
	Name      string
	UnitPrice float64
	Available int
	Count     int
}

// SnapshotLine is a frozen selection line. The snapshot is taken when the
// customer proceeds to details entry and is what gets submitted, regardless
// of later availability changes.
type SnapshotLine struct {
	ItemID    string
	Name      string
	UnitPrice float64
	Quantity  int
	LineTotal float64
}
