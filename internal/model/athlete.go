package model

import "time"

// Athlete is a registered athlete.
//
// NationalID is the natural key, unique across all athletes. CategoryID and
// TrainingCenterID reference rows that must exist at write time; the read
// paths resolve them into the embedded Category and TrainingCenter values.
// CreatedAt is set once on insert and never changes.
type Athlete struct {
	ID               int64
	Name             string
	NationalID       string
	Age              int
	Weight           float64
	Height           float64
	Sex              string
	CategoryID       int64
	TrainingCenterID int64
	CreatedAt        time.Time

	// Category and TrainingCenter are populated by read queries that join
	// the reference tables. They are nil on write-only paths.
	Category       *Category
	TrainingCenter *TrainingCenter
}
