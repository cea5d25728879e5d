package models

import "time"

// WeightRecordDB is a measurement submitted by a box. It is a staging
// row: not yet attributed to a child, never mutated after insert.
type WeightRecordDB struct {
	ID         int64     `json:"id" db:"id"`         // Primary key
	BoxID      string    `json:"box_id" db:"box_id"` // Device identifier
	Weight     float64   `json:"weight" db:"weight"`
	Length     float64   `json:"length" db:"length"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// RecordDB is a measurement claimed into a child's permanent history.
type RecordDB struct {
	ID         int64     `json:"id" db:"id"`
	ChildID    int64     `json:"child_id" db:"child_id"` // Owning child
	BoxID      string    `json:"box_id" db:"box_id"`
	Weight     float64   `json:"weight" db:"weight"`
	Length     float64   `json:"length" db:"length"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}
