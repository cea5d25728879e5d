package models

import "time"

// ChildDB represents a child record in the database.
type ChildDB struct {
	ID               int64     `json:"id" db:"id"`                 // Primary key
	Name             string    `json:"name" db:"name"`             // Child name
	BirthDate        *DateTime `json:"birth_date" db:"birth_date"` // Optional
	BirthPlace       *string   `json:"birth_place" db:"birth_place"`
	Weight           *float64  `json:"weight" db:"weight"` // Last saved weight, kg
	Length           *float64  `json:"length" db:"length"` // Last saved length, cm
	WeightRecordedAt *DateTime `json:"weight_recorded_at" db:"weight_recorded_at"`
	ParentID         int64     `json:"parent_id" db:"parent_id"` // Owning user
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// ChildDetail is a child row with its parent attached.
type ChildDetail struct {
	ChildDB
	Parent *ParentDB `json:"parent"`
}
