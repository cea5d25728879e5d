package models

import "time"

// UserDB represents a user record in the database.
// The password digest is never serialized.
type UserDB struct {
	ID          int64     `json:"id" db:"id"`                     // Primary key
	Name        string    `json:"name" db:"name"`                 // Display name
	Email       string    `json:"email" db:"email"`               // Unique email
	PhoneNumber string    `json:"phone_number" db:"phone_number"` // Login alternative to email
	Password    string    `json:"-" db:"password"`                // bcrypt digest
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ParentDB is the subset of a user row attached to a child detail view.
type ParentDB struct {
	Name string `json:"name" db:"name"`
}
