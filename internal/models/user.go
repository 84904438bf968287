package models

import "time"

// UserDB represents a user row in the database. Users are provisioned out
// of band; this service only reads them during login.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
