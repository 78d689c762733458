package entity

import "time"

// Role represents a named role record.
// Rows are created lazily on first reference and never deleted by this service.
type Role struct {
	// ID is the unique identifier for the role, generated by the store.
	ID uint `gorm:"primaryKey"`

	// Name is the role name. Unique across all roles.
	Name string `gorm:"uniqueIndex;size:64;not null"`

	// CreatedAt is the timestamp when the role row was first created.
	CreatedAt time.Time
}
