// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a managed user account.
// Roles are a many-to-many association through the user_roles join table
// and are always loaded eagerly with the user.
type User struct {
	// ID is the unique identifier for the user, generated by the store.
	ID uint `gorm:"primaryKey"`

	// Username is the display name chosen for the user. Mutable.
	Username string `gorm:"size:255;not null"`

	// Email is the user's email address. It is unique across all users
	// and immutable after creation (write permitted on create only).
	Email string `gorm:"uniqueIndex;size:255;not null;<-:create"`

	// FiscalCode is the user's optional fiscal identification code.
	FiscalCode string `gorm:"size:64"`

	// FirstName is the user's optional given name.
	FirstName string `gorm:"size:255"`

	// LastName is the user's optional family name.
	LastName string `gorm:"size:255"`

	// Roles holds the role records associated with the user.
	// The join table carries a composite primary key on (user_id, role_id),
	// so a user can never hold the same role twice.
	Roles []Role `gorm:"many2many:user_roles"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
