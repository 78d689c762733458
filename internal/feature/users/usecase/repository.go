package usecase

import (
	"context"

	"user_backend/internal/feature/users/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// FindAll returns every user in store order, roles eagerly loaded.
	FindAll(ctx context.Context) ([]entity.User, error)

	// FindByID retrieves a user with its roles.
	// It returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// ExistsByEmail reports whether any user already holds the given email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user together with its role associations.
	// It returns ErrEmailAlreadyExists if the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// Update persists the user's own columns. Associations are not touched.
	Update(ctx context.Context, user *entity.User) error

	// ReplaceRoles substitutes the user's role associations with the given
	// set. Passing an empty set clears all associations.
	ReplaceRoles(ctx context.Context, user *entity.User, roles []entity.Role) error

	// Delete removes the user and its role associations.
	// Role rows themselves are left in place.
	Delete(ctx context.Context, user *entity.User) error
}

// RoleRepository abstracts the persistence layer for role records.
type RoleRepository interface {
	// FindByNames returns all role records whose name is in the given set,
	// in one batched lookup.
	FindByNames(ctx context.Context, names []string) ([]entity.Role, error)

	// GetOrCreate returns the role record with the given name, creating it
	// if it does not yet exist. The operation is duplicate-safe: when a
	// concurrent writer creates the same name first, the existing row is
	// fetched and returned instead of an error.
	GetOrCreate(ctx context.Context, name string) (*entity.Role, error)
}

// TxManager runs a function inside a single store transaction. Every write
// performed through the repositories within fn commits or rolls back as one
// unit.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
