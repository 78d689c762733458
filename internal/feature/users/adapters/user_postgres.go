package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// userPostgres is the postgres implementation of the UserRepository interface.
// It uses GORM for database access.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new userPostgres instance on the given gorm.DB
// connection. Constructor for dependency injection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// FindAll returns all users ordered by ID, with roles eagerly preloaded.
func (r *userPostgres) FindAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := conn(ctx, r.db).
		Preload("Roles").
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID retrieves a user by ID with roles eagerly preloaded.
// It returns usecase.ErrUserNotFound if no such user exists.
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := conn(ctx, r.db).
		Preload("Roles").
		Where("id = ?", id).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ExistsByEmail reports whether any user row holds the given email.
func (r *userPostgres) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).
		Model(&entity.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the user together with its role associations. Attached
// roles already carry primary keys, so GORM only writes the join rows.
// A unique violation on the email index maps to usecase.ErrEmailAlreadyExists;
// the service checks first, this translation is the constraint-level backstop.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := conn(ctx, r.db).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// Update saves the user's own columns. The email column has create-only
// write permission on the entity, so it is never part of the UPDATE.
// Associations are explicitly omitted; ReplaceRoles manages those.
func (r *userPostgres) Update(ctx context.Context, u *entity.User) error {
	return conn(ctx, r.db).
		Omit(clause.Associations).
		Save(u).Error
}

// ReplaceRoles substitutes the user's role associations with the given set.
// The given roles already exist, so only the join table changes; role rows
// are never deleted here.
func (r *userPostgres) ReplaceRoles(ctx context.Context, u *entity.User, roles []entity.Role) error {
	return conn(ctx, r.db).
		Model(u).
		Association("Roles").
		Replace(&roles)
}

// Delete removes the user row and clears its join-table entries.
// Role rows referenced by the user are left untouched.
func (r *userPostgres) Delete(ctx context.Context, u *entity.User) error {
	db := conn(ctx, r.db)
	if err := db.Model(u).Association("Roles").Clear(); err != nil {
		return err
	}
	return db.Delete(u).Error
}
