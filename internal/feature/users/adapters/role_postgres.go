package adapters

import (
	"context"

	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// rolePostgres is the postgres implementation of the RoleRepository interface.
type rolePostgres struct {
	db *gorm.DB
}

var _ usecase.RoleRepository = (*rolePostgres)(nil)

// NewRolePostgres creates a new rolePostgres instance on the given connection.
func NewRolePostgres(db *gorm.DB) *rolePostgres {
	return &rolePostgres{db: db}
}

// FindByNames returns all role records whose name is in the given set,
// in a single batched query.
func (r *rolePostgres) FindByNames(ctx context.Context, names []string) ([]entity.Role, error) {
	var roles []entity.Role
	if len(names) == 0 {
		return roles, nil
	}
	if err := conn(ctx, r.db).
		Where("name IN ?", names).
		Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// GetOrCreate returns the role with the given name, inserting it first if
// missing. When a concurrent writer wins the insert race, the unique
// violation is swallowed and the winner's row is fetched instead, so two
// records for the same name can never come into existence.
func (r *rolePostgres) GetOrCreate(ctx context.Context, name string) (*entity.Role, error) {
	db := conn(ctx, r.db)

	var role entity.Role
	err := db.Where(&entity.Role{Name: name}).FirstOrCreate(&role).Error
	if err == nil {
		return &role, nil
	}
	if !isUniqueViolation(err) {
		return nil, err
	}

	// Lost the insert race: the row exists now, fetch it.
	if err := db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
