package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_backend/internal/feature/users/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	FindAllFunc       func(ctx context.Context) ([]entity.User, error)
	FindByIDFunc      func(ctx context.Context, id uint) (*entity.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	CreateFunc        func(ctx context.Context, user *entity.User) error
	UpdateFunc        func(ctx context.Context, user *entity.User) error
	ReplaceRolesFunc  func(ctx context.Context, user *entity.User, roles []entity.Role) error
	DeleteFunc        func(ctx context.Context, user *entity.User) error

	replaceRolesCalls int
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) ReplaceRoles(ctx context.Context, user *entity.User, roles []entity.Role) error {
	m.replaceRolesCalls++
	if m.ReplaceRolesFunc != nil {
		return m.ReplaceRolesFunc(ctx, user, roles)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, user *entity.User) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, user)
	}
	return nil
}

// mockRoleRepository is a mock implementation of the RoleRepository interface.
type mockRoleRepository struct {
	FindByNamesFunc func(ctx context.Context, names []string) ([]entity.Role, error)
	GetOrCreateFunc func(ctx context.Context, name string) (*entity.Role, error)

	findByNamesCalls int
	getOrCreateCalls int
}

func (m *mockRoleRepository) FindByNames(ctx context.Context, names []string) ([]entity.Role, error) {
	m.findByNamesCalls++
	if m.FindByNamesFunc != nil {
		return m.FindByNamesFunc(ctx, names)
	}
	return nil, nil
}

func (m *mockRoleRepository) GetOrCreate(ctx context.Context, name string) (*entity.Role, error) {
	m.getOrCreateCalls++
	if m.GetOrCreateFunc != nil {
		return m.GetOrCreateFunc(ctx, name)
	}
	return &entity.Role{ID: uint(m.getOrCreateCalls), Name: name}, nil
}

// passthroughTx runs the function without a real transaction.
type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestUsecase(users *mockUserRepository, roles *mockRoleRepository) *UserUsecase {
	return NewUserUsecase(users, NewRoleReconciler(roles), passthroughTx{})
}

func TestUserUsecase_Create(t *testing.T) {
	t.Run("creates user with reconciled roles", func(t *testing.T) {
		users := &mockUserRepository{}
		roles := &mockRoleRepository{
			FindByNamesFunc: func(ctx context.Context, names []string) ([]entity.Role, error) {
				return []entity.Role{{ID: 10, Name: "DEVELOPER"}}, nil
			},
		}
		uc := newTestUsecase(users, roles)

		created, err := uc.Create(context.Background(), CreateUserInput{
			Username: "testuser",
			Email:    "test@example.com",
			Roles:    []string{"DEVELOPER", "REPORTER"},
		})

		require.NoError(t, err, "create should succeed")
		require.NotNil(t, created, "created user is nil")
		assert.NotZero(t, created.ID, "ID should be set by the store")
		assert.Equal(t, "testuser", created.Username)
		assert.Equal(t, "test@example.com", created.Email)

		names := make([]string, 0, len(created.Roles))
		for _, r := range created.Roles {
			names = append(names, r.Name)
		}
		assert.ElementsMatch(t, []string{"DEVELOPER", "REPORTER"}, names,
			"user should carry exactly the requested roles")
		assert.Equal(t, 1, roles.getOrCreateCalls, "only the missing role should be created")
	})

	t.Run("conflict when email already in use", func(t *testing.T) {
		createCalled := false
		users := &mockUserRepository{
			ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
				return true, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				createCalled = true
				return nil
			},
		}
		uc := newTestUsecase(users, &mockRoleRepository{})

		created, err := uc.Create(context.Background(), CreateUserInput{
			Username: "dupe",
			Email:    "taken@example.com",
			Roles:    []string{"OPERATOR"},
		})

		assert.ErrorIs(t, err, ErrEmailAlreadyExists, "should return conflict")
		assert.Nil(t, created, "no user should be returned")
		assert.False(t, createCalled, "no write may happen on conflict")
	})

	t.Run("store error propagates", func(t *testing.T) {
		storeErr := errors.New("store down")
		users := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error { return storeErr },
		}
		uc := newTestUsecase(users, &mockRoleRepository{})

		created, err := uc.Create(context.Background(), CreateUserInput{
			Username: "x", Email: "x@example.com", Roles: []string{"OWNER"},
		})

		assert.ErrorIs(t, err, storeErr)
		assert.Nil(t, created)
	})
}

func TestUserUsecase_Update(t *testing.T) {
	existing := func() *entity.User {
		return &entity.User{
			ID:       7,
			Username: "before",
			Email:    "stay@example.com",
			Roles:    []entity.Role{{ID: 1, Name: "OPERATOR"}},
		}
	}

	t.Run("overwrites fields and replaces roles when supplied", func(t *testing.T) {
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return existing(), nil
			},
		}
		roles := &mockRoleRepository{
			FindByNamesFunc: func(ctx context.Context, names []string) ([]entity.Role, error) {
				return []entity.Role{{ID: 2, Name: "OWNER"}, {ID: 3, Name: "MAINTAINER"}}, nil
			},
		}
		uc := newTestUsecase(users, roles)

		updated, err := uc.Update(context.Background(), 7, UpdateUserInput{
			Username: "after",
			Roles:    []string{"OWNER", "MAINTAINER"},
		})

		require.NoError(t, err)
		assert.Equal(t, "after", updated.Username, "username should be overwritten")
		assert.Equal(t, "stay@example.com", updated.Email, "email must never change")

		names := make([]string, 0, len(updated.Roles))
		for _, r := range updated.Roles {
			names = append(names, r.Name)
		}
		assert.ElementsMatch(t, []string{"OWNER", "MAINTAINER"}, names,
			"role set must equal exactly the new set")
		assert.Equal(t, 1, users.replaceRolesCalls, "roles should be replaced once")
	})

	t.Run("nil role set leaves associations untouched", func(t *testing.T) {
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return existing(), nil
			},
		}
		roles := &mockRoleRepository{}
		uc := newTestUsecase(users, roles)

		updated, err := uc.Update(context.Background(), 7, UpdateUserInput{Username: "after"})

		require.NoError(t, err)
		assert.Zero(t, users.replaceRolesCalls, "ReplaceRoles must not be called")
		assert.Zero(t, roles.findByNamesCalls, "reconciler must not touch the store")
		assert.Len(t, updated.Roles, 1, "existing roles should remain")
	})

	t.Run("empty role set clears associations", func(t *testing.T) {
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return existing(), nil
			},
		}
		roles := &mockRoleRepository{}
		uc := newTestUsecase(users, roles)

		updated, err := uc.Update(context.Background(), 7, UpdateUserInput{
			Username: "after",
			Roles:    []string{},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, users.replaceRolesCalls, "roles should be replaced with the empty set")
		assert.Empty(t, updated.Roles, "role set should be empty")
		assert.Zero(t, roles.findByNamesCalls, "empty reconcile must not touch the store")
	})

	t.Run("not found", func(t *testing.T) {
		users := &mockUserRepository{}
		uc := newTestUsecase(users, &mockRoleRepository{})

		updated, err := uc.Update(context.Background(), 999, UpdateUserInput{Username: "x"})

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, updated)
	})
}

func TestUserUsecase_Delete(t *testing.T) {
	t.Run("deletes existing user", func(t *testing.T) {
		deleted := false
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return &entity.User{ID: id}, nil
			},
			DeleteFunc: func(ctx context.Context, user *entity.User) error {
				deleted = true
				return nil
			},
		}
		uc := newTestUsecase(users, &mockRoleRepository{})

		err := uc.Delete(context.Background(), 4)

		assert.NoError(t, err)
		assert.True(t, deleted, "delete should reach the repository")
	})

	t.Run("not found", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{}, &mockRoleRepository{})

		err := uc.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserUsecase_GetByID(t *testing.T) {
	t.Run("returns user from repository", func(t *testing.T) {
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return &entity.User{ID: id, Username: "found"}, nil
			},
		}
		uc := newTestUsecase(users, &mockRoleRepository{})

		user, err := uc.GetByID(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, uint(3), user.ID)
		assert.Equal(t, "found", user.Username)
	})

	t.Run("not found", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{}, &mockRoleRepository{})

		user, err := uc.GetByID(context.Background(), 999)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserUsecase_ListAll(t *testing.T) {
	users := &mockUserRepository{
		FindAllFunc: func(ctx context.Context) ([]entity.User, error) {
			return []entity.User{{ID: 1}, {ID: 2}}, nil
		},
	}
	uc := newTestUsecase(users, &mockRoleRepository{})

	all, err := uc.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, all, 2)
}
