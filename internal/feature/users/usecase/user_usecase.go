package usecase

import (
	"context"

	"user_backend/internal/feature/users/domain/entity"
)

// CreateUserInput carries the fields accepted when creating a user.
type CreateUserInput struct {
	Username   string
	Email      string
	FiscalCode string
	FirstName  string
	LastName   string
	Roles      []string
}

// UpdateUserInput carries the fields accepted when updating a user.
// Email is deliberately absent: it is immutable after creation.
// A nil Roles slice leaves the existing associations untouched; a non-nil
// slice (including an empty one) replaces them wholesale.
type UpdateUserInput struct {
	Username   string
	FiscalCode string
	FirstName  string
	LastName   string
	Roles      []string
}

// UserUsecase orchestrates CRUD operations against the user store,
// reconciling role names into role records on create and update.
type UserUsecase struct {
	users      UserRepository
	reconciler *RoleReconciler
	tx         TxManager
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(users UserRepository, reconciler *RoleReconciler, tx TxManager) *UserUsecase {
	return &UserUsecase{users: users, reconciler: reconciler, tx: tx}
}

// ListAll returns every user in store order. No transaction is opened.
func (u *UserUsecase) ListAll(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// GetByID returns the user with the given ID, roles included.
// It returns ErrUserNotFound if no such user exists.
func (u *UserUsecase) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Create persists a new user with its reconciled role associations as one
// atomic unit. It returns ErrEmailAlreadyExists when the email is taken;
// in that case no write happens at all.
func (u *UserUsecase) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	var created *entity.User
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		taken, err := u.users.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailAlreadyExists
		}

		user := &entity.User{
			Username:   in.Username,
			Email:      in.Email,
			FiscalCode: in.FiscalCode,
			FirstName:  in.FirstName,
			LastName:   in.LastName,
		}

		if len(in.Roles) > 0 {
			roles, err := u.reconciler.Reconcile(ctx, in.Roles)
			if err != nil {
				return err
			}
			user.Roles = roles
		}

		if err := u.users.Create(ctx, user); err != nil {
			return err
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update overwrites the user's mutable fields and, when a role set is
// supplied, wholesale-replaces its role associations. Everything commits
// as one transaction. It returns ErrUserNotFound if the ID does not exist.
func (u *UserUsecase) Update(ctx context.Context, id uint, in UpdateUserInput) (*entity.User, error) {
	var updated *entity.User
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := u.users.FindByID(ctx, id)
		if err != nil {
			return err
		}

		user.Username = in.Username
		user.FiscalCode = in.FiscalCode
		user.FirstName = in.FirstName
		user.LastName = in.LastName

		if err := u.users.Update(ctx, user); err != nil {
			return err
		}

		if in.Roles != nil {
			roles, err := u.reconciler.Reconcile(ctx, in.Roles)
			if err != nil {
				return err
			}
			if err := u.users.ReplaceRoles(ctx, user, roles); err != nil {
				return err
			}
			user.Roles = roles
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the user and its role associations. Role rows stay.
// It returns ErrUserNotFound if the ID does not exist; deleting the same
// ID twice fails on the second call.
func (u *UserUsecase) Delete(ctx context.Context, id uint) error {
	return u.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := u.users.FindByID(ctx, id)
		if err != nil {
			return err
		}
		return u.users.Delete(ctx, user)
	})
}
