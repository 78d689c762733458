package dto

import (
	"sort"

	"user_backend/internal/feature/users/domain/entity"
)

// UserResponse is the JSON shape returned for a user. Roles are rendered as
// a sorted list of names so the output is stable regardless of association
// load order.
type UserResponse struct {
	ID         uint     `json:"id"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	FiscalCode string   `json:"fiscalCode,omitempty"`
	FirstName  string   `json:"firstName,omitempty"`
	LastName   string   `json:"lastName,omitempty"`
	Roles      []string `json:"roles"`
}

// NewUserResponse maps a user entity to its response shape.
func NewUserResponse(u *entity.User) UserResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, r.Name)
	}
	sort.Strings(roles)

	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FiscalCode: u.FiscalCode,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Roles:      roles,
	}
}

// NewUserListResponse maps a slice of user entities preserving store order.
func NewUserListResponse(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// ErrorResponse is the canonical error envelope for API failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
