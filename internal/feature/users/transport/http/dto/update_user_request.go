package dto

// UpdateUserRequest represents the request body for PUT /api/users/{id}.
// Email is not part of the payload: it is immutable after creation.
// The role set is optional. When the field is absent the user's existing
// associations are left untouched; when present (even empty) the
// associations are replaced wholesale.
type UpdateUserRequest struct {
	Username   string   `json:"username" binding:"required"`
	FiscalCode string   `json:"fiscalCode"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Roles      []string `json:"roles" binding:"omitempty,unique,dive,oneof=OPERATOR DEVELOPER REPORTER OWNER MAINTAINER"`
}
