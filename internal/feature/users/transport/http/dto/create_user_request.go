// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// CreateUserRequest represents the request body for POST /api/users.
// Gin's binding tags enforce the payload contract: username and a validly
// formatted email are required, the role set must be a non-empty subset of
// the recognized vocabulary with no duplicates.
type CreateUserRequest struct {
	Username   string   `json:"username" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	FiscalCode string   `json:"fiscalCode"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Roles      []string `json:"roles" binding:"required,min=1,unique,dive,oneof=OPERATOR DEVELOPER REPORTER OWNER MAINTAINER"`
}
