// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/transport/http/dto"
	"user_backend/internal/feature/users/usecase"
)

// UserUsecase defines the user operations consumed by this handler.
// Following Go convention, interfaces are defined by the consumer (handler),
// not the provider (usecase).
type UserUsecase interface {
	ListAll(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	Create(ctx context.Context, in usecase.CreateUserInput) (*entity.User, error)
	Update(ctx context.Context, id uint, in usecase.UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id uint) error
}

// UserHandler processes HTTP requests for user CRUD operations.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /api/users.
// Returns 200 with the full user list in store order.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// Get handles GET /api/users/:id.
// Returns 200 with the user, or 404 if the ID does not exist.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "get user", id)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Create handles POST /api/users.
// - Binds and validates the JSON payload; 400 with field detail on failure
// - 409 when the email is already in use
// - 201 with the created user and a Location header on success
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationMessage(err)})
		return
	}

	user, err := h.users.Create(c.Request.Context(), usecase.CreateUserInput{
		Username:   req.Username,
		Email:      req.Email,
		FiscalCode: req.FiscalCode,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Roles:      req.Roles,
	})
	if err != nil {
		h.respondError(c, err, "create user", 0)
		return
	}

	slog.Info("user created", "user_id", user.ID, "email", user.Email)
	c.Header("Location", "/api/users/"+strconv.FormatUint(uint64(user.ID), 10))
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Update handles PUT /api/users/:id.
// - Binds and validates the JSON payload; 400 with field detail on failure
// - 404 when the ID does not exist
// - 200 with the updated user on success
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update user validation failed", "error", err, "user_id", id, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationMessage(err)})
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, usecase.UpdateUserInput{
		Username:   req.Username,
		FiscalCode: req.FiscalCode,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Roles:      req.Roles,
	})
	if err != nil {
		h.respondError(c, err, "update user", id)
		return
	}

	slog.Info("user updated", "user_id", user.ID)
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Delete handles DELETE /api/users/:id.
// Returns 204 on success, 404 if the ID does not exist.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "delete user", id)
		return
	}
	slog.Info("user deleted", "user_id", id)
	c.Status(http.StatusNoContent)
}

// respondError maps domain errors to HTTP status codes.
func (h *UserHandler) respondError(c *gin.Context, err error, op string, id uint) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "email already in use"})
	default:
		slog.Error(op+" failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// parseID extracts the numeric :id path parameter.
// Responds 400 and returns false when the parameter is not a valid ID.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return 0, false
	}
	return uint(id), true
}
