package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "cooking/internal/errors"
	"cooking/internal/model"
	"cooking/internal/service"
)

// UserHandler handles the /api/users endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest carries the payload for user creation.
type CreateUserRequest struct {
	Name        string `json:"name" validate:"required"`
	Username    string `json:"username" validate:"required,min=2,max=15"`
	Password    string `json:"password" validate:"omitempty,password"`
	Sex         string `json:"sex" validate:"required,oneof=m f"`
	Role        string `json:"role" validate:"omitempty,oneof=admin user"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	Description string `json:"description" validate:"omitempty,max=512"`
	StatusOfAcc string `json:"statusOfAcc" validate:"omitempty,oneof=active suspended deactivated"`
}

// UpdateUserRequest carries the payload for user updates. It additionally
// requires the external id, which must match the path parameter.
type UpdateUserRequest struct {
	ID          string `json:"id" validate:"required,objectid"`
	Name        string `json:"name" validate:"required"`
	Username    string `json:"username" validate:"required,min=2,max=15"`
	Password    string `json:"password" validate:"omitempty,password"`
	Sex         string `json:"sex" validate:"required,oneof=m f"`
	Role        string `json:"role" validate:"omitempty,oneof=admin user"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	Description string `json:"description" validate:"omitempty,max=512"`
	StatusOfAcc string `json:"statusOfAcc" validate:"omitempty,oneof=active suspended deactivated"`
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return apperrors.New(http.StatusInternalServerError, "", err)
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, fmt.Sprintf("Invalid user: %v", err), err)
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, fmt.Sprintf("Invalid user: %v", err), err)
	}

	user := &model.User{
		Name:        req.Name,
		Username:    req.Username,
		Password:    req.Password,
		Sex:         req.Sex,
		Role:        req.Role,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		StatusOfAcc: req.StatusOfAcc,
	}
	if err := h.svc.CreateUser(c.Request().Context(), user); err != nil {
		return apperrors.New(http.StatusInternalServerError, "Could not create user", err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/users/%s", user.ID.Hex()))
	return c.JSON(http.StatusCreated, user)
}

// GetUser godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param userId path string true "User ID (24 hex characters)"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{userId} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	idStr := c.Param("userId")
	id, err := model.ParseID(idStr)
	if err != nil {
		return apperrors.New(http.StatusNotFound,
			fmt.Sprintf("Invalid user ID: %s. Id should have 24 hexadecimal characters.", idStr), err)
	}

	user, err := h.svc.GetUser(c.Request().Context(), id)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return apperrors.New(http.StatusNotFound,
			fmt.Sprintf("Invalid user ID: %s. There is no user with such ID in the database", idStr), err)
	}
	if err != nil {
		return apperrors.New(http.StatusInternalServerError, "", err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID (24 hex characters)"
// @Param user body UpdateUserRequest true "User payload"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{userId} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	idStr := c.Param("userId")
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, fmt.Sprintf("Invalid user: %v", err), err)
	}
	if idStr != req.ID {
		return apperrors.New(http.StatusNotFound,
			fmt.Sprintf("User ID does not match: %s vs. %s", idStr, req.ID), nil)
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, fmt.Sprintf("Invalid user: %v", err), err)
	}

	id, err := model.ParseID(req.ID)
	if err != nil {
		return apperrors.New(http.StatusNotFound,
			fmt.Sprintf("Invalid user ID: %s. Id should have 24 hexadecimal characters.", req.ID), err)
	}

	user := &model.User{
		ID:          id,
		Name:        req.Name,
		Username:    req.Username,
		Password:    req.Password,
		Sex:         req.Sex,
		Role:        req.Role,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		StatusOfAcc: req.StatusOfAcc,
	}
	err = h.svc.UpdateUser(c.Request().Context(), user)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return apperrors.New(http.StatusNotFound,
			fmt.Sprintf("Invalid user ID: %s. There is no user with such ID in the database", idStr), err)
	}
	if err != nil {
		return apperrors.New(http.StatusInternalServerError, "Could not update user", err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param userId path string true "User ID (24 hex characters)"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{userId} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	idStr := c.Param("userId")
	id, err := model.ParseID(idStr)
	if err != nil {
		return apperrors.New(http.StatusNotFound,
			fmt.Sprintf("Invalid user ID: %s. Id should have 24 hexadecimal characters.", idStr), err)
	}

	user, err := h.svc.DeleteUser(c.Request().Context(), id)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return apperrors.New(http.StatusNotFound, fmt.Sprintf("Invalid user ID: %s", idStr), err)
	}
	if err != nil {
		return apperrors.New(http.StatusInternalServerError, "", err)
	}
	return c.JSON(http.StatusOK, user)
}
