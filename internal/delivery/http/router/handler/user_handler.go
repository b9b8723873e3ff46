package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/response"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
)

// UserHandler holds dependencies for account administration handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetUser returns one account.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.uc.GetUser(c.Request().Context(), c.QueryParam("cid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// ListUsers returns a paginated page of accounts.
func (h *UserHandler) ListUsers(c echo.Context) error {
	output, err := h.uc.ListUsers(c.Request().Context(), pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Users retrieved successfully")
}

// CreateUser provisions an account directly.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.CreateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// UpdateUser applies a profile patch to an account.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user update input")
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), c.QueryParam("cid"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// UpdateUserRole changes the authorization role of an account.
func (h *UserHandler) UpdateUserRole(c echo.Context) error {
	var input usecase.UpdateUserRoleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.UpdateUserRole(c.Request().Context(), c.QueryParam("cid"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User role updated successfully")
}

// UpdateUserStatus changes the lifecycle state of an account.
func (h *UserHandler) UpdateUserStatus(c echo.Context) error {
	var input usecase.UpdateUserStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.UpdateUserStatus(c.Request().Context(), c.QueryParam("cid"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User status updated successfully")
}

// DeleteUsers removes the accounts named in the request body.
func (h *UserHandler) DeleteUsers(c echo.Context) error {
	var input usecase.DeleteUsersInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	deleted, err := h.uc.DeleteUsers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted}, "Users deleted successfully")
}
