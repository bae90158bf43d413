package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bhargav-sunil/TaskManagement/internal/middleware"
	"github.com/Bhargav-sunil/TaskManagement/internal/query"
	"github.com/Bhargav-sunil/TaskManagement/internal/service"
	"github.com/Bhargav-sunil/TaskManagement/internal/validation"
)

// UserHandler handles the user roster endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserCreateRequest represents an admin user-creation request.
type UserCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserUpdateRequest represents a partial user update; absent fields stay nil.
type UserUpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// List godoc
// @Summary List visible users
// @Description Admins see the full roster; other callers see only themselves.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param search query string false "Substring match on name and email"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	caller := middleware.Caller(c)
	filters := query.UserFilters{Search: c.QueryParam("search")}
	page := query.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	users, pageInfo, err := h.userService.List(c.Request().Context(), caller, filters, page)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, http.StatusOK, "", echo.Map{
		"users":      users,
		"pagination": pageInfo,
	})
}

// Create godoc
// @Summary Create a user
// @Description Admin only. Role defaults to "user" when omitted.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UserCreateRequest true "User data"
// @Success 201 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Router /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req UserCreateRequest
	if err := c.Bind(&req); err != nil {
		return failMessage(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validation.ValidateUserCreate(req.Name, req.Email, req.Password, req.Role); len(errs) > 0 {
		return failMessage(c, http.StatusBadRequest, "Validation failed", errs)
	}

	user, err := h.userService.Create(c.Request().Context(), service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return fail(c, err)
	}

	return ok(c, http.StatusCreated, "User created successfully", echo.Map{"user": user})
}

// Update godoc
// @Summary Update a user
// @Description Admin only. Partial update; a provided password is re-checked for strength and re-hashed. Self-role changes are dropped.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UserUpdateRequest true "Fields to update"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return failMessage(c, http.StatusBadRequest, "Invalid user id", nil)
	}

	var req UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return failMessage(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validation.ValidateUserUpdate(req.Name, req.Email, req.Role, req.Password); len(errs) > 0 {
		return failMessage(c, http.StatusBadRequest, "Validation failed", errs)
	}

	input := service.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	}
	if err := h.userService.Update(c.Request().Context(), middleware.Caller(c), id, input); err != nil {
		return fail(c, err)
	}

	return ok(c, http.StatusOK, "User updated successfully", nil)
}

// Delete godoc
// @Summary Delete a user
// @Description Admin only. Deleting your own account is always refused.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return failMessage(c, http.StatusBadRequest, "Invalid user id", nil)
	}

	if err := h.userService.Delete(c.Request().Context(), middleware.Caller(c), id); err != nil {
		return fail(c, err)
	}

	return ok(c, http.StatusOK, "User deleted successfully", nil)
}
