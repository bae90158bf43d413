package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bhargav-sunil/TaskManagement/internal/middleware"
	"github.com/Bhargav-sunil/TaskManagement/internal/service"
	"github.com/Bhargav-sunil/TaskManagement/internal/validation"
)

// AuthHandler handles registration, login, and the identity endpoint.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a self-service registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new account
// @Description Self-service registration. The account role is always "user".
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return failMessage(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validation.ValidateRegister(req.Name, req.Email, req.Password); len(errs) > 0 {
		return failMessage(c, http.StatusBadRequest, "Validation failed", errs)
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, http.StatusCreated, "User registered successfully", echo.Map{
		"token": token,
		"user":  user,
	})
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return failMessage(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validation.ValidateLogin(req.Email, req.Password); len(errs) > 0 {
		return failMessage(c, http.StatusBadRequest, "Validation failed", errs)
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, http.StatusOK, "Login successful", echo.Map{
		"token": token,
		"user":  user,
	})
}

// Me godoc
// @Summary Current identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	return ok(c, http.StatusOK, "", echo.Map{
		"user": middleware.Caller(c),
	})
}
