package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Bhargav-sunil/TaskManagement/internal/auth"
	apperrors "github.com/Bhargav-sunil/TaskManagement/internal/errors"
	"github.com/Bhargav-sunil/TaskManagement/internal/model"
	"github.com/Bhargav-sunil/TaskManagement/internal/repository"
)

const callerContextKey = "caller"

// Authenticate resolves the bearer credential into a caller identity. The
// token is verified, then the user is re-loaded by id (identity cache first,
// store second) so a token naming a deleted account is rejected. The resolved
// identity never includes the password hash.
func Authenticate(jwt *auth.JWTService, users repository.UserRepository, identities *auth.IdentityCache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, apperrors.Envelope{
					Success: false,
					Message: "Access denied. No token provided.",
				})
			}

			claims, err := jwt.Validate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apperrors.Envelope{
					Success: false,
					Message: "Invalid token.",
				})
			}

			ctx := c.Request().Context()
			caller, ok := identities.Get(ctx, claims.UserID)
			if !ok {
				user, err := users.FindByID(ctx, claims.UserID)
				if err != nil {
					// absent user and storage failure both refuse the
					// credential; nothing about the roster leaks
					return c.JSON(http.StatusUnauthorized, apperrors.Envelope{
						Success: false,
						Message: "Invalid token.",
					})
				}
				identities.Set(ctx, user)
				caller = &model.User{
					ID:        user.ID,
					Name:      user.Name,
					Email:     user.Email,
					Role:      user.Role,
					CreatedAt: user.CreatedAt,
					UpdatedAt: user.UpdatedAt,
				}
			}

			c.Set(callerContextKey, caller)
			return next(c)
		}
	}
}

// RequireAdmin rejects non-admin callers. It must run after Authenticate.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := Caller(c)
		if caller == nil || !caller.IsAdmin() {
			return c.JSON(http.StatusForbidden, apperrors.Envelope{
				Success: false,
				Message: "Access denied. Admin role required.",
			})
		}
		return next(c)
	}
}

// Caller returns the identity resolved by Authenticate, or nil outside an
// authenticated route.
func Caller(c echo.Context) *model.User {
	caller, _ := c.Get(callerContextKey).(*model.User)
	return caller
}
