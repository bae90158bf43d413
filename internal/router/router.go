package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Bhargav-sunil/TaskManagement/internal/auth"
	"github.com/Bhargav-sunil/TaskManagement/internal/handler"
	"github.com/Bhargav-sunil/TaskManagement/internal/middleware"
	"github.com/Bhargav-sunil/TaskManagement/internal/repository"
)

// Register wires routes and middleware. Every route under /v1/tasks and
// /v1/users requires a resolved caller; user mutation additionally requires
// the admin role. Task deletion is authorized in the service so the forbidden
// response is uniform for every id.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	identities *auth.IdentityCache,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authenticated := middleware.Authenticate(jwtService, users, identities)

	api := e.Group("/v1")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, authenticated)

	tasks := api.Group("/tasks", authenticated)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.POST("", taskHandler.Create)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	usersGroup := api.Group("/users", authenticated)
	usersGroup.GET("", userHandler.List)
	usersGroup.POST("", userHandler.Create, middleware.RequireAdmin)
	usersGroup.PUT("/:id", userHandler.Update, middleware.RequireAdmin)
	usersGroup.DELETE("/:id", userHandler.Delete, middleware.RequireAdmin)
}
