package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Bhargav-sunil/TaskManagement/docs"
	"github.com/Bhargav-sunil/TaskManagement/internal/auth"
	"github.com/Bhargav-sunil/TaskManagement/internal/cache"
	"github.com/Bhargav-sunil/TaskManagement/internal/config"
	"github.com/Bhargav-sunil/TaskManagement/internal/db"
	"github.com/Bhargav-sunil/TaskManagement/internal/handler"
	"github.com/Bhargav-sunil/TaskManagement/internal/model"
	"github.com/Bhargav-sunil/TaskManagement/internal/repository"
	"github.com/Bhargav-sunil/TaskManagement/internal/router"
	"github.com/Bhargav-sunil/TaskManagement/internal/service"
)

// @title Task Management API
// @version 1.0
// @description Multi-tenant task tracking API with role-based visibility and JWT authentication.
// @host localhost:5000
// @BasePath /v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiresIn)
	identityCache := auth.NewIdentityCache(cacheClient)

	if err := ensureAdmin(context.Background(), userRepo, cfg); err != nil {
		log.Fatalf("admin bootstrap: %v", err)
	}

	authService := service.NewAuthService(userRepo, jwtService)
	taskService := service.NewTaskService(taskRepo)
	userService := service.NewUserService(userRepo, identityCache)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	userHandler := handler.NewUserHandler(userService)

	router.Register(
		e,
		jwtService,
		identityCache,
		userRepo,
		authHandler,
		taskHandler,
		userHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// ensureAdmin creates the bootstrap admin account on first start so the
// roster is manageable out of the box.
func ensureAdmin(ctx context.Context, users repository.UserRepository, cfg *config.Config) error {
	_, err := users.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &model.User{
		Name:         "System Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		// a concurrent replica may have won the race on the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	log.Printf("default admin created: %s", cfg.AdminEmail)
	return nil
}
