package main

import (
	"context"
	"log"
	"net/http"

	_ "webtime/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"webtime/internal/auth"
	"webtime/internal/cache"
	"webtime/internal/category"
	"webtime/internal/config"
	"webtime/internal/db"
	"webtime/internal/handler"
	"webtime/internal/model"
	"webtime/internal/repository"
	"webtime/internal/router"
	"webtime/internal/service"
)

// @title WebTime API
// @version 1.0
// @description Browser-activity tracking backend: time entries, domain categories, and productivity reports.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.Open(cfg.DBDriver, cfg.MySQLDSN, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.TimeEntry{},
		&model.WebsiteCategory{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	entryRepo := repository.NewTimeEntryRepository(gormDB)
	categoryRepo := repository.NewWebsiteCategoryRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	table := category.Default()
	trackingService := service.NewTrackingService(entryRepo, table)
	categoryService := service.NewCategoryService(categoryRepo, cacheClient)
	analyticsService := service.NewAnalyticsService(entryRepo)
	userService := service.NewUserService(userRepo, jwtService, tokenStore)

	// Seed the protected default category rows
	if err := categoryService.SeedDefaults(context.Background(), table); err != nil {
		log.Fatalf("seed default categories: %v", err)
	}

	// Initialize handlers
	trackingHandler := handler.NewTrackingHandler(trackingService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	userHandler := handler.NewUserHandler(userService, cfg.LegacyAuthErrors)

	// Register routes
	router.Register(
		e,
		cfg,
		trackingHandler,
		categoryHandler,
		analyticsHandler,
		userHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
