package main

import (
	"log"
	"net/http"

	_ "ankaragis/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"ankaragis/internal/auth"
	"ankaragis/internal/config"
	"ankaragis/internal/db"
	"ankaragis/internal/handler"
	"ankaragis/internal/model"
	"ankaragis/internal/repository"
	"ankaragis/internal/router"
	"ankaragis/internal/service"
)

// @title AnkaraGIS API
// @version 1.0
// @description Web GIS backend exposing places as GeoJSON with JWT-protected editing and comments.
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	log.Println("connected to PostGIS database")

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("database pool: %v", err)
	}
	defer sqlDB.Close()

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Place{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	placeRepo := repository.NewPlaceRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	placeService := service.NewPlaceService(placeRepo)
	commentService := service.NewCommentService(commentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	placeHandler := handler.NewPlaceHandler(placeService, jwtService)
	commentHandler := handler.NewCommentHandler(commentService, jwtService)

	// Register routes
	router.Register(e, cfg, authHandler, placeHandler, commentHandler)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/api-docs/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
