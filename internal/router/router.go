package router

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"ankaragis/internal/auth"
	"ankaragis/internal/config"
	apperrors "ankaragis/internal/errors"
	"ankaragis/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	placeHandler *handler.PlaceHandler,
	commentHandler *handler.CommentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	// Web client pages and assets.
	e.Static("/", cfg.PublicDir)
	e.File("/places", filepath.Join(cfg.PublicDir, "places.html"))
	e.File("/login", filepath.Join(cfg.PublicDir, "login.html"))
	e.File("/register", filepath.Join(cfg.PublicDir, "register.html"))

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/places", placeHandler.List)
	api.GET("/comments/:placeId", commentHandler.ListByPlace)

	// These handlers extract and verify the bearer token themselves;
	// there is no shared gate on them.
	api.POST("/places", placeHandler.Create)
	api.DELETE("/places/:id", placeHandler.Delete)
	api.POST("/comments", commentHandler.Create)
	api.DELETE("/comments/:id", commentHandler.Delete)

	// Routes behind the reusable JWT verification middleware.
	verified := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: jwtErrorHandler,
	}))

	verified.GET("/auth/verify", authHandler.Verify)
	verified.PUT("/places/:id", placeHandler.Update)
	verified.PUT("/comments/:id", commentHandler.Update)
}

// jwtErrorHandler distinguishes a missing token (401) from one that failed
// verification (403).
func jwtErrorHandler(c echo.Context, err error) error {
	var tokenErr *echojwt.TokenError
	if errors.As(err, &tokenErr) {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrTokenInvalid)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	httpErr := apperrors.MapErrorToHTTP(apperrors.ErrTokenMissing)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
