package handler

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"ankaragis/internal/auth"
	apperrors "ankaragis/internal/errors"
)

// claimsFromContext reads the claims attached by the JWT middleware.
func claimsFromContext(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, apperrors.ErrTokenMissing
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, apperrors.ErrTokenInvalid
	}
	return claims, nil
}

// bearerClaims extracts and verifies the bearer token directly from the
// Authorization header, for routes that are not behind the JWT middleware.
func bearerClaims(c echo.Context, jwtService *auth.JWTService) (*auth.Claims, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, apperrors.ErrTokenMissing
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil, apperrors.ErrTokenMissing
	}
	claims, err := jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}
	return claims, nil
}
