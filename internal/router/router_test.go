package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ankaragis/internal/auth"
	"ankaragis/internal/config"
	"ankaragis/internal/handler"
	"ankaragis/internal/model"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

type mockPlaceService struct{ mock.Mock }

func (m *mockPlaceService) ListGeoJSON(ctx context.Context) (*model.FeatureCollection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FeatureCollection), args.Error(1)
}

func (m *mockPlaceService) Create(ctx context.Context, claims *auth.Claims, in model.PlaceInput) (*model.PlaceRef, error) {
	args := m.Called(ctx, claims, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlaceRef), args.Error(1)
}

func (m *mockPlaceService) Update(ctx context.Context, claims *auth.Claims, id uint, in model.PlaceInput) (*model.PlaceGeoRow, error) {
	args := m.Called(ctx, claims, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlaceGeoRow), args.Error(1)
}

func (m *mockPlaceService) Delete(ctx context.Context, claims *auth.Claims, id uint) error {
	args := m.Called(ctx, claims, id)
	return args.Error(0)
}

type mockCommentService struct{ mock.Mock }

func (m *mockCommentService) ListByPlace(ctx context.Context, placeID uint) ([]model.CommentWithAuthor, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CommentWithAuthor), args.Error(1)
}

func (m *mockCommentService) Create(ctx context.Context, claims *auth.Claims, placeID uint, text string, score float64) error {
	args := m.Called(ctx, claims, placeID, text, score)
	return args.Error(0)
}

func (m *mockCommentService) Update(ctx context.Context, claims *auth.Claims, id uint, text string) error {
	args := m.Called(ctx, claims, id, text)
	return args.Error(0)
}

func (m *mockCommentService) Delete(ctx context.Context, claims *auth.Claims, id uint) error {
	args := m.Called(ctx, claims, id)
	return args.Error(0)
}

func newTestServer(t *testing.T, comments *mockCommentService) (*echo.Echo, *auth.JWTService) {
	t.Helper()

	cfg := &config.Config{
		JWTSecret: "test-secret",
		PublicDir: t.TempDir(),
	}
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	e := echo.New()
	Register(
		e,
		cfg,
		handler.NewAuthHandler(new(mockAuthService)),
		handler.NewPlaceHandler(new(mockPlaceService), jwtService),
		handler.NewCommentHandler(comments, jwtService),
	)
	return e, jwtService
}

func TestVerifiedRoutes_MissingToken(t *testing.T) {
	e, _ := newTestServer(t, new(mockCommentService))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
}

func TestVerifiedRoutes_ExpiredToken(t *testing.T) {
	e, _ := newTestServer(t, new(mockCommentService))

	expired := &auth.Claims{
		UserID:   1,
		Username: "u",
		Role:     model.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestVerifiedRoutes_ForeignSignature(t *testing.T) {
	e, _ := newTestServer(t, new(mockCommentService))

	token, err := auth.NewJWTService("other-secret").GenerateToken(1, "u", model.RoleUser)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestVerify_ReturnsClaims(t *testing.T) {
	e, jwtService := newTestServer(t, new(mockCommentService))

	token, err := jwtService.GenerateToken(7, "mehmet", model.RoleAdmin)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"mehmet"`)
	assert.Contains(t, rec.Body.String(), `"role":"admin"`)
}

func TestCommentUpdate_ThroughMiddleware(t *testing.T) {
	comments := new(mockCommentService)
	comments.On("Update", mock.Anything, mock.MatchedBy(func(c *auth.Claims) bool {
		return c.UserID == 9
	}), uint(5), "edited").Return(nil)

	e, jwtService := newTestServer(t, comments)

	token, err := jwtService.GenerateToken(9, "author", model.RoleUser)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/comments/5", strings.NewReader(`{"comment_text":"edited"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	comments.AssertExpectations(t)
}
