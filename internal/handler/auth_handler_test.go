package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "ankaragis/internal/errors"
	"ankaragis/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func postJSON(target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(*MockAuthService)
		expectedCode int
	}{
		{
			name: "created with default role",
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "ayse", "ayse@example.com", "pw").
					Return(&model.User{ID: 1, Username: "ayse", Role: model.RoleUser}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate email",
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "ayse", "ayse@example.com", "pw").
					Return(nil, apperrors.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			mockService := new(MockAuthService)
			tt.setupMock(mockService)
			h := NewAuthHandler(mockService)

			req, rec := postJSON("/api/auth/register", `{"username":"ayse","email":"ayse@example.com","password":"pw"}`)
			err := h.Register(e.NewContext(req, rec))

			if tt.expectedCode == http.StatusCreated {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusCreated, rec.Code)
				assert.Contains(t, rec.Body.String(), `"role":"user"`)
			} else {
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedCode, httpErr.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(*MockAuthService)
		expectedCode int
	}{
		{
			name: "success returns token and role",
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "mehmet@example.com", "pw").
					Return("signed-token", &model.User{ID: 7, Username: "mehmet", Role: model.RoleAdmin}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unknown user",
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "mehmet@example.com", "pw").
					Return("", nil, apperrors.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "wrong password",
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "mehmet@example.com", "pw").
					Return("", nil, apperrors.ErrWrongPassword)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			mockService := new(MockAuthService)
			tt.setupMock(mockService)
			h := NewAuthHandler(mockService)

			req, rec := postJSON("/api/auth/login", `{"email":"mehmet@example.com","password":"pw"}`)
			err := h.Login(e.NewContext(req, rec))

			if tt.expectedCode == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
				assert.Contains(t, rec.Body.String(), `"role":"admin"`)
			} else {
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedCode, httpErr.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}
