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

	"webtime/internal/model"
	"webtime/internal/service"
)

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, email, name, password string) (*model.User, error) {
	args := m.Called(ctx, email, name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*model.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*model.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockUserService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func TestUserHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockUserService)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"email":"a@example.com","name":"A","password":"secret"}`,
			setupMock: func(m *MockUserService) {
				m.On("Create", mock.Anything, "a@example.com", "A", "secret").Return(&model.User{Email: "a@example.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: `{"email":"a@example.com","name":"A","password":"secret"}`,
			setupMock: func(m *MockUserService) {
				m.On("Create", mock.Anything, "a@example.com", "A", "secret").Return(nil, service.ErrUserAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing password",
			body:           `{"email":"a@example.com","name":"A"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			// Only presence is enforced; the extension sends whatever the
			// user typed.
			name: "email format is not checked",
			body: `{"email":"not-an-email","name":"A","password":"secret"}`,
			setupMock: func(m *MockUserService) {
				m.On("Create", mock.Anything, "not-an-email", "A", "secret").Return(&model.User{Email: "not-an-email"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockUserService)
			if tt.setupMock != nil {
				tt.setupMock(mockSvc)
			}
			h := NewUserHandler(mockSvc, true)

			e := newTestEcho()
			req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.Create(c)

			if tt.expectedStatus == http.StatusCreated {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusCreated, rec.Code)
				assert.Contains(t, rec.Body.String(), `"userId"`)
			} else {
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedStatus, httpErr.Code)
			}

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_AuthenticateWrongPassword(t *testing.T) {
	tests := []struct {
		name             string
		legacyAuthErrors bool
		expectedStatus   int
	}{
		{name: "legacy mode conflates to not found", legacyAuthErrors: true, expectedStatus: http.StatusNotFound},
		{name: "strict mode reports unauthorized", legacyAuthErrors: false, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockUserService)
			mockSvc.On("Authenticate", mock.Anything, "a@example.com", "wrong").
				Return(nil, "", "", service.ErrInvalidCredentials)
			h := NewUserHandler(mockSvc, tt.legacyAuthErrors)

			e := newTestEcho()
			req := httptest.NewRequest(http.MethodGet, "/api/users?email=a@example.com&password=wrong", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.Authenticate(c)
			httpErr, ok := err.(*echo.HTTPError)
			assert.True(t, ok)
			assert.Equal(t, tt.expectedStatus, httpErr.Code)

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_AuthenticateUnknownUser(t *testing.T) {
	mockSvc := new(MockUserService)
	mockSvc.On("Authenticate", mock.Anything, "ghost@example.com", "pw").
		Return(nil, "", "", service.ErrUserNotFound)
	h := NewUserHandler(mockSvc, false)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/users?email=ghost@example.com&password=pw", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Authenticate(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestUserHandler_AuthenticateRequiresBothParams(t *testing.T) {
	h := NewUserHandler(new(MockUserService), true)
	e := newTestEcho()

	for _, target := range []string{"/api/users", "/api/users?email=a@example.com", "/api/users?password=pw"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.Authenticate(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	}
}
