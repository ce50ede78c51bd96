package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"webtime/internal/model"
	"webtime/internal/service"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// MockTrackingService is a mock implementation of TrackingService.
type MockTrackingService struct {
	mock.Mock
}

func (m *MockTrackingService) Record(ctx context.Context, input service.RecordInput) (model.Category, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockTrackingService) Query(ctx context.Context, userID string, start, end *time.Time) ([]model.TimeEntry, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TimeEntry), args.Error(1)
}

func TestTrackingHandler_Record(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockTrackingService)
		expectedStatus int
	}{
		{
			name: "valid entry with numeric timeSpent",
			body: `{"userId":"u1","url":"https://github.com/foo","title":"repo","timeSpent":120,"sessionId":"s1"}`,
			setupMock: func(m *MockTrackingService) {
				m.On("Record", mock.Anything, service.RecordInput{
					UserID: "u1", URL: "https://github.com/foo", Title: "repo", TimeSpent: 120, SessionID: "s1",
				}).Return(model.CategoryProductive, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "numeric string timeSpent is coerced",
			body: `{"userId":"u1","url":"https://github.com/foo","timeSpent":"90","sessionId":"s1"}`,
			setupMock: func(m *MockTrackingService) {
				m.On("Record", mock.Anything, service.RecordInput{
					UserID: "u1", URL: "https://github.com/foo", TimeSpent: 90, SessionID: "s1",
				}).Return(model.CategoryProductive, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing userId",
			body:           `{"url":"https://github.com/foo","timeSpent":120,"sessionId":"s1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing sessionId",
			body:           `{"userId":"u1","url":"https://github.com/foo","timeSpent":120}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-numeric timeSpent is rejected",
			body:           `{"userId":"u1","url":"https://github.com/foo","timeSpent":"lots","sessionId":"s1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "NaN timeSpent is rejected",
			body:           `{"userId":"u1","url":"https://github.com/foo","timeSpent":"NaN","sessionId":"s1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "infinite timeSpent is rejected",
			body:           `{"userId":"u1","url":"https://github.com/foo","timeSpent":"-Inf","sessionId":"s1"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockTrackingService)
			if tt.setupMock != nil {
				tt.setupMock(mockSvc)
			}
			h := NewTrackingHandler(mockSvc)

			e := newTestEcho()
			req := httptest.NewRequest(http.MethodPost, "/api/track", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.Record(c)

			if tt.expectedStatus == http.StatusCreated {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusCreated, rec.Code)
				assert.Contains(t, rec.Body.String(), `"category"`)
			} else {
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedStatus, httpErr.Code)
			}

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestTrackingHandler_QueryRequiresUserID(t *testing.T) {
	h := NewTrackingHandler(new(MockTrackingService))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/track", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Query(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestTrackingHandler_QueryIgnoresLoneStartDate(t *testing.T) {
	mockSvc := new(MockTrackingService)
	mockSvc.On("Query", mock.Anything, "u1", (*time.Time)(nil), (*time.Time)(nil)).Return([]model.TimeEntry{}, nil)
	h := NewTrackingHandler(mockSvc)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/track?userId=u1&startDate=2024-03-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.Query(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockSvc.AssertExpectations(t)
}
