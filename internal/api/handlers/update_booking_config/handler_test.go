package update_booking_config

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type mockConfigService struct {
	mock.Mock
}

func (m *mockConfigService) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.ConfigResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRouter(svc ConfigService) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/organizations/{organizationId}/booking-config",
		NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)
	return r
}

func put(router http.Handler, organizationID, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/organizations/"+organizationID+"/booking-config", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"workingHours": {"1": {"start": "09:00", "end": "18:00"}},
	"slotDurationMinutes": 30,
	"minAdvanceHours": 2,
	"breakTime": {"start": "13:00", "end": "14:00"},
	"timeZone": "Europe/Moscow"
}`

func TestHandle_Success(t *testing.T) {
	svc := &mockConfigService{}
	svc.On("Upsert", mock.Anything, mock.MatchedBy(func(req *models.UpsertConfigRequest) bool {
		return req.OrganizationID == 9 && req.UserID == 77 &&
			req.SlotDurationMinutes != nil && *req.SlotDurationMinutes == 30 &&
			req.BreakTime != nil && req.BreakTime.Start == "13:00" &&
			req.TimeZone == "Europe/Moscow"
	})).Return(&models.ConfigResponse{OrganizationID: 9, SlotDurationMinutes: 30, TimeZone: "Europe/Moscow"}, nil)

	rec := put(newRouter(svc), "9", "77", validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"organizationId":9`)
	svc.AssertExpectations(t)
}

func TestHandle_RequiresUser(t *testing.T) {
	svc := &mockConfigService{}

	rec := put(newRouter(svc), "9", "", validBody)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		id   string
		body string
	}{
		{name: "bad organization id", id: "nine", body: validBody},
		{name: "broken body", id: "9", body: `{"workingHours":`},
		{name: "unknown field", id: "9", body: `{"maxConcurrentBookings": 3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockConfigService{}

			rec := put(newRouter(svc), tt.id, "77", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_ServiceErrors(t *testing.T) {
	t.Run("invalid data", func(t *testing.T) {
		svc := &mockConfigService{}
		svc.On("Upsert", mock.Anything, mock.Anything).Return(nil, config.ErrInvalidInput)

		rec := put(newRouter(svc), "9", "77", validBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("internal", func(t *testing.T) {
		svc := &mockConfigService{}
		svc.On("Upsert", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		rec := put(newRouter(svc), "9", "77", validBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
