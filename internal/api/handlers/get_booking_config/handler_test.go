package get_booking_config

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type mockConfigService struct {
	mock.Mock
}

func (m *mockConfigService) Get(ctx context.Context, organizationID int64) (*models.ConfigResponse, error) {
	args := m.Called(ctx, organizationID)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.ConfigResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc ConfigService, organizationID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations/"+organizationID+"/booking-config", nil)
	req = mux.SetURLVars(req, map[string]string{"organizationId": organizationID})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &mockConfigService{}
	svc.On("Get", mock.Anything, int64(4)).Return(&models.ConfigResponse{
		OrganizationID:      4,
		WorkingHours:        map[string]models.TimeRange{"1": {Start: "09:00", End: "18:00"}},
		SlotDurationMinutes: 30,
		TimeZone:            "UTC",
	}, nil)

	rec := serve(svc, "4")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"workingHours":{"1":{"start":"09:00","end":"18:00"}}`)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{name: "bad id", id: "x", status: http.StatusBadRequest},
		{name: "not found", id: "4", err: config.ErrConfigNotFound, status: http.StatusNotFound},
		{name: "internal", id: "4", err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockConfigService{}
			if tt.err != nil {
				svc.On("Get", mock.Anything, int64(4)).Return(nil, tt.err)
			}

			rec := serve(svc, tt.id)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
