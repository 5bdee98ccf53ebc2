package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*getAvailableSlots.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRouter(uc GetAvailableSlotsUseCase) *mux.Router {
	h := NewHandler(uc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/organizations/{organizationId}/available-slots", h.Handle).Methods(http.MethodGet)
	return r
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{}
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool {
		return req.OrganizationID == 7 && req.Date.Equal(date) &&
			req.ServiceID != nil && *req.ServiceID == 3 && req.DurationMinutes == nil
	})).Return(&getAvailableSlots.Response{
		Date:                   date,
		OrganizationID:         7,
		ServiceDurationMinutes: 60,
		Slots: []domain.Slot{
			{Time: mustTime(t, "09:00"), Available: true},
			{Time: mustTime(t, "09:30"), Available: false},
		},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations/7/available-slots?date=2026-03-10&serviceId=3", nil)
	newRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "2026-03-10",
		"organizationId": 7,
		"serviceDurationMinutes": 60,
		"slots": [
			{"time": "09:00", "available": true},
			{"time": "09:30", "available": false}
		]
	}`, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestHandle_ClosedDayReturnsEmptyArray(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{
		Date:                   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		OrganizationID:         7,
		ServiceDurationMinutes: 30,
		Slots:                  []domain.Slot{},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations/7/available-slots?date=2026-03-08", nil)
	newRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "[]", string(body["slots"]))
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		message string
	}{
		{name: "organization id", target: "/api/v1/organizations/abc/available-slots?date=2026-03-10", message: msgInvalidOrganizationID},
		{name: "zero organization id", target: "/api/v1/organizations/0/available-slots?date=2026-03-10", message: msgInvalidOrganizationID},
		{name: "missing date", target: "/api/v1/organizations/7/available-slots", message: msgMissingDate},
		{name: "bad date", target: "/api/v1/organizations/7/available-slots?date=10.03.2026", message: msgInvalidDate},
		{name: "bad service", target: "/api/v1/organizations/7/available-slots?date=2026-03-10&serviceId=x", message: msgInvalidServiceID},
		{name: "bad duration", target: "/api/v1/organizations/7/available-slots?date=2026-03-10&durationMinutes=-5", message: msgInvalidDuration},
		{name: "both", target: "/api/v1/organizations/7/available-slots?date=2026-03-10&serviceId=1&durationMinutes=30", message: msgBothDurations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Message)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "config not found", err: getAvailableSlots.ErrConfigNotFound, status: http.StatusNotFound},
		{name: "service not found", err: getAvailableSlots.ErrServiceNotFound, status: http.StatusNotFound},
		{name: "invalid input", err: getAvailableSlots.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "invalid configuration", err: getAvailableSlots.ErrInvalidConfiguration, status: http.StatusUnprocessableEntity},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations/7/available-slots?date=2026-03-10", nil)
			newRouter(uc).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestToUseCaseRequest_Duration(t *testing.T) {
	req, err := ToUseCaseRequest(7, url.Values{"date": {"2026-03-10"}, "durationMinutes": {"45"}})

	require.NoError(t, err)
	require.NotNil(t, req.DurationMinutes)
	assert.Equal(t, 45, *req.DurationMinutes)
	assert.Nil(t, req.ServiceID)
	assert.Equal(t, time.Tuesday, req.Date.Weekday())
}
