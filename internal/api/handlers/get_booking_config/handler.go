package get_booking_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config"
)

const (
	msgInvalidOrganizationID = "некорректный ID организации"
	msgNotFound              = "онлайн-запись для организации не настроена"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/organizations/{organizationId}/booking-config
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем organizationId из URL
	vars := mux.Vars(r)
	organizationID, err := strconv.ParseInt(vars["organizationId"], 10, 64)
	if err != nil || organizationID <= 0 {
		h.logger.Warn("GET /organizations/{id}/booking-config - Invalid organization ID: %q", vars["organizationId"])
		handlers.RespondBadRequest(w, msgInvalidOrganizationID)
		return
	}

	result, err := h.service.Get(r.Context(), organizationID)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			h.logger.Warn("GET /organizations/{id}/booking-config - Config not found: organization_id=%d", organizationID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /organizations/{id}/booking-config - Failed to get config: organization_id=%d, error=%v",
			organizationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /organizations/{id}/booking-config - Config retrieved successfully: organization_id=%d", organizationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
