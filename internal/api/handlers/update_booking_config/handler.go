package update_booking_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config/models"
)

const (
	msgInvalidOrganizationID = "некорректный ID организации"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgInvalidData           = "некорректные данные конфигурации"
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

// Handle PUT /api/v1/organizations/{organizationId}/booking-config
// Настройки заменяются целиком
// Принадлежность пользователя организации проверяет API Gateway, здесь только наличие X-User-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем organizationId из URL
	vars := mux.Vars(r)
	organizationID, err := strconv.ParseInt(vars["organizationId"], 10, 64)
	if err != nil || organizationID <= 0 {
		h.logger.Warn("PUT /organizations/{id}/booking-config - Invalid organization ID: %q", vars["organizationId"])
		handlers.RespondBadRequest(w, msgInvalidOrganizationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /organizations/{id}/booking-config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req models.UpsertConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /organizations/{id}/booking-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.OrganizationID = organizationID
	req.UserID = userID

	result, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		if errors.Is(err, config.ErrInvalidInput) {
			h.logger.Warn("PUT /organizations/{id}/booking-config - Invalid data: organization_id=%d, error=%v",
				organizationID, err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}

		h.logger.Error("PUT /organizations/{id}/booking-config - Failed to save config: organization_id=%d, error=%v",
			organizationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /organizations/{id}/booking-config - Config saved successfully: organization_id=%d, user_id=%d",
		organizationID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
