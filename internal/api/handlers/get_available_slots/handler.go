package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidOrganizationID = "некорректный ID организации"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidServiceID      = "некорректный ID услуги"
	msgInvalidDuration       = "некорректная длительность услуги"
	msgBothDurations         = "укажите либо ID услуги, либо длительность"
	msgInvalidParams         = "некорректные параметры запроса"
	msgConfigNotFound        = "онлайн-запись для организации не настроена"
	msgServiceNotFound       = "услуга не найдена"
	msgInvalidConfiguration  = "настройки онлайн-записи организации некорректны"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/organizations/{organizationId}/available-slots
// Query params: date (required, YYYY-MM-DD), serviceId или durationMinutes (опционально)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем organizationId из URL
	organizationID, err := strconv.ParseInt(vars["organizationId"], 10, 64)
	if err != nil || organizationID <= 0 {
		h.logger.Warn("GET /organizations/{id}/available-slots - Invalid organization ID: %q", vars["organizationId"])
		handlers.RespondBadRequest(w, msgInvalidOrganizationID)
		return
	}

	// Формируем запрос к use case из query параметров
	useCaseReq, err := ToUseCaseRequest(organizationID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/available-slots - Invalid query: organization_id=%d, error=%v", organizationID, err)
		handlers.RespondBadRequest(w, queryErrorMessage(err))
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrConfigNotFound):
			h.logger.Warn("GET /organizations/{id}/available-slots - Config not found: organization_id=%d", organizationID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /organizations/{id}/available-slots - Service not found: organization_id=%d, service_id=%s",
				organizationID, r.URL.Query().Get("serviceId"))
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /organizations/{id}/available-slots - Invalid input: organization_id=%d, error=%v", organizationID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrInvalidConfiguration):
			h.logger.Error("GET /organizations/{id}/available-slots - Invalid configuration: organization_id=%d, error=%v",
				organizationID, err)
			handlers.RespondUnprocessable(w, msgInvalidConfiguration)

		default:
			h.logger.Error("GET /organizations/{id}/available-slots - Failed to get slots: organization_id=%d, error=%v",
				organizationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /organizations/{id}/available-slots - Slots retrieved successfully: organization_id=%d, date=%s, slots_count=%d",
		organizationID, response.Date, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

func queryErrorMessage(err error) string {
	switch {
	case errors.Is(err, errMissingDate):
		return msgMissingDate
	case errors.Is(err, errInvalidDate):
		return msgInvalidDate
	case errors.Is(err, errInvalidServiceID):
		return msgInvalidServiceID
	case errors.Is(err, errInvalidDuration):
		return msgInvalidDuration
	case errors.Is(err, errBothDurations):
		return msgBothDurations
	default:
		return msgInvalidParams
	}
}
