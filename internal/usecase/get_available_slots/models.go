package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	OrganizationID  int64     // ID организации
	Date            time.Time // Дата (учитываются только год, месяц, день)
	ServiceID       *int64    // Услуга, длительность которой нужно уместить (опционально)
	DurationMinutes *int      // Явная длительность (опционально, взаимоисключающе с ServiceID)
}

// Response модель ответа с сеткой слотов
type Response struct {
	Date                   time.Time     // Дата в часовом поясе организации
	OrganizationID         int64         // ID организации
	ServiceDurationMinutes int           // Длительность, использованная при расчете
	Slots                  []domain.Slot // Все слоты дня с признаком доступности
}
