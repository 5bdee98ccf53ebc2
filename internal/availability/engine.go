package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Params входные данные расчета доступных слотов
type Params struct {
	// Date целевая дата; часовой пояс Date считается часовым поясом организации
	Date   time.Time
	Config *domain.BookingConfiguration
	// Committed занятые записи из любого количества источников
	Committed []BusySource
	// ServiceDurationMinutes длительность услуги, nil = Config.SlotDurationMinutes
	ServiceDurationMinutes *int
	// Now момент расчета, нулевое значение = time.Now()
	Now time.Time
}

// ComputeAvailableSlots рассчитывает сетку слотов дня с признаком доступности
// Возвращает пустой список, если день закрыт или услуга не помещается в рабочий интервал
// Движок не выполняет ввод-вывод и не хранит состояние
func ComputeAvailableSlots(p Params) ([]domain.Slot, error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}

	cfg := p.Config

	serviceDuration := cfg.SlotDurationMinutes
	if p.ServiceDurationMinutes != nil {
		serviceDuration = *p.ServiceDurationMinutes
	}

	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}

	// Некорректный перерыв - ошибка настроек и для выходного дня
	var breakWindow *DayWindow
	if cfg.BreakTime != nil {
		start, end, err := parseRange(*cfg.BreakTime)
		if err != nil {
			return nil, fmt.Errorf("%w: break time: %v", ErrConfiguration, err)
		}
		breakWindow = &DayWindow{OpenMinutes: start, CloseMinutes: end}
	}

	window, open, err := ResolveWorkingHours(p.Date, cfg.WorkingHours)
	if err != nil {
		return nil, err
	}
	if !open {
		return []domain.Slot{}, nil
	}

	busy, err := AggregateBusy(p.Date.Location(), p.Committed...)
	if err != nil {
		return nil, err
	}

	candidates := GenerateCandidates(window, cfg.SlotDurationMinutes, serviceDuration)

	classifier := &Classifier{
		Date:            p.Date,
		ServiceDuration: serviceDuration,
		Break:           breakWindow,
		MinAdvance:      time.Duration(cfg.MinAdvanceHours) * time.Hour,
		Now:             now,
		Busy:            busy,
	}

	return assembleSlots(candidates, classifier)
}

func validateParams(p Params) error {
	if p.Config == nil {
		return fmt.Errorf("%w: booking configuration is required", ErrInvalidInput)
	}
	if p.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if p.Config.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: slot duration must be positive, got %d", ErrInvalidInput, p.Config.SlotDurationMinutes)
	}
	if p.Config.MinAdvanceHours < 0 {
		return fmt.Errorf("%w: min advance hours must not be negative, got %d", ErrInvalidInput, p.Config.MinAdvanceHours)
	}
	if p.ServiceDurationMinutes != nil && *p.ServiceDurationMinutes <= 0 {
		return fmt.Errorf("%w: service duration must be positive, got %d", ErrInvalidInput, *p.ServiceDurationMinutes)
	}
	return nil
}

// ValidateConfiguration проверяет конфигурацию целиком (все дни недели, перерыв, часовой пояс)
// Используется при сохранении настроек, чтобы ошибки не доходили до расчета слотов
func ValidateConfiguration(cfg *domain.BookingConfiguration) error {
	if cfg == nil {
		return fmt.Errorf("%w: configuration is empty", ErrConfiguration)
	}
	if cfg.SlotDurationMinutes < domain.MinSlotDurationMinutes || cfg.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrConfiguration, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if cfg.MinAdvanceHours < 0 || cfg.MinAdvanceHours > domain.MaxMinAdvanceHours {
		return fmt.Errorf("%w: min advance hours must be between 0 and %d", ErrConfiguration, domain.MaxMinAdvanceHours)
	}

	for weekday, day := range cfg.WorkingHours {
		if weekday < 0 || weekday > 6 {
			return fmt.Errorf("%w: unknown weekday index %d", ErrConfiguration, weekday)
		}
		if _, _, err := parseRange(day); err != nil {
			return fmt.Errorf("%w: working hours for weekday %d: %v", ErrConfiguration, weekday, err)
		}
	}

	if cfg.BreakTime != nil {
		if _, _, err := parseRange(*cfg.BreakTime); err != nil {
			return fmt.Errorf("%w: break time: %v", ErrConfiguration, err)
		}
	}

	if _, err := cfg.Location(); err != nil {
		return fmt.Errorf("%w: time zone %q: %v", ErrConfiguration, cfg.TimeZone, err)
	}

	return nil
}
