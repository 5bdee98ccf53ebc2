package availability

import "errors"

var (
	// ErrConfiguration возвращается при некорректной конфигурации организации
	// (start >= end, нераспознанное время). Повтор запроса не поможет: данные нужно исправить в настройках
	ErrConfiguration = errors.New("availability: invalid booking configuration")

	// ErrInvalidInput возвращается при некорректных входных данных вызова
	ErrInvalidInput = errors.New("availability: invalid input")
)
