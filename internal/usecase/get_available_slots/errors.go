package get_available_slots

import "errors"

var (
	// ErrConfigNotFound возвращается, когда у организации не настроена онлайн-запись
	ErrConfigNotFound = errors.New("booking config not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidConfiguration возвращается при некорректных настройках организации
	// Повтор запроса не поможет, настройки нужно исправить
	ErrInvalidConfiguration = errors.New("invalid booking configuration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
