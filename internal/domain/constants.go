package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes        = 30
	DefaultMinAdvanceHours            = 0
	DefaultAppointmentDurationMinutes = 60 // used when a committed appointment has no duration
)

// Business validation constants
const (
	MinSlotDurationMinutes    = 5
	MaxSlotDurationMinutes    = 480 // 8 hours
	MaxServiceDurationMinutes = 24 * 60
	MaxMinAdvanceHours        = 24 * 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveBookingStatuses статусы бронирований, которые не занимают время
var InactiveBookingStatuses = []BookingStatus{
	BookingStatusCancelled,
	BookingStatusNoShow,
}

// InactiveVisitStatuses статусы визитов, которые не занимают время
var InactiveVisitStatuses = []VisitStatus{
	VisitStatusCancelled,
}
