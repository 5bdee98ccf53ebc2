package domain

import "time"

// BookingStatus represents the status of an online booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// Booking is an appointment a client made through the booking page
type Booking struct {
	ID              int64
	OrganizationID  int64
	ServiceID       *int64
	ClientName      string
	ClientPhone     string
	StartsAt        time.Time
	DurationMinutes *int // NULL for legacy rows
	Status          BookingStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive returns true if the booking still occupies its time
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled && b.Status != BookingStatusNoShow
}

// VisitStatus represents the status of a visit scheduled by staff
type VisitStatus string

const (
	VisitStatusScheduled VisitStatus = "scheduled"
	VisitStatusCompleted VisitStatus = "completed"
	VisitStatusCancelled VisitStatus = "cancelled"
)

// Visit is a client visit entered by salon staff
type Visit struct {
	ID              int64
	OrganizationID  int64
	ClientID        int64
	ScheduledAt     time.Time
	DurationMinutes *int
	Status          VisitStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive returns true if the visit still occupies its time
func (v *Visit) IsActive() bool {
	return v.Status != VisitStatusCancelled
}
