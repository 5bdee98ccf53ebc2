package domain

// Service is a salon service offered by an organization
type Service struct {
	ID              int64
	OrganizationID  int64
	Name            string
	DurationMinutes int
	IsActive        bool
}
