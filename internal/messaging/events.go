package messaging

import "github.com/google/uuid"

// Stream names shared with the upstream offices and specializations
// services and downstream profile consumers.
const (
	OfficeStatusStream      = "offices.status-changed"
	SpecializationStream    = "specializations.status-changed"
	DoctorNameChangedStream = "doctors.name-changed"

	consumerGroup = "profiles-service"

	// payloadField is the stream entry field carrying the JSON-encoded event.
	payloadField = "payload"
)

// OfficeStatusChanged mirrors the wire schema published by the offices service.
type OfficeStatusChanged struct {
	ID       uuid.UUID `json:"Id"`
	IsActive bool      `json:"IsActive"`
}

// SpecializationChanged mirrors the wire schema published by the
// specializations service.
type SpecializationChanged struct {
	ID       uuid.UUID `json:"Id"`
	IsActive bool      `json:"IsActive"`
}

// DoctorNameChanged is emitted after a doctor update commits, carrying the
// new name for downstream consumers.
type DoctorNameChanged struct {
	ID         uuid.UUID `json:"Id"`
	FirstName  string    `json:"FirstName"`
	LastName   string    `json:"LastName"`
	MiddleName *string   `json:"MiddleName,omitempty"`
}
