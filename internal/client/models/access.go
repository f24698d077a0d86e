package models

import "time"

// AccessType distinguishes entry events from exit events.
type AccessType string

const (
	AccessEntry AccessType = "Entrada"
	AccessExit  AccessType = "Salida"
)

// AccessRecord is one immutable line of the resident's access history.
// Records are fetched from the server and never mutated by the client.
type AccessRecord struct {
	ID           int
	Time         time.Time
	Type         AccessType
	ResidentID   int
	InvitationID *int
	ResidentName string
	GuestName    string
	GuardName    string
	VehiclePlate string
}
