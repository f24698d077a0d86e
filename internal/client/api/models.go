package api

import (
	"resipass/internal/client/models"
)

// Request/response contracts of the residential-access API. Field names on
// the wire are the server's (Spanish) labels; everything in code is mapped
// to the neutral domain types in internal/client/models.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token      string `json:"token"`
	Username   string `json:"username"`
	Role       string `json:"rol"`
	ResidentID int    `json:"residenteId"`
}

// InvitationRequest is the body of both create and update calls.
type InvitationRequest struct {
	Name       string    `json:"nombre"`
	Surname    string    `json:"apellidos"`
	Kind       string    `json:"tipoInvitacion"`
	ValidUntil *WireTime `json:"fechaValidez,omitempty"`
}

type InvitationResponse struct {
	ID         int       `json:"id"`
	Name       string    `json:"nombre"`
	Surname    string    `json:"apellidos"`
	Kind       string    `json:"tipoInvitacion"`
	ValidUntil *WireTime `json:"fechaValidez"`
	QRCode     string    `json:"qrCode"`
	ResidentID int       `json:"residenteId"`
	Status     string    `json:"estadoQr"`
	Message    string    `json:"message,omitempty"`
}

// Invitation maps the wire shape into the domain model.
func (r InvitationResponse) Invitation() models.Invitation {
	inv := models.Invitation{
		ID:         r.ID,
		Name:       r.Name,
		Surname:    r.Surname,
		Kind:       models.InvitationKind(r.Kind),
		Code:       r.QRCode,
		Status:     models.Status(r.Status),
		ResidentID: r.ResidentID,
	}
	if r.ValidUntil != nil && !r.ValidUntil.IsZero() {
		t := r.ValidUntil.Time
		inv.ValidUntil = &t
	}
	return inv
}

type CancelResponse struct {
	Message string `json:"message"`
}

// AccessHistoryRequest scopes the audit log query. Only ResidentID is
// mandatory; the rest narrow the result server-side.
type AccessHistoryRequest struct {
	ResidentID   int       `json:"residenteId"`
	From         *WireTime `json:"fechaInicio,omitempty"`
	To           *WireTime `json:"fechaFin,omitempty"`
	InvitationID *int      `json:"invitadoId,omitempty"`
	AccessType   string    `json:"tipoAcceso,omitempty"`
	GuardID      *int      `json:"guardiaId,omitempty"`
	VehiclePlate string    `json:"placasVehiculo,omitempty"`
}

type AccessResponse struct {
	ID           int      `json:"id"`
	Time         WireTime `json:"fechaAcceso"`
	ResidentID   int      `json:"residenteId"`
	InvitationID *int     `json:"invitadoId"`
	AccessType   string   `json:"tipoAcceso"`
	GuardID      *int     `json:"guardiaId"`
	VehiclePlate *string  `json:"placasVehiculo"`
	ResidentName *string  `json:"nombreResidente"`
	GuestName    *string  `json:"nombreInvitado"`
	GuardName    *string  `json:"nombreGuardia"`
}

// Record maps the wire shape into the domain model.
func (r AccessResponse) Record() models.AccessRecord {
	rec := models.AccessRecord{
		ID:           r.ID,
		Time:         r.Time.Time,
		Type:         models.AccessType(r.AccessType),
		ResidentID:   r.ResidentID,
		InvitationID: r.InvitationID,
	}
	if r.ResidentName != nil {
		rec.ResidentName = *r.ResidentName
	}
	if r.GuestName != nil {
		rec.GuestName = *r.GuestName
	}
	if r.GuardName != nil {
		rec.GuardName = *r.GuardName
	}
	if r.VehiclePlate != nil {
		rec.VehiclePlate = *r.VehiclePlate
	}
	return rec
}

type AccessHistoryResponse struct {
	Accesses []AccessResponse `json:"accesos"`
}
