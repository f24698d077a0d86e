// Package models defines the guest invitation and access record types and
// the status filtering rules used by the dashboard.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// InvitationKind classifies how long an invitation stays usable. The values
// are the wire labels used by the server.
type InvitationKind string

const (
	KindSingle    InvitationKind = "Unica"
	KindRecurring InvitationKind = "Recurrente"
	KindByDate    InvitationKind = "PorFecha"
)

// Status is the server-authoritative lifecycle state of an invitation. The
// client never computes transitions locally; it only renders what the server
// reports.
type Status string

const (
	StatusActive    Status = "Activo"
	StatusUsed      Status = "Usado"
	StatusExpired   Status = "Vencido"
	StatusCancelled Status = "Cancelado"
)

var (
	ErrUnknownKind = errors.New("unknown invitation kind")
	ErrUnknownTab  = errors.New("unknown tab")
)

// Invitation is a guest-access grant owned by the authenticated resident.
type Invitation struct {
	ID         int
	Name       string
	Surname    string
	Kind       InvitationKind
	ValidUntil *time.Time // set only when Kind is KindByDate
	Code       string     // opaque QR payload issued by the server
	Status     Status
	ResidentID int
}

// GuestName returns the guest's full display name.
func (i Invitation) GuestName() string {
	return strings.TrimSpace(i.Name + " " + i.Surname)
}

// ParseKind maps user input to an InvitationKind. Both the wire labels and
// the english command names are accepted, case-insensitively.
func ParseKind(s string) (InvitationKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unica", "single":
		return KindSingle, nil
	case "recurrente", "recurring":
		return KindRecurring, nil
	case "porfecha", "bydate", "date":
		return KindByDate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Tab identifies one of the dashboard's status tabs. The filter policy is
// fine-grained: one tab per lifecycle status.
type Tab string

const (
	TabActive    Tab = "active"
	TabUsed      Tab = "used"
	TabExpired   Tab = "expired"
	TabCancelled Tab = "cancelled"
)

var tabStatus = map[Tab]Status{
	TabActive:    StatusActive,
	TabUsed:      StatusUsed,
	TabExpired:   StatusExpired,
	TabCancelled: StatusCancelled,
}

// Tabs returns the dashboard tabs in display order.
func Tabs() []Tab {
	return []Tab{TabActive, TabUsed, TabExpired, TabCancelled}
}

// ParseTab maps user input to a Tab.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tabStatus[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
	}
	return t, nil
}

// Classify reports whether an invitation with the given status belongs on
// tab. Membership is an exact case-insensitive match between the status
// label and the tab's status; unrecognized statuses belong to no tab.
func Classify(status Status, tab Tab) bool {
	want, ok := tabStatus[tab]
	if !ok {
		return false
	}
	return strings.EqualFold(string(status), string(want))
}

// Filter returns the invitations belonging on tab, preserving order.
func Filter(list []Invitation, tab Tab) []Invitation {
	out := make([]Invitation, 0, len(list))
	for _, inv := range list {
		if Classify(inv.Status, tab) {
			out = append(out, inv)
		}
	}
	return out
}
