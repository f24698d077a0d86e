// Package services contains the application services sitting between the
// CLI and the API client: login and session keeping, invitation lifecycle
// actions with client-side validation, and the access history query.
package services

import (
	"context"

	"resipass/internal/client/api"
)

// API is the slice of the HTTP client the services depend on. Tests swap in
// a fake.
type API interface {
	Login(ctx context.Context, username, password string) (*api.LoginResponse, error)
	CreateInvitation(ctx context.Context, token string, req api.InvitationRequest) (*api.InvitationResponse, error)
	MyInvitations(ctx context.Context, token string) ([]api.InvitationResponse, error)
	CancelInvitation(ctx context.Context, token string, id int) (*api.CancelResponse, error)
	DeleteInvitation(ctx context.Context, token string, id int) error
	UpdateInvitation(ctx context.Context, token string, id int, req api.InvitationRequest) (*api.InvitationResponse, error)
	AccessHistory(ctx context.Context, token string, req api.AccessHistoryRequest) (*api.AccessHistoryResponse, error)
}
