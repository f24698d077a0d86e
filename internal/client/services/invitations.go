package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resipass/internal/client/api"
	"resipass/internal/client/models"
	"resipass/internal/client/session"
	"resipass/internal/logging"
)

var (
	// ErrNameRequired is returned when the guest name or surname is empty
	// after trimming.
	ErrNameRequired = errors.New("guest name and surname must not be empty")

	// ErrDateRequired is returned when a date-bound invitation has no
	// validity date.
	ErrDateRequired = errors.New("a validity date is required for date-bound invitations")

	// ErrDateNotAllowed is returned when a validity date is given for a
	// kind that does not carry one.
	ErrDateNotAllowed = errors.New("only date-bound invitations carry a validity date")

	// ErrBadDate is returned when the validity date does not parse as
	// YYYY-MM-DD.
	ErrBadDate = errors.New("validity date must be in YYYY-MM-DD format")
)

// draftDateLayout is the form-input date format.
const draftDateLayout = "2006-01-02"

// InvitationDraft is the raw create/edit form input, validated client-side
// before any network call.
type InvitationDraft struct {
	Name       string
	Surname    string
	Kind       string
	ValidUntil string // YYYY-MM-DD, meaningful only for date-bound kinds
}

// request validates the draft and builds the wire request. All validation
// failures happen here, before the network is touched.
func (d InvitationDraft) request() (api.InvitationRequest, error) {
	name := strings.TrimSpace(d.Name)
	surname := strings.TrimSpace(d.Surname)
	if name == "" || surname == "" {
		return api.InvitationRequest{}, ErrNameRequired
	}

	kind, err := models.ParseKind(d.Kind)
	if err != nil {
		return api.InvitationRequest{}, err
	}

	req := api.InvitationRequest{Name: name, Surname: surname, Kind: string(kind)}

	date := strings.TrimSpace(d.ValidUntil)
	if kind == models.KindByDate {
		if date == "" {
			return api.InvitationRequest{}, ErrDateRequired
		}
		t, err := time.Parse(draftDateLayout, date)
		if err != nil {
			return api.InvitationRequest{}, fmt.Errorf("%w: %q", ErrBadDate, date)
		}
		req.ValidUntil = api.NewWireTime(t)
	} else if date != "" {
		return api.InvitationRequest{}, ErrDateNotAllowed
	}

	return req, nil
}

// InvitationService drives the invitation lifecycle: list, create, edit,
// cancel, delete. Mutations never touch the in-memory list; callers refresh
// after a successful mutation.
type InvitationService interface {
	List(ctx context.Context) ([]models.Invitation, error)
	Create(ctx context.Context, draft InvitationDraft) (*models.Invitation, error)
	Update(ctx context.Context, id int, draft InvitationDraft) (*models.Invitation, error)
	Cancel(ctx context.Context, id int) (string, error)
	Delete(ctx context.Context, id int) error
}

type invitationService struct {
	api   API
	store session.Store
	log   logging.Logger
}

// NewInvitationService constructs an InvitationService bound to the given
// API client and session store.
func NewInvitationService(api API, store session.Store, log logging.Logger) InvitationService {
	return &invitationService{api: api, store: store, log: log.With("component", "invitations")}
}

func (s *invitationService) token() (string, error) {
	sess, err := s.store.Load()
	if err != nil {
		return "", err
	}
	return sess.Token, nil
}

// List fetches the resident's invitations. An empty server result is an
// empty list, not an error.
func (s *invitationService) List(ctx context.Context) ([]models.Invitation, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}

	resp, err := s.api.MyInvitations(ctx, token)
	if err != nil {
		return nil, err
	}

	list := make([]models.Invitation, 0, len(resp))
	for _, r := range resp {
		list = append(list, r.Invitation())
	}
	s.log.Debug(ctx, "invitations fetched", "count", len(list))
	return list, nil
}

func (s *invitationService) Create(ctx context.Context, draft InvitationDraft) (*models.Invitation, error) {
	req, err := draft.request()
	if err != nil {
		return nil, err
	}

	token, err := s.token()
	if err != nil {
		return nil, err
	}

	resp, err := s.api.CreateInvitation(ctx, token, req)
	if err != nil {
		return nil, err
	}

	inv := resp.Invitation()
	s.log.Info(ctx, "invitation created", "id", inv.ID, "kind", inv.Kind)
	return &inv, nil
}

func (s *invitationService) Update(ctx context.Context, id int, draft InvitationDraft) (*models.Invitation, error) {
	req, err := draft.request()
	if err != nil {
		return nil, err
	}

	token, err := s.token()
	if err != nil {
		return nil, err
	}

	resp, err := s.api.UpdateInvitation(ctx, token, id, req)
	if err != nil {
		return nil, err
	}

	inv := resp.Invitation()
	s.log.Info(ctx, "invitation updated", "id", inv.ID)
	return &inv, nil
}

// Cancel asks the server to mark the invitation cancelled and returns the
// server's message. The local list is deliberately left untouched.
func (s *invitationService) Cancel(ctx context.Context, id int) (string, error) {
	token, err := s.token()
	if err != nil {
		return "", err
	}

	resp, err := s.api.CancelInvitation(ctx, token, id)
	if err != nil {
		return "", err
	}

	s.log.Info(ctx, "invitation cancelled", "id", id)
	return resp.Message, nil
}

func (s *invitationService) Delete(ctx context.Context, id int) error {
	token, err := s.token()
	if err != nil {
		return err
	}

	if err := s.api.DeleteInvitation(ctx, token, id); err != nil {
		return err
	}

	s.log.Info(ctx, "invitation deleted", "id", id)
	return nil
}
