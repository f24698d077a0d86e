package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resipass/internal/client/session"
	"resipass/internal/logging"
)

var (
	// ErrEmptyCredentials is returned before any network call when the
	// trimmed username or password is empty.
	ErrEmptyCredentials = errors.New("username and password must not be empty")

	// ErrGuardAccount means the server accepted the credentials but the
	// account role is guard; this app is resident-only, so no session is
	// persisted.
	ErrGuardAccount = errors.New("guard accounts cannot use this application")
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: validate, authenticate against the server, persist the session.
//   - Logout: drop the stored session.
//   - Current: return the stored session, common.ErrNoSession when absent.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*session.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*session.Session, error)
}

type authService struct {
	api   API
	store session.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(api API, store session.Store, log logging.Logger) AuthService {
	return &authService{api: api, store: store, log: log.With("component", "auth")}
}

// guardRoles are the role labels this client refuses. The server also
// serves a gatehouse application whose accounts must not end up here.
var guardRoles = []string{"Guardia", "Guard"}

func isGuardRole(role string) bool {
	for _, g := range guardRoles {
		if strings.EqualFold(role, g) {
			return true
		}
	}
	return false
}

// Login validates the trimmed credential pair, authenticates, and persists
// the returned token and resident id. A guard account is rejected after
// authentication without persisting anything.
func (a *authService) Login(ctx context.Context, username, password string) (*session.Session, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	resp, err := a.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if isGuardRole(resp.Role) {
		a.log.Warn(ctx, "guard account rejected", "username", resp.Username)
		return nil, ErrGuardAccount
	}

	sess := &session.Session{
		Token:      resp.Token,
		Username:   resp.Username,
		ResidentID: resp.ResidentID,
	}
	if err := a.store.Save(sess); err != nil {
		return nil, fmt.Errorf("cannot persist session: %w", err)
	}

	a.log.Info(ctx, "logged in", "username", sess.Username, "resident_id", sess.ResidentID)
	return sess, nil
}

// Logout drops the stored session.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// Current returns the stored session without talking to the server.
func (a *authService) Current(_ context.Context) (*session.Session, error) {
	return a.store.Load()
}
