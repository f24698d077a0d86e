// Package cli implements the interactive resipass shell: login, the
// invitation dashboard with its status tabs, invitation lifecycle actions,
// QR export and the access history view.
package cli

import (
	"bufio"
	"io"
	"os"

	"resipass/internal/client/api"
	"resipass/internal/client/config"
	"resipass/internal/client/models"
	"resipass/internal/client/services"
	"resipass/internal/client/session"
	"resipass/internal/logging"
)

// DashboardState is the dashboard's lifecycle. Loading only exists while a
// refresh is in flight; every command leaves the dashboard in one of the
// other three states.
type DashboardState int

const (
	StateLoading DashboardState = iota
	StateLoaded
	StateError
	StateEmptySession
)

type App struct {
	config      *config.Config
	auth        services.AuthService
	invitations services.InvitationService
	access      services.AccessService
	log         logging.Logger

	reader *bufio.Reader
	out    io.Writer

	userName string

	// dashboard state
	state     DashboardState
	list      []models.Invitation
	tab       models.Tab
	lastError string
}

func NewApp(c *config.Config) (*App, error) {
	log := logging.NewDefault(os.Stderr)

	store, err := session.NewFileStore(c.SessionFile)
	if err != nil {
		return nil, err
	}

	apiClient := api.New(c.BaseURL, c.RequestTimeout, log)

	app := &App{
		config:      c,
		auth:        services.NewAuthService(apiClient, store, log),
		invitations: services.NewInvitationService(apiClient, store, log),
		access:      services.NewAccessService(apiClient, store, log),
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		state:       StateEmptySession,
		tab:         models.TabActive,
	}

	// Pick up a session left by a previous run, if any.
	if sess, err := store.Load(); err == nil {
		app.userName = sess.Username
	}

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}
