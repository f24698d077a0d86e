package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"

	"resipass/internal/client/models"
	"resipass/internal/client/services"
	"resipass/internal/client/session"
	"resipass/internal/common"
	"resipass/internal/logging"
)

type fakeAuth struct {
	sess     *session.Session
	loginErr error

	loginCalls  int
	logoutCalls int
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (*session.Session, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.sess, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalls++
	f.sess = nil
	return nil
}

func (f *fakeAuth) Current(context.Context) (*session.Session, error) {
	if f.sess == nil {
		return nil, common.ErrNoSession
	}
	return f.sess, nil
}

type fakeInvitations struct {
	list    []models.Invitation
	listErr error

	created   *models.Invitation
	createErr error
	drafts    []services.InvitationDraft

	updated   *models.Invitation
	updateErr error

	cancelMsg   string
	cancelErr   error
	cancelCalls []int

	deleteErr   error
	deleteCalls []int

	listCalls int
}

func (f *fakeInvitations) List(context.Context) ([]models.Invitation, error) {
	f.listCalls++
	return f.list, f.listErr
}

func (f *fakeInvitations) Create(_ context.Context, d services.InvitationDraft) (*models.Invitation, error) {
	f.drafts = append(f.drafts, d)
	return f.created, f.createErr
}

func (f *fakeInvitations) Update(_ context.Context, id int, d services.InvitationDraft) (*models.Invitation, error) {
	f.drafts = append(f.drafts, d)
	return f.updated, f.updateErr
}

func (f *fakeInvitations) Cancel(_ context.Context, id int) (string, error) {
	f.cancelCalls = append(f.cancelCalls, id)
	return f.cancelMsg, f.cancelErr
}

func (f *fakeInvitations) Delete(_ context.Context, id int) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

type fakeAccess struct {
	records []models.AccessRecord
	err     error
	filters []services.HistoryFilter
}

func (f *fakeAccess) History(_ context.Context, filter services.HistoryFilter) ([]models.AccessRecord, error) {
	f.filters = append(f.filters, filter)
	return f.records, f.err
}

// testApp wires an App to fakes; out captures everything printed.
func testApp(auth *fakeAuth, inv *fakeInvitations, acc *fakeAccess) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	a := &App{
		auth:        auth,
		invitations: inv,
		access:      acc,
		log:         logging.NewDefault(io.Discard),
		reader:      bufio.NewReader(strings.NewReader("")),
		out:         &out,
		state:       StateEmptySession,
		tab:         models.TabActive,
	}
	return a, &out
}

func stubInputs(lines ...string) func() {
	origST := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", nil
		}
		s := lines[i]
		i++
		return s, nil
	}
	return func() { getSimpleText = origST }
}

func stubPassword(pw string) func() {
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	return func() { getPassword = orig }
}
