package services

import (
	"context"
	"io"

	"resipass/internal/client/api"
	"resipass/internal/client/session"
	"resipass/internal/common"
	"resipass/internal/logging"
)

// fakeAPI records calls and returns canned results.
type fakeAPI struct {
	loginResp *api.LoginResponse
	loginErr  error
	loginReqs []api.LoginRequest

	listResp []api.InvitationResponse
	listErr  error

	createResp  *api.InvitationResponse
	createErr   error
	createCalls []api.InvitationRequest

	updateResp  *api.InvitationResponse
	updateErr   error
	updateCalls []int

	cancelResp  *api.CancelResponse
	cancelErr   error
	cancelCalls []int

	deleteErr   error
	deleteCalls []int

	historyResp  *api.AccessHistoryResponse
	historyErr   error
	historyCalls []api.AccessHistoryRequest

	tokens []string
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (*api.LoginResponse, error) {
	f.loginReqs = append(f.loginReqs, api.LoginRequest{Username: username, Password: password})
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) MyInvitations(_ context.Context, token string) ([]api.InvitationResponse, error) {
	f.tokens = append(f.tokens, token)
	return f.listResp, f.listErr
}

func (f *fakeAPI) CreateInvitation(_ context.Context, token string, req api.InvitationRequest) (*api.InvitationResponse, error) {
	f.tokens = append(f.tokens, token)
	f.createCalls = append(f.createCalls, req)
	return f.createResp, f.createErr
}

func (f *fakeAPI) UpdateInvitation(_ context.Context, token string, id int, req api.InvitationRequest) (*api.InvitationResponse, error) {
	f.tokens = append(f.tokens, token)
	f.updateCalls = append(f.updateCalls, id)
	return f.updateResp, f.updateErr
}

func (f *fakeAPI) CancelInvitation(_ context.Context, token string, id int) (*api.CancelResponse, error) {
	f.tokens = append(f.tokens, token)
	f.cancelCalls = append(f.cancelCalls, id)
	return f.cancelResp, f.cancelErr
}

func (f *fakeAPI) DeleteInvitation(_ context.Context, token string, id int) error {
	f.tokens = append(f.tokens, token)
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

func (f *fakeAPI) AccessHistory(_ context.Context, token string, req api.AccessHistoryRequest) (*api.AccessHistoryResponse, error) {
	f.tokens = append(f.tokens, token)
	f.historyCalls = append(f.historyCalls, req)
	return f.historyResp, f.historyErr
}

// memStore is an in-memory session.Store.
type memStore struct {
	sess    *session.Session
	saveErr error
}

func (m *memStore) Load() (*session.Session, error) {
	if m.sess == nil {
		return nil, common.ErrNoSession
	}
	return m.sess, nil
}

func (m *memStore) Save(s *session.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sess = s
	return nil
}

func (m *memStore) Clear() error {
	m.sess = nil
	return nil
}

func testLogger() logging.Logger {
	return logging.NewDefault(io.Discard)
}
