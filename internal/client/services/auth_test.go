package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resipass/internal/client/api"
	"resipass/internal/common"
)

func TestLogin_Success(t *testing.T) {
	f := &fakeAPI{loginResp: &api.LoginResponse{
		Token: "tok", Username: "maria", Role: "Residente", ResidentID: 7,
	}}
	store := &memStore{}
	svc := NewAuthService(f, store, testLogger())

	sess, err := svc.Login(context.Background(), "  maria  ", " s3cret ")
	require.NoError(t, err)
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, 7, sess.ResidentID)

	// credentials are trimmed before being sent
	require.Len(t, f.loginReqs, 1)
	assert.Equal(t, "maria", f.loginReqs[0].Username)
	assert.Equal(t, "s3cret", f.loginReqs[0].Password)

	// session was persisted
	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, sess, stored)
}

func TestLogin_EmptyFieldsNoNetworkCall(t *testing.T) {
	f := &fakeAPI{}
	svc := NewAuthService(f, &memStore{}, testLogger())

	tests := []struct{ user, pass string }{
		{"", "pw"},
		{"user", ""},
		{"   ", "pw"},
		{"user", "   "},
	}
	for _, tt := range tests {
		_, err := svc.Login(context.Background(), tt.user, tt.pass)
		assert.ErrorIs(t, err, ErrEmptyCredentials)
	}
	assert.Empty(t, f.loginReqs, "no network call may be issued for invalid input")
}

func TestLogin_GuardRejected(t *testing.T) {
	for _, role := range []string{"Guardia", "Guard", "guardia"} {
		f := &fakeAPI{loginResp: &api.LoginResponse{
			Token: "tok", Username: "pedro", Role: role, ResidentID: 0,
		}}
		store := &memStore{}
		svc := NewAuthService(f, store, testLogger())

		_, err := svc.Login(context.Background(), "pedro", "pw")
		assert.ErrorIs(t, err, ErrGuardAccount, "role %q", role)

		// nothing persisted
		_, err = store.Load()
		assert.ErrorIs(t, err, common.ErrNoSession)
	}
}

func TestLogin_HTTPErrorPropagates(t *testing.T) {
	f := &fakeAPI{loginErr: &api.APIError{StatusCode: 401, Message: "credenciales inválidas"}}
	store := &memStore{}
	svc := NewAuthService(f, store, testLogger())

	_, err := svc.Login(context.Background(), "maria", "wrong")
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)

	_, err = store.Load()
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestLogout(t *testing.T) {
	store := &memStore{sess: nil}
	svc := NewAuthService(&fakeAPI{}, store, testLogger())

	require.NoError(t, svc.Logout(context.Background()))

	f := &fakeAPI{loginResp: &api.LoginResponse{Token: "tok", Username: "m", Role: "Residente"}}
	svc = NewAuthService(f, store, testLogger())
	_, err := svc.Login(context.Background(), "m", "pw")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(context.Background()))

	_, err = store.Load()
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestCurrent(t *testing.T) {
	store := &memStore{}
	svc := NewAuthService(&fakeAPI{}, store, testLogger())

	_, err := svc.Current(context.Background())
	assert.ErrorIs(t, err, common.ErrNoSession)
}
