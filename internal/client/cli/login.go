package cli

import (
	"context"
	"errors"
	"fmt"

	"resipass/internal/client/services"
	"resipass/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates.
//
// A guard account is accepted by the server but refused here: the user is
// told the app is resident-only, nothing is persisted and the dashboard is
// not shown. Any other error is surfaced once; there is no retry.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	sess, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCredentials):
			fmt.Fprintln(a.out, "Please fill in both username and password.")
		case errors.Is(err, services.ErrGuardAccount):
			fmt.Fprintln(a.out, "This application is for residents only. Guard accounts must use the gatehouse app.")
		default:
			fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		}
		return err
	}

	a.userName = sess.Username
	fmt.Fprintf(a.out, "Welcome, %s!\n", sess.Username)
	a.refresh(ctx)
	return nil
}

// Logout drops the stored credential and clears the dashboard.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %s\n", err.Error())
		return err
	}
	a.userName = ""
	a.state = StateEmptySession
	a.list = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// whoami shows the stored session, including the (unverified) token expiry
// when the bearer token happens to be a JWT.
func (a *App) whoami(ctx context.Context) {
	sess, err := a.auth.Current(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			fmt.Fprintln(a.out, "Not logged in.")
		} else {
			fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		}
		return
	}

	fmt.Fprintf(a.out, "Username:    %s\n", sess.Username)
	fmt.Fprintf(a.out, "Resident id: %d\n", sess.ResidentID)
	if exp, ok := sess.TokenExpiry(); ok {
		fmt.Fprintf(a.out, "Token until: %s\n", exp)
	}
}
