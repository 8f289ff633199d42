package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

// WhoAmI shows the username and role the current session belongs to.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.service.WhoAmI(ctx, a.token)
	if err != nil {
		a.reportSessionError(err)
		return err
	}

	printlnFn("Logged in as", user.Username, "("+string(user.Role)+")")
	return nil
}

// AccessToken mints and prints a short-lived signed token for the current
// session, for use with other tools that accept them.
func (a *App) AccessToken(ctx context.Context) error {
	token, err := a.service.AccessToken(ctx, a.token)
	if err != nil {
		a.reportSessionError(err)
		return err
	}

	printlnFn("Access token:", token)
	return nil
}

// DeleteAccount removes the current user's account after an explicit
// confirmation, then clears the local session.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "This permanently deletes your account. Type 'yes' to continue", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Aborted")
		return nil
	}

	if err := a.service.DeleteAccount(ctx, a.token); err != nil {
		a.reportSessionError(err)
		return err
	}

	a.token = ""
	a.userName = ""
	printlnFn("Account deleted")
	return nil
}

// reportSessionError prints a friendly message for session-related failures
// and drops the stale token when the session is no longer valid.
func (a *App) reportSessionError(err error) {
	switch {
	case errors.Is(err, common.ErrSessionExpired):
		printlnFn("Session expired, please log in again")
		a.token = ""
		a.userName = ""
	case errors.Is(err, common.ErrSessionNotFound):
		printlnFn("Not logged in")
		a.token = ""
		a.userName = ""
	default:
		printlnFn("Error:", err.Error())
	}
}
