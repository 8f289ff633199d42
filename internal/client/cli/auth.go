package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/service/lockout"
)

// Login prompts for credentials and tries to authenticate.
//
// On success the session token is kept in memory for the rest of the run.
// Failed attempts and lockouts are reported as messages; the error is still
// returned so callers can distinguish outcomes in tests.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.service.Login(ctx, userName, string(password))
	if err != nil {
		var locked *lockout.LockedError
		switch {
		case errors.As(err, &locked):
			printlnFn("Account is locked, try again later:", locked.Error())
		case errors.Is(err, common.ErrInvalidCredentials):
			printlnFn("Invalid username or password")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	a.token = session.Token
	a.userName = userName
	printlnFn("Logged in as", userName)
	return nil
}

// Logout revokes the current session and forgets the token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.service.Logout(ctx, a.token); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}

	a.token = ""
	a.userName = ""
	printlnFn("Logged out")
	return nil
}
