package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/service/policy"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, a password (entered twice), and a role,
// then creates the account.
//
// The password strength rating is shown after the first entry so the user can
// reconsider before confirming. Both password buffers are wiped before
// returning. Policy violations are reported as messages, not errors; only
// I/O failures propagate.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	printlnFn("Password strength:", policy.Strength(string(password)))

	confirm, err := getPassword("Repeat password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		printlnFn("Passwords do not match")
		return nil
	}

	role, err := getSimpleText(a.reader, "Enter role (user, admin, analyst; default user)", os.Stdout)
	if err != nil {
		return err
	}
	if role == "" {
		role = "user"
	}

	if err := a.service.Register(ctx, userName, string(password), role); err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidUsername):
			printlnFn("Invalid username: use 3-20 letters, digits, or underscores")
		case errors.Is(err, common.ErrWeakPassword):
			printlnFn("Password too weak: 6-50 characters with an uppercase letter, a lowercase letter, a digit, and a special character")
		case errors.Is(err, common.ErrInvalidRole):
			printlnFn("Unknown role:", role)
		case errors.Is(err, common.ErrorAlreadyExists):
			printlnFn("Username already taken")
		default:
			printlnFn("Registration failed:", err.Error())
		}
		return err
	}

	printlnFn("Success!")
	return nil
}
