package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gasupport/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and tries to authenticate. On success the
// session is persisted and the prompt switches to the logged-in surface.
// A failed attempt prints one generic message and leaves any prior session
// untouched.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.sessions.Login(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			printlnFn("Invalid username or password.")
		} else {
			a.logger.Error(ctx, "login failed", "err", err)
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	a.current = u
	printlnFn(fmt.Sprintf("Logged in as %s.", u.Username))
	return nil
}

// Logout clears the persisted session; the current user becomes none.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "err", err)
		return err
	}
	a.current = nil
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the current account and role.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s (%s)", u.Username, u.Role))
	return nil
}
