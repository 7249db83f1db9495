package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gasupport/internal/users"
)

// AddUser creates an account. Duplicate usernames and weak passwords are
// rejected by the directory before anything is written.
func (a *App) AddUser(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "New username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	role, err := GetChoice(a.reader, "Role:", []string{string(users.RoleUser), string(users.RoleAdmin)}, os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.users.Add(ctx, username, string(password), users.Role(role))
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("User %q created.", u.Username))
	return nil
}

// RemoveUser deletes an account by id. The default administrator and the
// account owning the current session are refused here; the directory
// additionally protects the default administrator on its own.
func (a *App) RemoveUser(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter user id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if id == users.DefaultAdminID {
		printlnFn("The default administrator cannot be removed.")
		return nil
	}
	if a.current != nil && id == a.current.ID {
		printlnFn("You cannot remove the account you are logged in with.")
		return nil
	}

	if err := a.users.Remove(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Removed.")
	return nil
}

// ListUsers prints the directory in storage order.
func (a *App) ListUsers(ctx context.Context) error {
	list, err := a.users.List(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	for _, u := range list {
		printlnFn(fmt.Sprintf("%s  %s  %s  created %s",
			u.ID, u.Username, u.Role, u.CreatedAt.Local().Format("2006-01-02")))
	}
	return nil
}
