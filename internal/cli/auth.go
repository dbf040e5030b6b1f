package cli

import (
	"context"
	"errors"
	"fmt"

	"fleetsync/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a user name and password and creates the account,
// locally always and remotely when a connection exists. On success the new
// user is logged in immediately.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	u, res := a.auth.Register(ctx, name, password)
	if res.Err != nil && !res.Deferred {
		fmt.Fprintln(a.out, "Registration failed:", res.Message)
		return res.Err
	}

	a.user = u
	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Login prompts for credentials and authenticates against the local store.
func (a *App) Login(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	u, err := a.auth.Login(ctx, name, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			fmt.Fprintln(a.out, "User not found")
		case errors.Is(err, common.ErrBadCredentials):
			fmt.Fprintln(a.out, "Wrong password")
		default:
			fmt.Fprintln(a.out, "Login failed:", err)
		}
		return err
	}

	a.user = u
	fmt.Fprintln(a.out, "Logged in as", u.Name)
	return nil
}

// Logout forgets the current user. Local data stays: the store is shared by
// everyone on this device.
func (a *App) Logout(ctx context.Context) error {
	a.user = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
