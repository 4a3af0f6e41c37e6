package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronov/boardkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and attempts to create a new
// account. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Register(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			fmt.Fprintln(a.out, "That email is already registered.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Registered %s (id %d). You can now log in.\n", user.Email, user.ID)
	return nil
}

// Login prompts for credentials and authenticates against the server. On
// success the token is kept by the underlying client for later commands.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Fprintln(a.out, "Incorrect email or password.")
			return nil
		}
		return err
	}

	a.email = email
	fmt.Fprintln(a.out, "Logged in.")
	return nil
}
