package cli

import (
	"context"
	"errors"
	"os"

	"github.com/mhofer/farmfinder/internal/client/api"
	"github.com/mhofer/farmfinder/internal/client/models"
	"github.com/mhofer/farmfinder/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the new account's profile and password and creates
// the account. Registration issues no token, so the user is told to log in
// afterwards. The password bytes are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	user := models.NewUser{}
	var err error

	if user.Firstname, err = getSimpleText(a.reader, "Enter first name", os.Stdout); err != nil {
		return err
	}
	if user.Lastname, err = getSimpleText(a.reader, "Enter last name", os.Stdout); err != nil {
		return err
	}
	if user.Username, err = getSimpleText(a.reader, "Enter username", os.Stdout); err != nil {
		return err
	}
	if user.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	user.Password = string(password)

	created, err := a.authService.Register(ctx, user)
	if err != nil {
		var validation *api.ValidationError
		if errors.As(err, &validation) {
			for field, messages := range validation.InvalidFields {
				for _, msg := range messages {
					printlnFn(field+":", msg)
				}
			}
			return nil
		}
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Account", created.Username, "created, please login")
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// issued token is persisted and the prompt shows the user name. A rejection
// is reported without touching the stored session.
func (a *App) Login(ctx context.Context) error {
	identity, err := getSimpleText(a.reader, "Enter username or email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, identity, password); err != nil {
		if errors.Is(err, api.ErrWrongCredentials) {
			printlnFn("Wrong username or password")
		} else {
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	a.userName = identity
	printlnFn("Login successful")
	return nil
}

// Logout drops the stored session. Logging out while not logged in is fine.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	a.userName = ""
	printlnFn("Logged out")
	return nil
}
