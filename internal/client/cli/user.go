package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mhofer/farmfinder/internal/client/api"
	"github.com/mhofer/farmfinder/internal/client/models"
	"github.com/mhofer/farmfinder/internal/common"
)

// Whoami shows the profile of the logged-in user.
func (a *App) Whoami(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}

	user, err := a.client.CurrentUser(ctx)
	if err != nil {
		printlnFn("Cannot load profile:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("%s %s <%s> (@%s)", user.Firstname, user.Lastname, user.Email, user.Username))
	return nil
}

// ChangeUser updates the profile of the logged-in user. The server demands
// the current password along with the change.
func (a *App) ChangeUser(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	current, err := a.client.CurrentUser(ctx)
	if err != nil {
		printlnFn("Cannot load profile:", err.Error())
		return err
	}

	change := models.NewUser{Username: current.Username}
	if change.Firstname, err = getSimpleText(a.reader, "Enter first name", os.Stdout); err != nil {
		return err
	}
	if change.Lastname, err = getSimpleText(a.reader, "Enter last name", os.Stdout); err != nil {
		return err
	}
	if change.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	change.Password = string(password)

	if err := a.client.UpdateUser(ctx, change); err != nil {
		var validation *api.ValidationError
		if errors.As(err, &validation) {
			for field, messages := range validation.InvalidFields {
				for _, msg := range messages {
					printlnFn(field+":", msg)
				}
			}
			return nil
		}
		printlnFn("Cannot change profile:", err.Error())
		return err
	}

	printlnFn("Profile updated")
	return nil
}

// ChangePassword asks for the old and the new password and submits the
// change. The session stays alive; the new password matters on next login.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	oldPassword, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getSimpleText(a.reader, "Enter new password", os.Stdout)
	if err != nil {
		return err
	}

	change := models.PasswordChange{OldPassword: string(oldPassword), NewPassword: newPassword}
	if err := a.client.ChangePassword(ctx, change); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			printlnFn("Old password does not match")
			return nil
		}
		printlnFn("Cannot change password:", err.Error())
		return err
	}

	printlnFn("Password changed")
	return nil
}
