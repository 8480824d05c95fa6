package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gymtrack/internal/client/validation"
)

// Profile edits the name and optionally the password. Leaving the new
// password empty keeps the current one.
func (a *App) Profile(ctx context.Context) error {
	current := a.auth.User()
	if current == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}

	name, err := GetDefaultText(a.reader, "Name", current.Name, a.out)
	if err != nil {
		return err
	}
	form := validation.ProfileForm{Name: name}

	form.Password, err = a.readSecret("New password (empty to keep)")
	if err != nil {
		return err
	}
	if form.ChangesPassword() {
		if form.PasswordConfirm, err = a.readSecret("Confirm new password"); err != nil {
			return err
		}
		if form.OldPassword, err = a.readSecret("Current password"); err != nil {
			return err
		}
	}

	if _, err := a.profile.Update(ctx, form); err != nil {
		a.notify(ctx, "profile", err, msgProfileFailed)
		return err
	}
	fmt.Fprintln(a.out, "Profile updated!")
	return nil
}

// Photo uploads the file at path as the profile photo.
func (a *App) Photo(ctx context.Context, path string) error {
	u, err := a.profile.UpdatePhoto(ctx, path)
	if err != nil {
		a.notify(ctx, "photo", err, msgPhotoFailed)
		return err
	}
	fmt.Fprintf(a.out, "Photo updated: %s\n", a.profile.AvatarURL(u))
	return nil
}
