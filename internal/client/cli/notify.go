package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gymtrack/internal/client/client"
	"github.com/dmitrijs2005/gymtrack/internal/client/validation"
)

const (
	msgSignInFailed   = "Could not sign in. Try again later!"
	msgSignUpFailed   = "Could not create the account. Try again later!"
	msgSignOutFailed  = "Signed out, but the local session could not be removed."
	msgGroupsFailed   = "Could not load the muscle groups. Try again later!"
	msgListFailed     = "Could not load the exercises. Try again later!"
	msgExerciseFailed = "Could not load the exercise details. Try again later!"
	msgDoneFailed     = "Could not record the exercise. Try again later!"
	msgHistoryFailed  = "Could not load the history. Try again later!"
	msgProfileFailed  = "Could not update the profile. Try again later!"
	msgPhotoFailed    = "Could not update the photo. Try again later!"
)

// notify shows err to the user: every field of a validation error, the
// backend message of an AppError, fallback for anything else.
func (a *App) notify(ctx context.Context, op string, err error, fallback string) {
	a.log.Debug(ctx, "command failed", "op", op, "kind", client.KindOf(err).String(), "error", err)

	var ve *validation.Error
	if errors.As(err, &ve) {
		for _, f := range ve.Fields {
			fmt.Fprintf(a.out, "  %s: %s\n", f.Field, f.Message)
		}
		return
	}
	fmt.Fprintln(a.out, client.UserMessage(err, fallback))
}
