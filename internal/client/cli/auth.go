package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gymtrack/internal/client/validation"
	"github.com/dmitrijs2005/gymtrack/internal/common"
)

// readSecret prompts for a password and returns it as a string, wiping the
// raw bytes.
func (a *App) readSecret(prompt string) (string, error) {
	pw, err := getPassword(prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// SignIn prompts for e-mail and password, validates them and signs in.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter e-mail", a.out)
	if err != nil {
		return err
	}
	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	form := validation.SignInForm{Email: email, Password: password}
	if err := validation.Validate(form); err != nil {
		a.notify(ctx, "signin", err, msgSignInFailed)
		return err
	}

	if err := a.auth.SignIn(ctx, form.Email, form.Password); err != nil {
		a.notify(ctx, "signin", err, msgSignInFailed)
		return err
	}

	fmt.Fprintf(a.out, "Hello, %s!\n", a.auth.User().Name)
	return nil
}

// SignUp prompts for name, e-mail and password, creates the account and
// signs in with it.
func (a *App) SignUp(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter e-mail", a.out)
	if err != nil {
		return err
	}
	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	form := validation.SignUpForm{Name: name, Email: email, Password: password}
	if err := validation.Validate(form); err != nil {
		a.notify(ctx, "signup", err, msgSignUpFailed)
		return err
	}

	if err := a.auth.SignUp(ctx, form.Name, form.Email, form.Password); err != nil {
		a.notify(ctx, "signup", err, msgSignUpFailed)
		return err
	}

	fmt.Fprintf(a.out, "Account created. Hello, %s!\n", a.auth.User().Name)
	return nil
}

// SignOut ends the session. With all set, every local record is erased too.
func (a *App) SignOut(ctx context.Context, all bool) error {
	if !all {
		if err := a.auth.SignOut(ctx); err != nil {
			a.notify(ctx, "signout", err, msgSignOutFailed)
			return err
		}
		return nil
	}

	n, err := a.auth.Forget(ctx)
	if err != nil {
		a.notify(ctx, "signout", err, msgSignOutFailed)
		return err
	}
	fmt.Fprintf(a.out, "Local data erased (%d records).\n", n)
	return nil
}

// WhoAmI prints the signed-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.auth.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}

	fmt.Fprintf(a.out, "Name:   %s\n", u.Name)
	fmt.Fprintf(a.out, "E-mail: %s\n", u.Email)
	if url := a.profile.AvatarURL(u); url != "" {
		fmt.Fprintf(a.out, "Photo:  %s\n", url)
	}
	if exp, ok := a.auth.ExpiresAt(); ok {
		fmt.Fprintf(a.out, "Session expires: %s\n", exp.Local().Format(time.DateTime))
	}
	return nil
}
