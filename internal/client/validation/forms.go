package validation

// SignInForm is the sign-in screen input.
type SignInForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignUpForm is the sign-up screen input.
type SignUpForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ProfileForm is the profile screen input. Leaving Password and
// PasswordConfirm empty keeps the current password.
type ProfileForm struct {
	Name            string `json:"name" validate:"required"`
	OldPassword     string `json:"old_password" validate:"required_with=Password"`
	Password        string `json:"password" validate:"omitempty,min=6"`
	PasswordConfirm string `json:"password_confirm" validate:"eqfield=Password"`
}

// ChangesPassword reports whether the form asks for a new password.
func (f ProfileForm) ChangesPassword() bool {
	return f.Password != ""
}
