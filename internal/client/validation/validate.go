package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		instance = v
	})
	return instance
}

// Validate checks form against its tags. It returns nil or an *Error.
func Validate(form any) error {
	err := get().Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate form: %w", err)
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	label := labels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return "Enter your " + label
	case "email":
		return "Enter a valid e-mail"
	case "min":
		return "The " + label + " must have at least " + fe.Param() + " characters"
	case "eqfield":
		return "Password confirmation does not match"
	case "required_with":
		return "Enter your current password to set a new one"
	default:
		return "Invalid " + label
	}
}

var labels = map[string]string{
	"name":             "name",
	"email":            "e-mail",
	"password":         "password",
	"old_password":     "current password",
	"password_confirm": "password confirmation",
}
