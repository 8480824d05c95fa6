// Package validation holds the form schemas used by the sign-in, sign-up and
// profile screens. Forms are validated in full before anything is sent to
// the backend; every failing field is reported at once.
package validation
