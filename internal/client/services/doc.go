// Package services contains the application services of the gymtrack
// client: the AuthService owning the session lifecycle, and the workout and
// profile services built on top of it.
package services
