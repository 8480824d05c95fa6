// Package common contains constants and small helpers shared by the
// gymtrack client packages.
package common

// AuthorizationHeaderName is the HTTP header carrying the session token on
// outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerScheme prefixes the token value in AuthorizationHeaderName.
const BearerScheme = "Bearer"

// RequestIDHeaderName correlates a request with client log lines.
const RequestIDHeaderName = "X-Request-ID"

// Storage keys of the persisted session.
const (
	StorageKeyUser  = "user"
	StorageKeyToken = "token"
)
