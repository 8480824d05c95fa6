// Package client is the gymtrack client's single entry point to the backend
// REST API.
//
// # Overview
//
// The package provides:
//  1. The Client interface used by the services: sessions, users, avatar
//     upload, muscle groups, exercises and history.
//  2. HTTPClient, a net/http implementation with a fixed base address and a
//     bounded request timeout (DefaultTimeout, 3s).
//  3. Local database bootstrap helpers (InitDatabase, RunMigrations) wiring
//     an SQLite file and the embedded goose migrations.
//
// # Authorization
//
// The bearer token travels with the request context: callers attach it with
// WithAccessToken and HTTPClient installs "Authorization: Bearer <token>".
// A context without a token produces an unauthenticated request.
//
// # Error Handling
//
// Every response is classified once, here:
//
//   - *AppError: the backend answered with {"message": "..."}; Message is
//     meant for the user. A 401 also matches errors.Is(err, ErrUnauthorized).
//   - *TransportError: everything else (network failure, timeout, unexpected
//     status, undecodable body). Network failures match ErrUnavailable,
//     undecodable bodies ErrMalformedResponse.
//
// KindOf and UserMessage turn any error into a presentation decision.
package client
