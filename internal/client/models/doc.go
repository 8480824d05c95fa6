// Package models defines the payloads exchanged with the gym backend and
// the session data persisted by the client.
package models
