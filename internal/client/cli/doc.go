// Package cli provides the interactive gymtrack command-line client.
//
// It wires configuration, the local session database, the backend API client
// and the services, then runs a REPL. On start the previously persisted
// session is restored, so a signed-in user lands directly on the workout
// commands.
//
// Key features:
//   - Sign in / sign up / sign out
//   - Browse muscle groups and exercises, mark exercises as done
//   - Training history grouped by day
//   - Profile name, password and photo
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
