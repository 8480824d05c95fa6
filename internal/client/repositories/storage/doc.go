// Package storage is the client's persistent key/value store.
//
// # Overview
//
// Repository is a small key/value contract (Get/Set/Delete/List/Clear) over
// a SQLite table. SQLiteRepository implements it on a dbx.DBTX, so the same
// code runs against *sql.DB or inside a *sql.Tx.
//
// SessionStore layers the persisted session on top of it: the signed-in
// user (JSON under the "user" key) and the bearer token (raw string under
// the "token" key). Writing or removing the pair happens in one
// transaction, so the store never holds a user without its token.
//
// Contract
//
//   - Get of an absent key returns (nil, nil).
//   - Delete of an absent key is a no-op.
//
// Typical Usage
//
//	store := storage.NewSessionStore(db)
//	_ = store.SaveSession(ctx, user, token)
//	user, _ := store.LoadUser(ctx)
//	token, _ := store.LoadToken(ctx)
//	_ = store.ClearSession(ctx)
package storage
