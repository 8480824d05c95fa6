package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gymtrack/internal/client/models"
	"github.com/dmitrijs2005/gymtrack/internal/common"
	"github.com/dmitrijs2005/gymtrack/internal/dbx"
)

// SessionStore persists the signed-in user and its token.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) repo() *SQLiteRepository {
	return NewSQLiteRepository(s.db)
}

// LoadUser returns the stored user, or nil when none is stored.
func (s *SessionStore) LoadUser(ctx context.Context) (*models.User, error) {
	raw, err := s.repo().Get(ctx, common.StorageKeyUser)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &u, nil
}

// LoadToken returns the stored token, or "" when none is stored.
func (s *SessionStore) LoadToken(ctx context.Context) (string, error) {
	raw, err := s.repo().Get(ctx, common.StorageKeyToken)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SaveUser overwrites the stored user and leaves the token untouched.
func (s *SessionStore) SaveUser(ctx context.Context, u *models.User) error {
	return saveUser(ctx, s.repo(), u)
}

// SaveSession stores user and token together.
func (s *SessionStore) SaveSession(ctx context.Context, u *models.User, token string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := saveUser(ctx, repo, u); err != nil {
			return err
		}
		return repo.Set(ctx, common.StorageKeyToken, []byte(token))
	})
}

// ClearSession removes user and token together. Removing an absent
// session is not an error.
func (s *SessionStore) ClearSession(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.StorageKeyUser); err != nil {
			return err
		}
		return repo.Delete(ctx, common.StorageKeyToken)
	})
}

// Wipe removes every record of the local store, not only the session, and
// reports how many were removed.
func (s *SessionStore) Wipe(ctx context.Context) (int, error) {
	var n int
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		all, err := repo.List(ctx)
		if err != nil {
			return err
		}
		n = len(all)
		return repo.Clear(ctx)
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func saveUser(ctx context.Context, repo Repository, u *models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return repo.Set(ctx, common.StorageKeyUser, raw)
}
