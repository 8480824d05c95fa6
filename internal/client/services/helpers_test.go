package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gymtrack/internal/client/client"
	"github.com/dmitrijs2005/gymtrack/internal/client/models"
	"github.com/dmitrijs2005/gymtrack/internal/client/repositories/storage"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "ana@example.com"
	testPassword = "123456"
	testToken    = "tok-1"
)

// fakeBackend is a minimal gym API: one account, one valid token.
type fakeBackend struct {
	mu      sync.Mutex
	name    string
	avatar  string
	token   string
	auth    []string
	history []models.ID
	revoked bool
	srv     *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{name: "Ana", token: testToken}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /sessions", b.sessions)
	mux.HandleFunc("POST /users", b.createUser)
	mux.HandleFunc("PUT /users", b.authorized(b.updateUser))
	mux.HandleFunc("PATCH /users/avatar", b.authorized(b.uploadAvatar))
	mux.HandleFunc("GET /groups", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, []string{"costas", "ombro", "pernas"})
	}))
	mux.HandleFunc("GET /exercises/bygroup/{group}", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, []map[string]any{{"id": 1, "name": "Remada", "group": r.PathValue("group"), "thumb": "remada.png", "demo": "remada.gif"}})
	}))
	mux.HandleFunc("GET /exercises/{id}", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, map[string]any{"id": r.PathValue("id"), "name": "Remada", "series": 3, "repetitions": 12})
	}))
	mux.HandleFunc("POST /history", b.authorized(b.recordHistory))
	mux.HandleFunc("GET /history", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, []map[string]any{{"title": "26.08.22", "data": []map[string]any{{"id": 1, "name": "Remada", "group": "costas", "hour": "08:10"}}}})
	}))

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func (b *fakeBackend) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")

		b.mu.Lock()
		b.auth = append(b.auth, h)
		ok := !b.revoked && h == "Bearer "+b.token
		b.mu.Unlock()

		if !ok {
			reply(w, http.StatusUnauthorized, map[string]string{"message": "token.invalid"})
			return
		}
		next(w, r)
	}
}

func (b *fakeBackend) sessions(w http.ResponseWriter, r *http.Request) {
	var c models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil || c.Email != testEmail || c.Password != testPassword {
		reply(w, http.StatusBadRequest, map[string]string{"message": "Invalid credentials"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	reply(w, http.StatusOK, map[string]any{
		"user":  map[string]any{"id": 1, "name": b.name, "email": testEmail, "avatar": b.avatar},
		"token": b.token,
	})
}

func (b *fakeBackend) createUser(w http.ResponseWriter, r *http.Request) {
	var u models.NewUser
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		reply(w, http.StatusBadRequest, map[string]string{"message": "Invalid body"})
		return
	}
	if u.Email == testEmail {
		reply(w, http.StatusBadRequest, map[string]string{"message": "User already exists"})
		return
	}
	reply(w, http.StatusCreated, nil)
}

func (b *fakeBackend) updateUser(w http.ResponseWriter, r *http.Request) {
	var u models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		reply(w, http.StatusBadRequest, map[string]string{"message": "Invalid body"})
		return
	}
	if u.Password != "" && u.OldPassword != testPassword {
		reply(w, http.StatusBadRequest, map[string]string{"message": "Old password does not match"})
		return
	}

	b.mu.Lock()
	b.name = u.Name
	b.mu.Unlock()
	reply(w, http.StatusOK, nil)
}

func (b *fakeBackend) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	_, hdr, err := r.FormFile("avatar")
	if err != nil {
		reply(w, http.StatusBadRequest, map[string]string{"message": "Missing avatar"})
		return
	}

	b.mu.Lock()
	b.avatar = "1-" + hdr.Filename
	avatar := b.avatar
	b.mu.Unlock()
	reply(w, http.StatusOK, map[string]any{"id": 1, "name": "Ana", "email": testEmail, "avatar": avatar})
}

func (b *fakeBackend) recordHistory(w http.ResponseWriter, r *http.Request) {
	var e models.HistoryEntry
	_ = json.NewDecoder(r.Body).Decode(&e)
	b.mu.Lock()
	b.history = append(b.history, e.ExerciseID)
	b.mu.Unlock()
	reply(w, http.StatusCreated, nil)
}

func (b *fakeBackend) revoke() {
	b.mu.Lock()
	b.revoked = true
	b.mu.Unlock()
}

func (b *fakeBackend) lastAuth() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.auth) == 0 {
		return ""
	}
	return b.auth[len(b.auth)-1]
}

type fixture struct {
	backend *fakeBackend
	client  *client.HTTPClient
	store   *storage.SessionStore
	dbPath  string
	auth    *AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	backend := newFakeBackend(t)

	c, err := client.NewHTTPClient(backend.srv.URL, time.Second)
	require.NoError(t, err)

	f := &fixture{backend: backend, client: c, dbPath: filepath.Join(t.TempDir(), "session.db")}
	f.store = f.openStore(t)
	f.auth = NewAuthService(c, f.store, nil)
	return f
}

// openStore opens the session database file, as a fresh process would.
func (f *fixture) openStore(t *testing.T) *storage.SessionStore {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), f.dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewSessionStore(db)
}

// restart simulates an application restart over the same database.
func (f *fixture) restart(t *testing.T) *AuthService {
	t.Helper()
	a := NewAuthService(f.client, f.openStore(t), nil)
	a.RestoreSession(context.Background())
	return a
}

func (f *fixture) signIn(t *testing.T) {
	t.Helper()
	require.NoError(t, f.auth.SignIn(context.Background(), testEmail, testPassword))
}
