package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/gymtrack/internal/client/client"
	"github.com/dmitrijs2005/gymtrack/internal/client/models"
	"github.com/dmitrijs2005/gymtrack/internal/logging"
)

var (
	// ErrAuthentication wraps every SignIn failure. The API error stays
	// reachable through errors.As.
	ErrAuthentication = errors.New("authentication failed")
	// ErrNotAuthenticated is returned by operations that need a session.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// SessionStore persists the session pair. Implemented by
// storage.SessionStore.
type SessionStore interface {
	LoadUser(ctx context.Context) (*models.User, error)
	LoadToken(ctx context.Context) (string, error)
	SaveUser(ctx context.Context, u *models.User) error
	SaveSession(ctx context.Context, u *models.User, token string) error
	ClearSession(ctx context.Context) error
	Wipe(ctx context.Context) (int, error)
}

// SessionState is what subscribers receive after every transition.
type SessionState struct {
	User *models.User
}

func (s SessionState) Authenticated() bool {
	return s.User != nil
}

// AuthService is the single owner of the signed-in user and its token.
//
// The user and the token are always set and cleared together, in memory and
// in the store. The loading flag is true until RestoreSession completes and
// while the store is being written.
type AuthService struct {
	client client.Client
	store  SessionStore
	log    logging.Logger

	mu    sync.Mutex
	user  *models.User
	token string

	loading atomic.Bool

	subMu   sync.Mutex
	subs    map[int]func(SessionState)
	nextSub int
}

func NewAuthService(c client.Client, store SessionStore, log logging.Logger) *AuthService {
	if log == nil {
		log = logging.Discard()
	}
	a := &AuthService{
		client: c,
		store:  store,
		log:    log,
		subs:   make(map[int]func(SessionState)),
	}
	a.loading.Store(true)
	return a
}

// RestoreSession loads a previously persisted session. Storage failures are
// logged and leave the session anonymous.
func (a *AuthService) RestoreSession(ctx context.Context) {
	a.loading.Store(true)
	defer a.loading.Store(false)

	a.mu.Lock()
	user, token, err := a.loadStored(ctx)
	if err != nil {
		a.mu.Unlock()
		a.log.Warn(ctx, "session restore failed", "error", err)
		return
	}
	if user == nil || token == "" {
		a.mu.Unlock()
		a.log.Debug(ctx, "no stored session")
		return
	}
	a.user, a.token = user, token
	state := a.stateLocked()
	a.mu.Unlock()

	a.log.Info(ctx, "session restored", "user_id", user.ID.String())
	a.notify(state)
}

func (a *AuthService) loadStored(ctx context.Context) (*models.User, string, error) {
	user, err := a.store.LoadUser(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load user: %w", err)
	}
	token, err := a.store.LoadToken(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load token: %w", err)
	}
	return user, token, nil
}

// SignIn authenticates against the backend, persists the session and
// publishes it. No retry is attempted.
func (a *AuthService) SignIn(ctx context.Context, email, password string) error {
	s, err := a.client.CreateSession(ctx, email, password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	a.mu.Lock()
	a.loading.Store(true)
	err = a.store.SaveSession(ctx, s.User, s.Token)
	if err == nil {
		a.user, a.token = copyUser(s.User), s.Token
	}
	a.loading.Store(false)
	state := a.stateLocked()
	a.mu.Unlock()

	if err != nil {
		return fmt.Errorf("%w: save session: %w", ErrAuthentication, err)
	}

	a.log.Info(ctx, "signed in", "user_id", s.User.ID.String())
	a.notify(state)
	return nil
}

// SignUp creates the account and signs in with the same credentials.
func (a *AuthService) SignUp(ctx context.Context, name, email, password string) error {
	if err := a.client.CreateUser(ctx, models.NewUser{Name: name, Email: email, Password: password}); err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	a.log.Info(ctx, "account created")
	return a.SignIn(ctx, email, password)
}

// SignOut clears the session in memory and in the store. The in-memory
// session is cleared even when the store cannot be written.
func (a *AuthService) SignOut(ctx context.Context) error {
	a.mu.Lock()
	err := a.clearLocked(ctx)
	a.mu.Unlock()

	a.log.Info(ctx, "signed out")
	a.notify(SessionState{})
	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

// Forget signs out and erases the whole local store. It returns the number
// of records removed.
func (a *AuthService) Forget(ctx context.Context) (int, error) {
	a.mu.Lock()
	a.loading.Store(true)
	a.user, a.token = nil, ""
	n, err := a.store.Wipe(ctx)
	a.loading.Store(false)
	a.mu.Unlock()

	a.log.Info(ctx, "signed out, local data erased", "records", n)
	a.notify(SessionState{})
	if err != nil {
		return 0, fmt.Errorf("erase local data: %w", err)
	}
	return n, nil
}

func (a *AuthService) clearLocked(ctx context.Context) error {
	a.loading.Store(true)
	defer a.loading.Store(false)

	a.user, a.token = nil, ""
	return a.store.ClearSession(ctx)
}

// UpdateProfile replaces the signed-in user and persists it. The token is
// left untouched.
func (a *AuthService) UpdateProfile(ctx context.Context, u *models.User) error {
	if u == nil {
		return errors.New("update profile: nil user")
	}

	a.mu.Lock()
	if a.user == nil {
		a.mu.Unlock()
		return ErrNotAuthenticated
	}
	a.loading.Store(true)
	err := a.store.SaveUser(ctx, u)
	if err == nil {
		a.user = copyUser(u)
	}
	a.loading.Store(false)
	state := a.stateLocked()
	a.mu.Unlock()

	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	a.log.Info(ctx, "profile updated", "user_id", u.ID.String())
	a.notify(state)
	return nil
}

// User returns a copy of the signed-in user, or nil.
func (a *AuthService) User() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return copyUser(a.user)
}

func (a *AuthService) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user != nil
}

func (a *AuthService) IsLoading() bool {
	return a.loading.Load()
}

func (a *AuthService) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

// ExpiresAt reports the exp claim of the current token, if it has one.
func (a *AuthService) ExpiresAt() (time.Time, bool) {
	return tokenExpiry(a.Token())
}

// Authorize returns ctx carrying the current bearer token. Anonymous
// sessions get ctx back unchanged.
func (a *AuthService) Authorize(ctx context.Context) context.Context {
	token := a.Token()
	if token == "" {
		return ctx
	}
	return client.WithAccessToken(ctx, token)
}

// WithSession runs fn with an authorized context. When the backend rejects
// the attached token with 401 the session is signed out; fn's error is
// returned either way.
func (a *AuthService) WithSession(ctx context.Context, fn func(ctx context.Context) error) error {
	token := a.Token()

	err := fn(a.Authorize(ctx))
	if err != nil && token != "" && errors.Is(err, client.ErrUnauthorized) {
		a.expire(ctx, token)
	}
	return err
}

// expire signs out if token is still the current one.
func (a *AuthService) expire(ctx context.Context, token string) {
	a.mu.Lock()
	if a.token != token {
		a.mu.Unlock()
		return
	}
	err := a.clearLocked(ctx)
	a.mu.Unlock()

	if err != nil {
		a.log.Warn(ctx, "clear expired session", "error", err)
	}
	a.log.Info(ctx, "session expired, signed out")
	a.notify(SessionState{})
}

// Subscribe registers fn to be called after every session transition. The
// returned function removes it.
func (a *AuthService) Subscribe(fn func(SessionState)) func() {
	a.subMu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	a.subMu.Unlock()

	return func() {
		a.subMu.Lock()
		delete(a.subs, id)
		a.subMu.Unlock()
	}
}

func (a *AuthService) notify(state SessionState) {
	a.subMu.Lock()
	fns := make([]func(SessionState), 0, len(a.subs))
	for _, fn := range a.subs {
		fns = append(fns, fn)
	}
	a.subMu.Unlock()

	for _, fn := range fns {
		fn(SessionState{User: copyUser(state.User)})
	}
}

func (a *AuthService) stateLocked() SessionState {
	return SessionState{User: copyUser(a.user)}
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
