package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gymtrack/internal/client/client"
	"github.com/dmitrijs2005/gymtrack/internal/client/config"
	"github.com/dmitrijs2005/gymtrack/internal/client/models"
	"github.com/dmitrijs2005/gymtrack/internal/client/repositories/storage"
	"github.com/dmitrijs2005/gymtrack/internal/client/services"
	"github.com/dmitrijs2005/gymtrack/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	authorized := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer tok-1" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "token.invalid"})
				return
			}
			next(w, r)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /sessions", func(w http.ResponseWriter, r *http.Request) {
		var c map[string]string
		_ = json.NewDecoder(r.Body).Decode(&c)
		if c["email"] != "ana@example.com" || c["password"] != "123456" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"user":  map[string]any{"id": 1, "name": "Ana", "email": "ana@example.com"},
			"token": "tok-1",
		})
	})
	mux.HandleFunc("PUT /users", authorized(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, nil)
	}))
	mux.HandleFunc("GET /groups", authorized(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []string{"costas", "pernas"})
	}))
	mux.HandleFunc("GET /exercises/{id}", authorized(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 3, "name": "Remada", "group": "costas", "series": 3, "repetitions": 12, "demo": "remada.gif"})
	}))
	mux.HandleFunc("POST /history", authorized(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, nil)
	}))
	mux.HandleFunc("GET /history", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "<html>boom</html>")
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newTestApp builds an App over a temporary database and the given backend.
// passwords are returned by the password prompt in order.
func newTestApp(t *testing.T, baseURL string, input string, passwords ...string) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), sessionDBName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	apiClient, err := client.NewHTTPClient(baseURL, time.Second)
	require.NoError(t, err)

	auth := services.NewAuthService(apiClient, storage.NewSessionStore(db), nil)
	auth.RestoreSession(ctx)

	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(prompt string, w io.Writer) ([]byte, error) {
		require.NotEmpty(t, passwords, "unexpected password prompt %q", prompt)
		pw := passwords[0]
		passwords = passwords[1:]
		return []byte(pw), nil
	}

	var out bytes.Buffer
	return &App{
		config:   &config.Config{},
		baseURL:  apiClient.BaseURL(),
		log:      logging.Discard(),
		db:       db,
		auth:     auth,
		workouts: services.NewWorkoutService(auth, apiClient),
		profile:  services.NewProfileService(auth, apiClient),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      &out,
	}, &out
}

func TestApp_SignIn(t *testing.T) {
	srv := newBackend(t)
	a, out := newTestApp(t, srv.URL, "ana@example.com\n", "123456")

	require.NoError(t, a.SignIn(context.Background()))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(Ana)", a.getStatus())
	assert.Contains(t, out.String(), "Hello, Ana!")
}

func TestApp_SignIn_ShowsBackendMessage(t *testing.T) {
	srv := newBackend(t)
	a, out := newTestApp(t, srv.URL, "bad@x.com\n", "wrong1")

	require.Error(t, a.SignIn(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Invalid credentials\n")
}

func TestApp_SignIn_ValidationPerField(t *testing.T) {
	srv := newBackend(t)
	a, out := newTestApp(t, srv.URL, "not-an-email\n", "123")

	require.Error(t, a.SignIn(context.Background()))
	assert.Contains(t, out.String(), "  email: Enter a valid e-mail\n")
	assert.Contains(t, out.String(), "  password: The password must have at least 6 characters\n")
}

func TestApp_SignIn_UnreachableBackendUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a, out := newTestApp(t, url, "ana@example.com\n", "123456")

	require.Error(t, a.SignIn(context.Background()))
	assert.Contains(t, out.String(), msgSignInFailed)
}

func TestApp_WorkoutCommands(t *testing.T) {
	srv := newBackend(t)
	a, out := newTestApp(t, srv.URL, "ana@example.com\n", "123456")
	ctx := context.Background()
	require.NoError(t, a.SignIn(ctx))

	require.NoError(t, a.Groups(ctx))
	require.NoError(t, a.Exercise(ctx, "3"))
	require.NoError(t, a.Done(ctx, "3"))
	require.Error(t, a.History(ctx))

	s := out.String()
	assert.Contains(t, s, "  costas\n  pernas\n")
	assert.Contains(t, s, "Remada (costas)")
	assert.Contains(t, s, srv.URL+"/exercise/demo/remada.gif")
	assert.Contains(t, s, "Congratulations! Exercise recorded.")
	assert.Contains(t, s, msgHistoryFailed, "transport errors show the fallback")
	assert.NotContains(t, s, "boom")
}

func TestApp_Profile_KeepsPasswordWhenEmpty(t *testing.T) {
	srv := newBackend(t)
	a, out := newTestApp(t, srv.URL, "ana@example.com\nAna Maria\n", "123456", "")
	ctx := context.Background()
	require.NoError(t, a.SignIn(ctx))

	require.NoError(t, a.Profile(ctx))
	assert.Equal(t, "Ana Maria", a.auth.User().Name)
	assert.Contains(t, out.String(), "Profile updated!")
}

func TestApp_Profile_MismatchedConfirmation(t *testing.T) {
	srv := newBackend(t)
	a, out := newTestApp(t, srv.URL, "ana@example.com\n\n", "123456", "abcdef", "abcxyz", "123456")
	ctx := context.Background()
	require.NoError(t, a.SignIn(ctx))

	require.Error(t, a.Profile(ctx))
	assert.Equal(t, "Ana", a.auth.User().Name)
	assert.Contains(t, out.String(), "  password_confirm: Password confirmation does not match\n")
}

func TestApp_Photo_TooLarge(t *testing.T) {
	srv := newBackend(t)
	a, out := newTestApp(t, srv.URL, "ana@example.com\n", "123456")
	ctx := context.Background()
	require.NoError(t, a.SignIn(ctx))

	p := filepath.Join(t.TempDir(), "big.png")
	f, err := os.Create(p)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(services.MaxPhotoSize+1))
	require.NoError(t, f.Close())

	require.Error(t, a.Photo(ctx, p))
	assert.Contains(t, out.String(), "  avatar: This image is too large. Choose one of up to 5MB\n")
}

func TestApp_WhoAmIAndSignOut(t *testing.T) {
	srv := newBackend(t)
	a, out := newTestApp(t, srv.URL, "ana@example.com\n", "123456")
	ctx := context.Background()

	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "Not signed in.")

	require.NoError(t, a.SignIn(ctx))
	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "E-mail: ana@example.com")

	require.NoError(t, a.SignOut(ctx, false))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.getStatus())
}

func TestApp_ExpiredSessionIsAnnounced(t *testing.T) {
	srv := newBackend(t)
	a, out := newTestApp(t, srv.URL, "")
	ctx := context.Background()

	// A stored session whose token the backend no longer accepts.
	store := storage.NewSessionStore(a.db)
	require.NoError(t, store.SaveSession(ctx, &models.User{ID: "1", Name: "Ana"}, "stale"))
	a.auth.RestoreSession(ctx)
	require.True(t, a.isLoggedIn())

	unsubscribe := a.auth.Subscribe(a.onSessionChange)
	defer unsubscribe()

	require.Error(t, a.Groups(ctx))
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "token.invalid\n")
	assert.Contains(t, out.String(), "You are signed out.")
}

func TestApp_SignOutAllErasesLocalData(t *testing.T) {
	srv := newBackend(t)
	a, out := newTestApp(t, srv.URL, "ana@example.com\n", "123456")
	ctx := context.Background()
	require.NoError(t, a.SignIn(ctx))

	require.NoError(t, a.SignOut(ctx, true))
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Local data erased (2 records).")

	tok, err := storage.NewSessionStore(a.db).LoadToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestApp_Run_WritesBannerAndPromptToOutput(t *testing.T) {
	srv := newBackend(t)
	a, out := newTestApp(t, srv.URL, "help\nexit\n")

	a.Run(context.Background())

	s := out.String()
	assert.Contains(t, s, "Server: "+srv.URL+"\n")
	assert.Contains(t, s, "gym > Available commands: signin, signup, exit\n")
	assert.True(t, strings.HasSuffix(s, "gym > Bye!\n"))
}
