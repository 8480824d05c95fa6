package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/gymtrack/internal/client/client"
	"github.com/dmitrijs2005/gymtrack/internal/client/config"
	"github.com/dmitrijs2005/gymtrack/internal/client/repositories/storage"
	"github.com/dmitrijs2005/gymtrack/internal/client/services"
	"github.com/dmitrijs2005/gymtrack/internal/filex"
	"github.com/dmitrijs2005/gymtrack/internal/logging"
)

const sessionDBName = "session.db"

type App struct {
	config   *config.Config
	baseURL  string
	log      logging.Logger
	db       *sql.DB
	auth     *services.AuthService
	workouts *services.WorkoutService
	profile  *services.ProfileService
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the session database under c.DataDir and builds the services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, sessionDBName))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, client.WithLogger(log))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	auth := services.NewAuthService(apiClient, storage.NewSessionStore(db), log)

	return &App{
		config:   c,
		baseURL:  apiClient.BaseURL(),
		log:      log,
		db:       db,
		auth:     auth,
		workouts: services.NewWorkoutService(auth, apiClient),
		profile:  services.NewProfileService(auth, apiClient),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores the stored session and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.auth.RestoreSession(ctx)
	unsubscribe := a.auth.Subscribe(a.onSessionChange)
	defer unsubscribe()

	fmt.Fprintln(a.out, "Welcome to gymtrack (type 'help' for commands)")
	fmt.Fprintf(a.out, "Server: %s\n", a.baseURL)
	if u := a.auth.User(); u != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Name)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) getStatus() string {
	u := a.auth.User()
	if u == nil {
		return ""
	}
	return "(" + u.Name + ")"
}

func (a *App) onSessionChange(s services.SessionState) {
	if !s.Authenticated() {
		fmt.Fprintln(a.out, "You are signed out.")
	}
}
