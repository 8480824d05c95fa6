package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvServerURL      = "GYM_SERVER_URL"
	EnvRequestTimeout = "GYM_REQUEST_TIMEOUT"
	EnvDataDir        = "GYM_DATA_DIR"
	EnvLogLevel       = "GYM_LOG_LEVEL"
)

// dotEnvFile is read from the working directory when present.
var dotEnvFile = ".env"

// parseEnv overlays Config with GYM_* variables. Values from a .env file are
// used only for variables the process environment does not set.
//
// GYM_REQUEST_TIMEOUT accepts a Go duration ("5s") or whole seconds ("5").
// Panics on an unreadable .env file or an invalid timeout.
func parseEnv(cfg *Config) {
	fileVals, err := godotenv.Read(dotEnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(fileVals[key])
	}

	if v := lookup(EnvServerURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := lookup(EnvRequestTimeout); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v := lookup(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := lookup(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

func parseTimeout(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}
