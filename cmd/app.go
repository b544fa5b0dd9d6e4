package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/yevmiyelerim/yev/internal/config"
	"github.com/yevmiyelerim/yev/internal/logging"
	"github.com/yevmiyelerim/yev/internal/session"
	"github.com/yevmiyelerim/yev/internal/storage"
	"github.com/yevmiyelerim/yev/internal/storage/sqlite"
)

// app bundles what a command needs: configuration, logger and a loaded session.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	sess    *session.Session
	closeFn func() error
}

// openApp loads configuration, picks the backend and loads the session.
func openApp(ctx context.Context) (*app, error) {
	config.LoadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	a := &app{cfg: cfg, log: logging.For(logger, logging.ComponentCLI), closeFn: func() error { return nil }}

	var backend session.Backend
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("opening database %s: %w", cfg.SQLitePath, err)
		}
		backend, a.closeFn = db, db.Close
	default:
		backend = storage.NewFileBackend(cfg.DataDir, logger)
	}

	a.sess = session.New(backend, cfg.SeedJobs, logger)
	if err := a.sess.Load(ctx); err != nil {
		a.Close()
		return nil, err
	}
	a.log.Debug("session ready", "backend", cfg.Backend)
	return a, nil
}

// Close releases the backend.
func (a *app) Close() {
	if err := a.closeFn(); err != nil {
		a.log.Warn("closing backend", logging.FieldError, err)
	}
}

// mustOpenApp opens the app or exits with status 2.
func mustOpenApp(ctx context.Context) *app {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return a
}

// fatal reports err and exits with code after releasing the backend.
func (a *app) fatal(code int, err error) {
	fmt.Fprintln(os.Stderr, err)
	a.Close()
	os.Exit(code)
}
