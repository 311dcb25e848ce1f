package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jstrand/kanban-api/internal/config"
	"github.com/jstrand/kanban-api/internal/platform/dbconn"
	"github.com/jstrand/kanban-api/internal/platform/postgres"
	"github.com/jstrand/kanban-api/internal/service/auth"
	"github.com/jstrand/kanban-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Database connection lifecycle
	dbManager *dbconn.Manager
	dbHealth  *dbconn.Health

	// Stores (using interfaces for proper abstraction)
	userStore   store.UserStore
	boardStore  store.BoardStore
	columnStore store.ColumnStore
	taskStore   store.TaskStore
	txRunner    store.TxRunner

	// Service interfaces
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication creates a new application instance with all dependencies
// initialized. The database is not dialed here: the first request through
// the readiness middleware (or an explicit reconnect) triggers the connect
// sequence, which keeps cold starts cheap in serverless deployments.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.dbManager = dbconn.NewManager(dbconn.ManagerConfig{
		URL:         cfg.Database.URL,
		Serverless:  cfg.Database.Serverless,
		MaxIdleTime: cfg.Database.MaxIdleTime,
		Options:     poolOptions(cfg.Database),
		Policy: dbconn.Policy{
			MaxRetries: cfg.Database.MaxRetries,
			BaseDelay:  cfg.Database.RetryBaseDelay,
			MaxDelay:   cfg.Database.RetryMaxDelay,
		},
		Logger: logger,
		OnStateChange: func(s dbconn.State) {
			logger.Info("database connection state changed", "state", s.String())
		},
	})
	app.dbHealth = dbconn.NewHealth(app.dbManager)

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.passwordHasher = hasher
	app.passwordVerifier = hasher

	// All stores share the manager-backed handle, so they survive
	// idle-closes and reconnects without rebuilding.
	handle := app.dbManager.Handle()
	app.userStore = postgres.NewUserStore(handle, app.passwordHasher)
	app.boardStore = postgres.NewBoardStore(handle)
	app.columnStore = postgres.NewColumnStore(handle)
	app.taskStore = postgres.NewTaskStore(handle)
	app.txRunner = &dbTxRunner{handle: handle}

	logger.Info("Application initialized successfully")
	return app, nil
}

// poolOptions selects the pool profile for the configured execution
// mode and overlays the configured connect timeout on it.
func poolOptions(cfg config.DatabaseConfig) dbconn.Options {
	opts := dbconn.PersistentOptions()
	if cfg.Serverless {
		opts = dbconn.ServerlessOptions()
	}
	if cfg.ConnectTimeout > 0 {
		opts.ConnectTimeout = cfg.ConnectTimeout
	}
	return opts
}

// dbTxRunner adapts the manager-backed handle to store.TxRunner. Each
// transaction begins on whatever *sql.DB the manager currently holds,
// reconnecting first if the connection was idle-closed.
type dbTxRunner struct {
	handle *dbconn.DBHandle
}

func (r *dbTxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	db, err := r.handle.DB(ctx)
	if err != nil {
		return err
	}
	return store.RunInTransaction(ctx, db, fn)
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.dbManager.Disconnect(ctx); err != nil {
		app.logger.Error("Error closing database connection", "error", err)
	}
}
