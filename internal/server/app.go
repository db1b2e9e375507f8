// Package server wires the storefront together: it opens the database,
// applies migrations, provisions the admin account, builds the services and
// runs the HTTP server until the process is asked to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gamestore/internal/logging"
	"github.com/dmitrijs2005/gamestore/internal/server/config"
	"github.com/dmitrijs2005/gamestore/internal/server/httpapi"
	"github.com/dmitrijs2005/gamestore/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gamestore/internal/server/services"
)

type App struct {
	config   *config.Config
	root     logging.Logger
	logger   logging.Logger
	db       *sql.DB
	services httpapi.Services
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	root := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)
	logger := root.With("module", "app")

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	admins := services.NewAdminService(db, rm, c)

	created, err := admins.EnsureAdmin(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("admin provisioning: %w", err)
	}
	if created {
		logger.Info(ctx, "Admin user created")
	}

	return &App{
		config: c,
		root:   root,
		logger: logger,
		db:     db,
		services: httpapi.Services{
			Accounts: services.NewAccountService(db, rm, c),
			Admins:   admins,
			Catalog:  services.NewCatalogService(db, rm),
			Orders:   services.NewOrderService(db, rm, c),
			Uploads:  services.NewUploadService(c),
		},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.root, app.services)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives or the server fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing database", "error", err.Error())
	}
	app.logger.Info(ctx, "App stopped")
}
