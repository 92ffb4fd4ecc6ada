// Package server wires configuration, storage and services together and runs
// the gRPC and HTTP surfaces until the process is signalled to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/server/biblio"
	"github.com/dmitrijs2005/bookshelf/internal/server/catalog"
	"github.com/dmitrijs2005/bookshelf/internal/server/config"
	"github.com/dmitrijs2005/bookshelf/internal/server/httpapi"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bookshelf/internal/server/services"
	"github.com/dmitrijs2005/bookshelf/internal/server/transport"

	gs "github.com/dmitrijs2005/bookshelf/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	services transport.Services
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		services: buildServices(c, db, rm, logger),
	}, nil
}

func buildServices(c *config.Config, db *sql.DB, rm repomanager.RepositoryManager, logger logging.Logger) transport.Services {
	engine := catalog.NewEngine(rm.Books(db), catalog.Config{
		PhysicalPageSize: c.PhysicalPageSize,
		MaxPageFetches:   c.MaxPageFetches,
		MaxPageSize:      c.MaxPageSize,
	}, logger)

	httpClient := &http.Client{Timeout: c.LookupTimeout}
	providers := []biblio.Provider{biblio.NewOpenBD(c.OpenBDBaseURL, httpClient)}
	if c.RakutenApplicationID != "" {
		providers = append(providers, biblio.NewRakuten(c.RakutenBaseURL, c.RakutenApplicationID, httpClient))
	}

	return transport.Services{
		Catalog: engine,
		Books:   services.NewBookService(db, rm, logger),
		Lending: services.NewLendingService(db, rm, logger),
		Lookup:  biblio.NewResolver(logger, providers...),
		Export:  services.NewExportService(db, rm, c, logger),
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.services, app.db, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
