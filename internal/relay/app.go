// Package relay initializes and runs the doorbell relay application.
// It opens the database, applies migrations, wires the ingestion pipeline
// and the change-feed gate to the push gateway, and starts the serving
// surfaces with graceful shutdown.
package relay

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/hyperaware/doorbell-relay/internal/logging"
	"github.com/hyperaware/doorbell-relay/internal/relay/config"
	"github.com/hyperaware/doorbell-relay/internal/relay/eventsource"
	"github.com/hyperaware/doorbell-relay/internal/relay/httpapi"
	"github.com/hyperaware/doorbell-relay/internal/relay/listener"
	"github.com/hyperaware/doorbell-relay/internal/relay/messaging"
	"github.com/hyperaware/doorbell-relay/internal/relay/repositories/repomanager"
	"github.com/hyperaware/doorbell-relay/internal/relay/services"

	gs "github.com/hyperaware/doorbell-relay/internal/relay/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	ingest  *services.IngestService
	gate    *services.GateService
	devices *services.DeviceService
	uploads *services.UploadService
	rings   *services.RingService
	tasks   *services.TaskService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	messenger := messaging.NewFCMClient(messaging.FCMClientOptions{
		Endpoint:  cfg.FCMEndpoint,
		ServerKey: cfg.FCMServerKey,
	})

	return &App{
		config:  cfg,
		logger:  logger,
		db:      db,
		ingest:  services.NewIngestService(db, rm, messenger, logger),
		gate:    services.NewGateService(messenger, logger),
		devices: services.NewDeviceService(db, rm, cfg),
		uploads: services.NewUploadService(cfg),
		rings:   services.NewRingService(db, rm),
		tasks:   services.NewTaskService(db, rm),
	}, nil
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

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.devices, app.uploads, app.rings, app.tasks, app.config.SecretKey)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startWebhookServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.ingest, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startChangeFeedListener(ctx context.Context, cancelFunc context.CancelFunc) {

	l := listener.NewListener(app.config.DatabaseDSN, app.gate, app.logger)

	if err := l.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startSpoolWatcher(ctx context.Context, cancelFunc context.CancelFunc) {

	w := eventsource.NewSpoolWatcher(app.config.SpoolDir, "pictures", app.ingest, app.logger)

	if err := w.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startWebhookServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startChangeFeedListener(ctx, cancelFunc)
	}()

	// local development event source, replaces bucket notifications
	if app.config.SpoolDir != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startSpoolWatcher(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
