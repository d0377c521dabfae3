// Package server wires the Snapfeed backend together: configuration, the
// PostgreSQL document and account stores, token auth, the gRPC endpoint with
// its Watch streams, and the HTTP media upload endpoint. It also handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/snapfeed/snapfeed/internal/logging"
	"github.com/snapfeed/snapfeed/internal/server/config"
	"github.com/snapfeed/snapfeed/internal/server/db"
	"github.com/snapfeed/snapfeed/internal/server/documents"
	"github.com/snapfeed/snapfeed/internal/server/media"
	"github.com/snapfeed/snapfeed/internal/server/users"

	gs "github.com/snapfeed/snapfeed/internal/server/grpc"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	manager         *db.PostgresRepositoryManager
	userService     *users.Service
	documentService *documents.Service
	mediaService    *media.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	userRepo, err := m.Users()
	if err != nil {
		return nil, err
	}
	tokenRepo, err := m.RefreshTokens()
	if err != nil {
		return nil, err
	}
	docRepo, err := m.Documents()
	if err != nil {
		return nil, err
	}

	us := users.NewService(userRepo, tokenRepo, c)
	ds := documents.NewService(docRepo, documents.NewHub())

	store, err := media.NewS3Store(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("object storage init error: %w", err)
	}
	ms := media.NewService(store, c)

	return &App{
		config:          c,
		logger:          logger,
		manager:         m,
		userService:     us,
		documentService: ds,
		mediaService:    ms,
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.documentService, app.config.SecretKey)

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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	handler := media.NewHandler(app.mediaService, app.config.UploadPreset, app.logger)

	srv := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: handler.Routes(),
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		if err := srv.Shutdown(context.Background()); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.config.EndpointAddrHTTP)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
