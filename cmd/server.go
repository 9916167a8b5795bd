package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seat-booking/internal/data/repository"
	"seat-booking/internal/wire"
	"seat-booking/pkg/database"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 10 * time.Second
	limiterIdle     = 10 * time.Minute
)

// Serve builds the stores, wires the router and runs the HTTP server until
// ctx is cancelled or the process receives SIGINT/SIGTERM.
func Serve(ctx context.Context, config *utils.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := utils.InitLogger(config.App)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v. Using production defaults.\n", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("store", config.Store.Driver),
		zap.String("session_store", config.Session.Store),
	)

	docs, closeDocs, err := openDocumentStore(ctx, config, logger)
	if err != nil {
		return err
	}
	defer closeDocs()

	sessions, closeSessions, err := openSessionStore(ctx, config, logger)
	if err != nil {
		return err
	}
	defer closeSessions()

	repo := repository.NewRepository(docs, sessions, logger)
	app := wire.Wiring(repo, config, logger)

	if err := app.Service.User.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return APIServer(gctx, app.Router, config.App.Port, logger)
	})

	g.Go(func() error {
		ticker := time.NewTicker(config.Session.SweepInterval())
		defer ticker.Stop()

		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				removed, err := repo.Session.CleanExpiredSessions(gctx)
				if err != nil {
					logger.Warn("Session sweep failed", zap.Error(err))
				} else if removed > 0 {
					logger.Info("Expired sessions removed", zap.Int("count", removed))
				}
				app.LoginLimits.Prune(limiterIdle)
			}
		}
	})

	return g.Wait()
}

// APIServer serves handler on port until ctx is done, then shuts down
// gracefully.
func APIServer(ctx context.Context, handler http.Handler, port string, logger *zap.Logger) error {
	addr := fmt.Sprintf(":%s", port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", zap.String("addr", "http://localhost"+addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openDocumentStore(ctx context.Context, config *utils.Config, logger *zap.Logger) (repository.DocumentStore, func(), error) {
	switch config.Store.Driver {
	case utils.StoreDriverPostgres:
		db, err := database.InitDB(ctx, config.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		if err := repository.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		logger.Info("Database connected successfully")
		return repository.NewPgDocumentStore(db, logger), db.Close, nil
	default:
		docs, err := repository.NewFileDocumentStore(config.Store.DataDir, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open data dir: %w", err)
		}
		return docs, func() {}, nil
	}
}

func openSessionStore(ctx context.Context, config *utils.Config, logger *zap.Logger) (repository.SessionRepository, func(), error) {
	switch config.Session.Store {
	case utils.SessionStoreRedis:
		client, err := database.InitRedis(ctx, config.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))
		return repository.NewRedisSessionRepository(client, nil, logger), func() { client.Close() }, nil
	default:
		return repository.NewMemorySessionRepository(nil, logger), func() {}, nil
	}
}
