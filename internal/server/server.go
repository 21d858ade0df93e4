// Package server boots DineHub's HTTP and gRPC listeners and tears them
// down on shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shashiranjanraj/dinehub/app/routes"
	"github.com/shashiranjanraj/dinehub/config"
	"github.com/shashiranjanraj/dinehub/pkg/cache"
	"github.com/shashiranjanraj/dinehub/pkg/database"
	"github.com/shashiranjanraj/dinehub/pkg/grpc"
	"github.com/shashiranjanraj/dinehub/pkg/logger"
	"github.com/shashiranjanraj/dinehub/pkg/orm"
	"github.com/shashiranjanraj/dinehub/pkg/storage"
	"github.com/shashiranjanraj/dinehub/pkg/ws"
)

const shutdownTimeout = 15 * time.Second

// Start serves until ctx is cancelled (SIGINT/SIGTERM from the CLI), then
// drains both listeners.
func Start(ctx context.Context) error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if config.LogMongoURI() != "" {
		if err := logger.EnableMongo(); err != nil {
			logger.Warn("mongo log sink disabled", "error", err)
		}
	}
	defer logger.Close()

	if err := database.Connect(); err != nil {
		return err
	}
	defer database.Close()

	if err := cache.Connect(); err != nil {
		logger.Warn("cache disabled", "error", err)
	} else {
		orm.CacheStore = cache.Store{}
		defer cache.Close()
	}

	if err := storage.Connect(); err != nil {
		return err
	}

	hub := ws.NewHub(config.CORSAllowedOrigins()...)
	go hub.Run(ctx)
	stopListening := ListenCatalogEvents(hub)
	defer stopListening()

	handler, err := Handler(routes.Deps{
		DB:       database.DB,
		CacheTTL: time.Duration(config.CacheTTLSeconds()) * time.Second,
		Hub:      hub,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	grpcSrv, _, err := grpc.Start(config.GRPCPort(), pingDB)
	if err != nil {
		return err
	}
	defer grpc.Stop(grpcSrv)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("DineHub HTTP server starting", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// pingDB backs the gRPC health check.
func pingDB(ctx context.Context) error {
	if database.DB == nil {
		return errors.New("database not connected")
	}
	sqlDB, err := database.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
