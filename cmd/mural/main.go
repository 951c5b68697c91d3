package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/muralhq/mural/internal/api"
	"github.com/muralhq/mural/internal/config"
	"github.com/muralhq/mural/internal/domain"
	"github.com/muralhq/mural/internal/handlers"
	"github.com/muralhq/mural/internal/log"
	"github.com/muralhq/mural/internal/objstore"
	"github.com/muralhq/mural/internal/service"
	"github.com/muralhq/mural/internal/source"
	"github.com/muralhq/mural/internal/store"
)

// Version is set at build time via -ldflags
var Version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("mural %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting mural", "version", Version, "source", cfg.Source.Type)

	backend, err := source.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create backend: %w", err)
	}

	localStore, err := store.NewLocalStore(config.DefaultDataPath())
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer localStore.Close()

	var storage domain.ObjectStorage
	if cfg.Storage.Bucket != "" {
		storage, err = objstore.NewS3Storage(context.Background(), cfg.Storage, logger)
		if err != nil {
			return fmt.Errorf("failed to create object storage: %w", err)
		}
	} else {
		logger.Warn("no storage bucket configured, uploads are kept in memory")
		storage = objstore.NewMemoryStorage()
	}

	cache := service.NewQueryCache(logger)
	favoritesSvc := service.NewFavorites(localStore, backend.Favorites, backend.Catalog, backend.Sessions, cache, logger)
	wallpapersSvc := service.NewWallpapers(backend.Catalog, favoritesSvc, cache, logger)
	searchSvc := service.NewSearch(backend.Catalog, cache, logger)
	adminSvc := service.NewAdmin(backend.Catalog, storage, backend.Sessions, cache, logger)

	router := mux.NewRouter()
	api.Register(
		router,
		handlers.NewWallpapersHandler(wallpapersSvc),
		handlers.NewSearchHandler(searchSvc),
		handlers.NewFavoritesHandler(favoritesSvc),
		handlers.NewAdminHandler(adminSvc),
	)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
