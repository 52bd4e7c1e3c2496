package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/webBlaster/room-rant-backend/internal/config"
	"github.com/webBlaster/room-rant-backend/internal/core"
	"github.com/webBlaster/room-rant-backend/internal/store"
	"github.com/webBlaster/room-rant-backend/internal/store/sqlite"
	transporthttp "github.com/webBlaster/room-rant-backend/internal/transport/http"
)

// App wires together storage, the broadcast hub, and the HTTP transport.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	store           store.Store
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	st, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	ctx := context.Background()

	seeds := make([]store.Room, 0, len(cfg.Rooms))
	for _, r := range cfg.Rooms {
		seeds = append(seeds, store.Room{ID: r.ID, Name: r.Name, Description: r.Description})
	}
	if err := st.SeedRooms(ctx, seeds); err != nil {
		st.Close()
		return nil, fmt.Errorf("seed rooms: %w", err)
	}

	rooms, err := st.ListRooms(ctx)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	hub := core.NewHub(cfg.SubscriberBuffer, logger)
	for _, room := range rooms {
		hub.AddRoom(room.ID)
	}
	logger.Info().
		Int("rooms", len(rooms)).
		Str("db_path", cfg.DatabasePath).
		Msg("room catalog loaded")

	server := transporthttp.NewServer(hub, st, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		store:           st,
		log:             logger,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

// cleanup closes the store and other resources.
func (a *App) cleanup() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close store")
		} else {
			a.log.Info().Msg("store closed")
		}
	}
}
