package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/ellinika/syntaxis/internal/adapter/memory"
	"github.com/ellinika/syntaxis/internal/adapter/postgres"
	"github.com/ellinika/syntaxis/internal/adapter/postgres/word"
	"github.com/ellinika/syntaxis/internal/adapter/sqlite"
	"github.com/ellinika/syntaxis/internal/config"
	"github.com/ellinika/syntaxis/internal/generator"
	"github.com/ellinika/syntaxis/internal/lexicon"
	"github.com/ellinika/syntaxis/internal/service/generate"
	"github.com/ellinika/syntaxis/internal/transport/middleware"
	"github.com/ellinika/syntaxis/internal/transport/rest"
)

// pinger is the health-check view of a store backend.
type pinger interface {
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, initializes
// the logger, opens the configured lexicon store, wires the generation
// pipeline, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("lexicon_store", cfg.Lexicon.Store),
	)

	store, ping, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	engine := lexicon.NewEngine(store)
	gen := generator.New(engine)
	svc := generate.NewService(logger, gen, cfg.Generation)

	handler := newRouter(cfg, logger, svc, ping)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// openStore creates the lexicon store selected by the configuration, a
// matching health pinger, and a cleanup function.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (lexicon.Store, pinger, func(), error) {
	switch cfg.Lexicon.Store {
	case config.StorePostgres:
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		repo := word.New(pool, postgres.NewTxManager(pool))
		return repo, pool, pool.Close, nil

	case config.StoreSQLite:
		store, err := sqlite.Open(cfg.Lexicon.SQLitePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open lexicon: %w", err)
		}
		closer := func() {
			if err := store.Close(); err != nil {
				logger.Warn("close lexicon", slog.String("error", err.Error()))
			}
		}
		return store, store, closer, nil

	case config.StoreMemory:
		return memory.NewStore(), rest.NoopPinger{}, func() {}, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown lexicon store %q", cfg.Lexicon.Store)
	}
}

func newRouter(cfg *config.Config, logger *slog.Logger, svc *generate.Service, ping pinger) http.Handler {
	mux := http.NewServeMux()

	health := rest.NewHealthHandler(ping, BuildVersion())
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	gen := rest.NewGenerateHandler(svc, cfg.Generation.Timeout, logger)
	mux.HandleFunc("POST /v1/generate", gen.Generate)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)
	return chain(mux)
}
