package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/guikarist/gym-tictactoe/internal/config"
	"github.com/guikarist/gym-tictactoe/internal/entity"
	"github.com/guikarist/gym-tictactoe/internal/repository"
	"github.com/guikarist/gym-tictactoe/internal/repository/storage"
	"github.com/guikarist/gym-tictactoe/internal/usecase"
	"github.com/guikarist/gym-tictactoe/transport/rest"
)

var (
	ErrAddrNotFound   = errors.New("redis address string is empty")
	ErrUnknownStorage = errors.New("unknown storage")
)

// RunApp - runs the HTTP environment server until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	defaults, err := EnvDefaults(conf.Env)
	if err != nil {
		return fmt.Errorf("invalid env config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	episodeRepo, closeStorage, err := newEpisodeRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close episode storage", "error", err)
		}
	}()

	sessionManager := usecase.NewSessionManager(logger, episodeRepo)
	router := rest.NewRouter(logger, rest.NewEnvHandler(logger, sessionManager, defaults))

	log.Info("Starting HTTP server", "port", conf.HTTPPort)

	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// newEpisodeRepository connects the configured backend and returns its repository together with
// the function closing it.
func newEpisodeRepository(ctx context.Context, conf *config.Config) (repository.EpisodeRepository, func() error, error) {
	switch conf.Storage {
	case "redis":
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewEpisodeRepository(redisStorage, conf.Redis.EpisodeTTL), redisStorage.Close, nil
	case "sqlite":
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()

			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteEpisodeRepository(sqliteStorage.Connection, conf.SQLite.EpisodeTTL), sqliteStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Storage)
	}
}

// EnvDefaults converts the env config section into options for new environments.
func EnvDefaults(conf config.Env) (usecase.EnvOptions, error) {
	start, err := entity.ParseMark(conf.StartMark)
	if err != nil {
		return usecase.EnvOptions{}, fmt.Errorf("failed parse start mark: %w", err)
	}

	return usecase.EnvOptions{
		SymmetricalView: conf.SymmetricalView,
		UseActionMask:   conf.UseActionMask,
		StartMark:       start,
	}, nil
}
