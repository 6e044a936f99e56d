package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/orderchaos-backend/internal/broadcast"
	"github.com/rocketscienceinc/orderchaos-backend/internal/config"
	"github.com/rocketscienceinc/orderchaos-backend/internal/repository"
	"github.com/rocketscienceinc/orderchaos-backend/internal/repository/storage"
	"github.com/rocketscienceinc/orderchaos-backend/internal/usecase"
	"github.com/rocketscienceinc/orderchaos-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gameRepo, closeRepo, err := initGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	hub := broadcast.NewHub(logger, conf.Events.Buffer)
	defer hub.Close()

	gameManager := usecase.NewGameManager(logger, gameRepo, hub)

	server := rest.New(logger, gameManager, hub, rest.Options{
		Port:            conf.HTTPPort,
		AllowOrigins:    conf.CORS.AllowOrigins,
		StaticDir:       conf.StaticDir,
		ShutdownTimeout: conf.ShutdownTimeout,
	})

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage)

	// SSE streams block graceful shutdown until their subscriptions close
	go func() {
		<-ctx.Done()
		log.Info("Received signal, shutting down")
		hub.Close()
	}()

	if err = server.Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application stopped")

	return nil
}

func initGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedis(ctx, storage.RedisOptions{
		Addr:     redisAddrString,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeRepo := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage, conf.Redis.KeyTTL), closeRepo, nil
}
