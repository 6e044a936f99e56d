package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/orderchaos-backend/internal/broadcast"
	"github.com/rocketscienceinc/orderchaos-backend/internal/entity"
)

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeMove(ctx context.Context, gameID string, row, col int, mark entity.Cell) (*entity.Game, entity.Conclusion, error)
	ResetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
	ListGames(ctx context.Context) ([]entity.Summary, error)
	CountGames(ctx context.Context) (int, error)
}

type eventSource interface {
	Subscribe(gameID string) (*broadcast.Subscription, func())
}

type Options struct {
	Port            string
	AllowOrigins    []string
	StaticDir       string
	ShutdownTimeout time.Duration
}

type Server struct {
	logger *slog.Logger
	opts   Options
	engine *gin.Engine
}

func New(logger *slog.Logger, games gameUseCase, events eventSource, opts Options) *Server {
	logger = logger.With("component", "rest")

	gin.SetMode(gin.ReleaseMode)
	registerJSONFieldNames()

	engine := gin.New()
	engine.Use(requestLogger(logger), recovery(logger), cors.New(corsConfig(opts.AllowOrigins)))

	handlers := newGameHandlers(logger, games, events)

	engine.GET("/ping", ping)

	api := engine.Group("/api")
	{
		api.GET("/health", handlers.Health)

		api.POST("/games", handlers.Create)
		api.GET("/games", handlers.List)
		api.GET("/games/:gameId", handlers.Get)
		api.DELETE("/games/:gameId", handlers.Delete)
		api.POST("/games/:gameId/move", handlers.Move)
		api.POST("/games/:gameId/reset", handlers.Reset)
		api.GET("/games/:gameId/events", handlers.Events)
	}

	if opts.StaticDir != "" {
		engine.Static("/static", opts.StaticDir)
		engine.StaticFile("/", opts.StaticDir+"/index.html")
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "route not found"})
	})

	return &Server{
		logger: logger,
		opts:   opts,
		engine: engine,
	}
}

func (that *Server) Handler() http.Handler {
	return that.engine
}

// Start - serves HTTP until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + that.opts.Port,
		Handler:           that.engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), that.opts.ShutdownTimeout)
	defer cancel()

	that.logger.Info("shutting down HTTP server")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

func corsConfig(origins []string) cors.Config {
	conf := cors.DefaultConfig()
	conf.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = origins
	}

	return conf
}
