package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter registers the ping and environment routes.
func NewRouter(logger *slog.Logger, env EnvHandler) *echo.Echo {
	log := logger.With("component", "http")

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.Server.ReadTimeout = 10 * time.Second
	router.Server.WriteTimeout = 10 * time.Second
	router.Server.IdleTimeout = 30 * time.Second

	router.Use(middleware.Recover())
	router.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			log.Debug("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))

	router.GET("/ping", PingHandler)

	envs := router.Group("/v1/envs")
	envs.POST("", env.CreateEnv)
	envs.POST("/:id/reset", env.ResetEnv)
	envs.POST("/:id/step", env.Step)
	envs.GET("/:id/observation", env.Observe)
	envs.GET("/:id/actions", env.AvailableActions)
	envs.GET("/:id/render", env.Render)
	envs.DELETE("/:id", env.CloseEnv)

	return router
}

// Start serves router on port until ctx is canceled, then shuts it down.
func Start(ctx context.Context, port string, router *echo.Echo) error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		if err := router.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := router.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
