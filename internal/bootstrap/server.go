package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skinpulse/skinpulse/config"
	"github.com/skinpulse/skinpulse/internal/api/handler"
	"github.com/skinpulse/skinpulse/internal/api/middleware"
	"github.com/skinpulse/skinpulse/internal/api/router"
	"github.com/skinpulse/skinpulse/internal/domain"
)

const _shutdownTimeout = 10 * time.Second

func InitHTTPServer(cfg *config.Config, trackerHandler *handler.TrackerHandler, log domain.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS())

	router.SetupRoutes(engine, trackerHandler)

	return &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: engine,
	}
}

// RunHTTPServer serves until the context is cancelled, then shuts down
// gracefully.
func RunHTTPServer(ctx context.Context, server *http.Server, log domain.Logger) error {
	errCh := make(chan error, 1)

	go func() {
		log.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), _shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
