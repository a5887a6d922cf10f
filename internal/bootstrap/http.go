package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tradehub/tradehub-api/config"
	httpx "github.com/tradehub/tradehub-api/internal/http"
)

// StartHTTPServer builds the router, wraps it in middleware, and starts
// listening in a goroutine. Fatal listen errors are sent on errCh.
func StartHTTPServer(
	cfg config.HTTPConfig,
	services *ServiceContainer,
	logger *slog.Logger,
	errCh chan<- error,
) *http.Server {
	router := httpx.NewRouter(httpx.RouterServices{
		Jobs:         services.Jobs,
		Tradespeople: services.Tradespeople,
	})

	var handler http.Handler = router
	handler = httpx.Logging(logger)(handler)
	handler = httpx.Recover(logger)(handler)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	return srv
}

// ShutdownHTTPServer drains in-flight requests, bounded by the configured
// shutdown timeout.
func ShutdownHTTPServer(srv *http.Server, cfg config.HTTPConfig, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}
