package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/samber/do/v2"

	"github.com/outfitly/outfitly-server/internal/api"
	"github.com/outfitly/outfitly-server/internal/config"
	"github.com/outfitly/outfitly-server/internal/logger"
	"github.com/outfitly/outfitly-server/internal/service"
)

// Auth endpoints get a tight per-IP budget: credential guessing is the only
// reason to hit them quickly.
const (
	authRatePerMinute = 20
	authRateBurst     = 5
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// AuthRateLimiterHandle wraps the auth rate limiter with Shutdownable.
type AuthRateLimiterHandle struct {
	*api.RateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *AuthRateLimiterHandle) Shutdown() error {
	h.Stop()
	return nil
}

// ProvideAuthRateLimiter provides the per-IP limiter guarding auth endpoints.
func ProvideAuthRateLimiter(i do.Injector) (*AuthRateLimiterHandle, error) {
	limiter := api.NewRateLimiter(authRatePerMinute, time.Minute, authRateBurst)
	return &AuthRateLimiterHandle{RateLimiter: limiter}, nil
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	authService := do.MustInvoke[*service.AuthService](i)
	comboService := do.MustInvoke[*service.CombinationService](i)
	tagService := do.MustInvoke[*service.TagService](i)
	limiterHandle := do.MustInvoke[*AuthRateLimiterHandle](i)

	apiServer := api.NewServer(authService, comboService, tagService, limiterHandle.RateLimiter, log.Logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      apiServer,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
