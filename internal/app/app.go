// Package app wires repositories, services and handlers together for the
// binaries and the integration tests.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/carlossangronio-sudo/eden-garden/internal/config"
	"github.com/carlossangronio-sudo/eden-garden/internal/handler"
	"github.com/carlossangronio-sudo/eden-garden/internal/ratelimit"
	"github.com/carlossangronio-sudo/eden-garden/internal/repository"
	"github.com/carlossangronio-sudo/eden-garden/internal/router"
	"github.com/carlossangronio-sudo/eden-garden/internal/seed"
	"github.com/carlossangronio-sudo/eden-garden/internal/service"
	"github.com/carlossangronio-sudo/eden-garden/internal/session"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Services holds the domain services backed by one pool.
type Services struct {
	Credentials service.CredentialService
	Restaurant  service.RestaurantService
	Menu        service.MenuService
	Gallery     service.GalleryService
	Instagram   service.InstagramService
	Sessions    repository.SessionRepository
}

// NewServices creates the repositories and services.
func NewServices(pool *pgxpool.Pool, logger zerolog.Logger) *Services {
	return &Services{
		Credentials: service.NewCredentialService(repository.NewAdminRepository(pool, logger), logger),
		Restaurant:  service.NewRestaurantService(repository.NewRestaurantRepository(pool, logger), logger),
		Menu:        service.NewMenuService(repository.NewMenuItemRepository(pool, logger), logger),
		Gallery:     service.NewGalleryService(repository.NewGalleryRepository(pool, logger), logger),
		Instagram:   service.NewInstagramService(repository.NewInstagramRepository(pool, logger), logger),
		Sessions:    repository.NewSessionRepository(pool, logger),
	}
}

// Seeder returns a seeder over s.
func (s *Services) Seeder(logger zerolog.Logger) *seed.Seeder {
	return seed.NewSeeder(s.Credentials, s.Restaurant, s.Menu, s.Gallery, s.Instagram, logger)
}

// NewSessionManager creates the session manager from configuration.
func NewSessionManager(cfg config.SessionConfig, sessions repository.SessionRepository, logger zerolog.Logger) *session.Manager {
	return session.NewManager(sessions, session.Options{
		Secret:       cfg.Secret,
		CookieName:   cfg.CookieName,
		TTL:          cfg.TTL,
		CookieSecure: cfg.CookieSecure,
	}, logger)
}

// NewLoginLimiter creates the configured login limiter. The returned close
// function releases the Redis client when one was opened.
func NewLoginLimiter(ctx context.Context, cfg config.RateLimitConfig, logger zerolog.Logger) (ratelimit.Limiter, func() error, error) {
	limits := ratelimit.Config{Window: cfg.Window, Max: cfg.MaxAttempts}

	if cfg.Backend != "redis" {
		logger.Info().Str("backend", "memory").Msg("login rate limiter initialised")
		return ratelimit.NewMemory(limits), func() error { return nil }, nil
	}

	client, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialise redis rate limiter: %w", err)
	}

	logger.Info().Str("backend", "redis").Msg("login rate limiter initialised")
	return ratelimit.NewRedis(client, limits, "login"), client.Close, nil
}

// NewSeedLoader returns a loader reading the seed document from S3 when
// configured, with the local file as fallback.
func NewSeedLoader(ctx context.Context, cfg config.SeedConfig, logger zerolog.Logger) seed.Loader {
	fileLoader := seed.NewFileLoader(logger)
	if cfg.Source != "s3" {
		return fileLoader
	}

	s3Loader, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}
	return seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Key, true, logger)
}

// Dependencies are the runtime collaborators of the HTTP handler.
type Dependencies struct {
	Services     *Services
	Sessions     *session.Manager
	LoginLimiter ratelimit.Limiter
	SeedLoader   seed.Loader
}

// NewHandler builds the HTTP handler serving the whole site.
func NewHandler(cfg *config.Config, deps Dependencies, logger zerolog.Logger) http.Handler {
	debug := !cfg.IsProduction()
	svc := deps.Services

	handlers := router.Handlers{
		Public:     handler.NewPublicHandler(svc.Restaurant, svc.Menu, svc.Gallery, svc.Instagram, logger, debug),
		Auth:       handler.NewAuthHandler(svc.Credentials, deps.Sessions, logger, debug),
		Dashboard:  handler.NewDashboardHandler(svc.Menu, svc.Restaurant, logger, debug),
		Restaurant: handler.NewRestaurantHandler(svc.Restaurant, logger, debug),
		Menu:       handler.NewMenuHandler(svc.Menu, logger, debug),
		Gallery:    handler.NewGalleryHandler(svc.Gallery, logger, debug),
		Instagram:  handler.NewInstagramHandler(svc.Instagram, logger, debug),
		Seed: handler.NewSeedHandler(
			svc.Seeder(logger),
			deps.SeedLoader,
			cfg.Seed.File,
			seed.AdminSeed{Email: cfg.Seed.AdminEmail, Password: cfg.Seed.AdminPassword},
			logger,
			debug,
		),
	}

	return router.New(handlers, router.Options{
		Sessions:     deps.Sessions,
		LoginLimiter: deps.LoginLimiter,
		SeedSecret:   cfg.Seed.Secret,
		TrustProxy:   cfg.Server.TrustProxy,
	}, logger)
}
