package router

import (
	"net/http"
	"time"

	"github.com/carlossangronio-sudo/eden-garden/internal/handler"
	"github.com/carlossangronio-sudo/eden-garden/internal/middleware"
	"github.com/carlossangronio-sudo/eden-garden/internal/ratelimit"
	"github.com/carlossangronio-sudo/eden-garden/internal/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// requestTimeout bounds every request, store calls included.
const requestTimeout = 30 * time.Second

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Public     *handler.PublicHandler
	Auth       *handler.AuthHandler
	Dashboard  *handler.DashboardHandler
	Restaurant *handler.RestaurantHandler
	Menu       *handler.MenuHandler
	Gallery    *handler.GalleryHandler
	Instagram  *handler.InstagramHandler
	Seed       *handler.SeedHandler
}

// Options configures the cross-cutting middleware.
type Options struct {
	Sessions     *session.Manager
	LoginLimiter ratelimit.Limiter
	SeedSecret   string
	// TrustProxy resolves the client address from forwarding headers.
	// Without it the login limiter keys on the socket peer.
	TrustProxy bool
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Applied in order: RealIP (trusted proxy only) -> RequestID -> Recovery -> Logging -> Timeout
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(chimw.Timeout(requestTimeout))

	// Health check endpoint (no session required)
	r.Get("/health", h.Public.Health)

	r.With(middleware.SeedKeyAuth(opts.SeedSecret, logger)).Post("/api/seed", h.Seed.Seed)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Sessions(opts.Sessions, logger))

		r.Route("/api", func(r chi.Router) {
			r.Get("/home", h.Public.Home)
			r.Get("/restaurant", h.Public.Restaurant)
			r.Get("/menu", h.Public.Menu)
			r.Get("/gallery", h.Public.Gallery)
			r.Get("/instagram", h.Public.Instagram)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.CSRF(logger))

			r.Get("/login", h.Auth.LoginPage)
			r.With(middleware.RateLimit(opts.LoginLimiter, logger)).Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth(logger))

				r.Get("/", h.Dashboard.Get)
				r.Post("/logout", h.Auth.Logout)
				r.Get("/session", h.Auth.Session)
				r.Post("/password", h.Auth.ChangePassword)

				r.Get("/restaurant", h.Restaurant.Get)
				r.Post("/restaurant", h.Restaurant.Save)

				r.Route("/menu", func(r chi.Router) {
					r.Get("/", h.Menu.List)
					r.Post("/", h.Menu.Create)
					r.Post("/reorder", h.Menu.Reorder)
					r.Get("/{id}", h.Menu.Get)
					r.Post("/{id}", h.Menu.Update)
					r.Put("/{id}", h.Menu.Update)
					r.Delete("/{id}", h.Menu.Delete)
					r.Post("/{id}/delete", h.Menu.Delete)
				})

				r.Route("/gallery", func(r chi.Router) {
					r.Get("/", h.Gallery.List)
					r.Post("/", h.Gallery.Create)
					r.Post("/reorder", h.Gallery.Reorder)
					r.Get("/{id}", h.Gallery.Get)
					r.Post("/{id}", h.Gallery.Update)
					r.Put("/{id}", h.Gallery.Update)
					r.Delete("/{id}", h.Gallery.Delete)
					r.Post("/{id}/delete", h.Gallery.Delete)
					r.Post("/{id}/toggle", h.Gallery.ToggleVisibility)
				})

				r.Route("/instagram", func(r chi.Router) {
					r.Get("/", h.Instagram.List)
					r.Post("/", h.Instagram.Create)
					r.Post("/{id}", h.Instagram.Update)
					r.Put("/{id}", h.Instagram.Update)
					r.Delete("/{id}", h.Instagram.Delete)
					r.Post("/{id}/delete", h.Instagram.Delete)
					r.Post("/{id}/toggle", h.Instagram.ToggleVisibility)
				})
			})
		})
	})

	return r
}
