package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sp1r1tt/dashboard2025/internal/api/handler"
	"github.com/sp1r1tt/dashboard2025/internal/api/middleware"
	"github.com/sp1r1tt/dashboard2025/internal/auth"
	"github.com/sp1r1tt/dashboard2025/internal/group"
	"github.com/sp1r1tt/dashboard2025/internal/product"
	"github.com/sp1r1tt/dashboard2025/internal/user"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	AuthService        *auth.Service
	Codec              *auth.Codec
	Users              user.Repository
	Groups             group.Repository
	Products           product.Repository
	DBPinger           handler.DBPinger
	Version            string
	SecureCookies      bool
	TokenTTL           time.Duration
	LoginRatePerMinute int
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	authHandler := handler.NewAuthHandler(deps.AuthService, deps.SecureCookies, deps.TokenTTL)
	groupHandler := handler.NewGroupHandler(deps.Groups)
	productHandler := handler.NewProductHandler(deps.Products)
	userHandler := handler.NewUserHandler(deps.Users)
	profileHandler := handler.NewProfileHandler(deps.Users, deps.AuthService)
	dashboardHandler := handler.NewDashboardHandler(deps.Groups, deps.Products)

	loginLimiter := middleware.NewLoginLimiter(deps.LoginRatePerMinute)

	r.Route("/api", func(r chi.Router) {
		r.With(loginLimiter.Middleware).Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)

		// Every route below re-verifies the token; the page-level guard is
		// presence-only and never a substitute for this.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.Codec))

			r.Get("/groups", groupHandler.List)
			r.Delete("/groups/{id}", groupHandler.Delete)

			r.Get("/products", productHandler.List)
			r.Delete("/products/{id}", productHandler.Delete)
			r.Get("/inventory", productHandler.Inventory)

			r.Get("/users", userHandler.List)
			r.Delete("/users/{id}", userHandler.Delete)

			r.Get("/user/profile", profileHandler.Profile)
			r.Put("/user/update", profileHandler.Update)

			r.Get("/dashboard", dashboardHandler.ServeHTTP)
		})
	})

	pages := handler.NewPageHandler()
	r.Get("/login", pages.Shell("Login"))

	// Browser-facing paths behind the cookie-presence guard.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RouteGuard("/login"))

		r.Get("/", pages.Shell("Dashboard"))
		r.Get("/dashboard", pages.Shell("Dashboard"))
		r.Get("/products", pages.Shell("Products"))
		r.Get("/groups", pages.Shell("Groups"))
		r.Get("/users", pages.Shell("Users"))
		r.Get("/settings", pages.Shell("Settings"))
	})

	return r
}
