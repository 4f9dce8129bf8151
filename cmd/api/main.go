// Package main is the entrypoint for the URL Fence admin dashboard.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/urlfence/urlfence/internal/auth"
	"github.com/urlfence/urlfence/internal/cache"
	"github.com/urlfence/urlfence/internal/config"
	"github.com/urlfence/urlfence/internal/handler"
	"github.com/urlfence/urlfence/internal/middleware"
	"github.com/urlfence/urlfence/internal/repository"
	"github.com/urlfence/urlfence/internal/server"
	"github.com/urlfence/urlfence/internal/service"
	"github.com/urlfence/urlfence/internal/web"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database",
			slog.String("error", err.Error()),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// Initialize cache
	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error("failed to connect to Redis",
			slog.String("error", err.Error()),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer cacheClient.Close()
	logger.Info("connected to Redis")

	// Initialize services
	userService := service.NewUserService(repo, cacheClient)
	blockedURLService := service.NewBlockedURLService(repo, cacheClient)

	// Initialize handlers
	creds := auth.AdminCredentials{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	authHandler := handler.NewAuthHandler(creds, cfg.IsProduction(), logger)
	userHandler := handler.NewUserHandler(userService, logger)
	blockedURLHandler := handler.NewBlockedURLHandler(blockedURLService, logger)
	pages := web.New()

	// Setup router
	r := setupRouter(h, healthHandler, authHandler, userHandler, blockedURLHandler, pages, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
// The gate runs before routing decisions: unauthenticated requests never
// reach the dashboard pages, authenticated ones bounce off the login page.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	blockedURLHandler *handler.BlockedURLHandler,
	pages *web.Pages,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment: cfg.IsDevelopment(),
	}))
	if origins := cfg.GetCORSAllowedOrigins(); len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))
	r.Use(middleware.Gate)

	// Health endpoints (no auth required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Dashboard pages; the gate already redirected unauthenticated clients.
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, middleware.ProtectedPrefix, http.StatusFound)
	})
	r.Get("/login", pages.Login)
	r.Get("/dashboard", pages.Dashboard)
	r.Get("/dashboard/users/{id}", pages.UserDetail)
	r.Handle("/static/*", pages.Assets())

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)

			r.Route("/{id}/blocked-urls", func(r chi.Router) {
				r.Get("/", blockedURLHandler.List)
				r.Post("/", blockedURLHandler.Create)
				r.Delete("/{urlId}", blockedURLHandler.Delete)
			})
		})
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

// redactURL strips credentials from a connection URL before logging.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		if username := parsed.User.Username(); username != "" {
			parsed.User = url.User(username)
		} else {
			parsed.User = url.User("redacted")
		}
	}

	return parsed.String()
}
