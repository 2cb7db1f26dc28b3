package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfoliochat/internal/handlers"
	"portfoliochat/internal/middleware"
	"portfoliochat/internal/ratelimit"
	"portfoliochat/internal/responder"
)

// Deps are the collaborators routes are wired to.
type Deps struct {
	Responder   *responder.Responder
	Suggestions responder.Suggestions
	Limiter     ratelimit.Limiter // in-process sliding log
	Storage     fiber.Storage     // shared limiter state; overrides Limiter when set
	DB          handlers.Pinger   // nil when no database is configured
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	// Initialize middleware
	rateLimit := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Max:     s.Cfg.RateLimitMax,
		Window:  s.Cfg.RateLimitWindow,
		Limiter: deps.Limiter,
		Storage: deps.Storage,
	})

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(deps.Responder, s.Cfg.MaxBodyBytes)
	suggestionsHandler := handlers.NewSuggestionsHandler(deps.Suggestions)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	s.App.Get("/healthz", healthHandler.Check)
	if s.Cfg.MetricsEnabled {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	s.App.Get("/api/chat/suggestions", suggestionsHandler.List)

	// Pre-flight requests are answered before rate limiting
	if s.Cfg.CORSEnabled() {
		s.App.Options("/api/chat", handlers.Preflight(s.Cfg.AllowedOrigins()))
	}

	// Rate limiting precedes the method gate, so rejected methods count too
	s.App.All("/api/chat", rateLimit, chatHandler.Ask)
}
