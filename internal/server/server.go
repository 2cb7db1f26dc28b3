package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"

	"portfoliochat/internal/config"
	"portfoliochat/internal/handlers"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config
}

// New creates a new server with middleware configured.
func New(cfg *config.Config) *Server {
	// Streamed bodies let oversized requests reach the rate limiter and the
	// chat handler's own cap instead of being dropped while reading.
	app := fiber.New(fiber.Config{
		AppName:           "portfolio-chat",
		BodyLimit:         cfg.MaxBodyBytes,
		ErrorHandler:      handlers.ErrorHandler,
		StreamRequestBody: true,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${respHeader:X-Request-ID}\n",
	}))

	// CORS middleware, for pages served from another origin during local work
	if cfg.CORSEnabled() {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowedOrigins(),
			AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
			AllowHeaders: []string{fiber.HeaderContentType},
		}))
		slog.Info("CORS enabled", "origins", cfg.AllowedOrigins())
	}

	return &Server{
		App: app,
		Cfg: cfg,
	}
}

// Start starts the server on the configured address.
func (s *Server) Start() error {
	slog.Info("starting server", "addr", s.Cfg.ServerAddr, "env", s.Cfg.Env)
	return s.App.Listen(s.Cfg.ServerAddr, fiber.ListenConfig{
		DisableStartupMessage: !s.Cfg.IsDev(),
	})
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}
