package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"github.com/CristiGvl/picoMemGraph/internal/config"
	"github.com/CristiGvl/picoMemGraph/internal/platform"
	"github.com/CristiGvl/picoMemGraph/internal/report"
)

// Server represents the API server
type Server struct {
	app       *fiber.App
	assembler *report.Assembler
	cfg       *config.Config
	log       logrus.FieldLogger
}

// NewServer creates a new API server serving reports built by assembler
func NewServer(assembler *report.Assembler, cfg *config.Config, log *logrus.Logger) (*Server, error) {
	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "picoMemGraph",
		AppName:               "picoMemGraph v1.0",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(logger.New(logger.Config{Output: log.Out}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		MaxAge:       86400, // 24 hours
	}))

	server := &Server{
		app:       app,
		assembler: assembler,
		cfg:       cfg,
		log:       log,
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	api.Get("/memory", s.getMemory)
	api.Get("/memory/:program", s.getProgram)

	// Health check
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	s.log.Infof("Starting picoMemGraph server on %s", address)
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"timestamp": time.Now().Unix(),
	})
}
