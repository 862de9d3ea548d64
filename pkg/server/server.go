package server

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/ksuid"

	"cardsmith/pkg/schema"
)

// CardGenerator produces a complete card from a validated request.
type CardGenerator interface {
	Generate(ctx context.Context, req schema.CardRequest) (*schema.CardResult, error)
}

type Server struct {
	Echo      *echo.Echo
	Generator CardGenerator
	StaticDir string
}

func NewServer(gen CardGenerator, staticDir string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ksuid.New().String() },
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	s := &Server{
		Echo:      e,
		Generator: gen,
		StaticDir: staticDir,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/healthz", s.handleGetHealthz)
	s.Echo.POST("/generate_card", s.handlePostGenerateCard)

	// landing page and its assets
	if s.StaticDir != "" {
		s.Echo.Static("/", s.StaticDir)
	}
}

func (s *Server) Start(addr string) error {
	log.Info("Server listening", "addr", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("Shutting down server...")
	return s.Echo.Shutdown(ctx)
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
