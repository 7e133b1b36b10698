package server

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aprilfamily/cookbook-backend/config"
	"github.com/aprilfamily/cookbook-backend/internal/api"
	"github.com/aprilfamily/cookbook-backend/internal/extract"
	"github.com/aprilfamily/cookbook-backend/internal/middleware"
	"github.com/aprilfamily/cookbook-backend/internal/router"
	"github.com/aprilfamily/cookbook-backend/internal/service"
	"github.com/aprilfamily/cookbook-backend/internal/session"
)

// Server represents the HTTP server
type Server struct {
	engine *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New wires services, handlers, and routes into a runnable server.
// loginLimiter and archive may be nil when their backends are not configured.
func New(cfg *config.Config, db *gorm.DB, archive *service.ArchiveService, loginLimiter *middleware.RateLimiter) *Server {
	sessions := session.NewManager(cfg.SessionSecret)

	authService := service.NewAuthService(db)
	recipeService := service.NewRecipeService(db)
	moderationService := service.NewModerationService(db, extract.NewRegistry(), archive)

	handlers := router.Handlers{
		Auth:       api.NewAuthHandler(authService, sessions),
		Recipes:    api.NewRecipeHandler(recipeService),
		Moderation: api.NewModerationHandler(moderationService, cfg.UploadDir, cfg.MaxUploadBytes),
	}

	engine := router.Setup(handlers, sessions, cfg.AllowedOrigins, loginLimiter)

	return &Server{
		engine: engine,
		cfg:    cfg,
	}
}

// Start begins serving and blocks until the listener fails or is shut down.
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.cfg.ServerHost, s.cfg.ServerPort)
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}

	log.Printf("Listening on %s", addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}

// Engine exposes the router, used by tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
