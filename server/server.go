package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/civiceye/civiceye/config"
	"github.com/civiceye/civiceye/db"
	"github.com/civiceye/civiceye/mailingservices"
	"github.com/civiceye/civiceye/models"
	"github.com/civiceye/civiceye/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CurrentUserFunc resolves the submitting user for a request. Returning a nil
// user (and nil error) means the request is anonymous; the server never
// assumes a fixed identity.
type CurrentUserFunc func(c *gin.Context) (*models.User, error)

type Server struct {
	Config *config.Config
	Logger zerolog.Logger
	Mail   mailingservices.Mailer

	UserRepository      db.UserRepository
	PropertyRepository  db.PropertyRepository
	ReportRepository    db.ReportRepository
	TaxNoticeRepository db.TaxNoticeRepository

	UserService      services.UserService
	PropertyService  services.PropertyService
	ReportService    services.ReportService
	TaxNoticeService services.TaxNoticeService
	StatsService     services.StatsService
	PDFService       services.PDFService

	CurrentUser CurrentUserFunc
	Hub         *Hub
}

// Start runs the hub and the HTTP server, and shuts down gracefully on
// SIGINT/SIGTERM.
func (s *Server) Start() {
	if s.Hub == nil {
		s.Hub = NewHub(s.Logger)
	}
	go s.Hub.Run()

	r := s.setupRouter()
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Config.Port),
		Handler: r,
	}

	go func() {
		s.Logger.Info().Int("port", s.Config.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Logger.Fatal().Err(err).Msg("server exited")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Logger.Error().Err(err).Msg("forced shutdown")
	}
}
