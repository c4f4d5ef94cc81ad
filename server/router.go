package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRouter() *gin.Engine {
	if s.Config.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestLogger(s.Logger))
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if s.Config.AccessControlAllowOrigin != "" {
		corsConfig.AllowOrigins = []string{s.Config.AccessControlAllowOrigin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-User-ID")
	r.Use(cors.New(corsConfig))

	s.defineRoutes(r)
	return r
}

func (s *Server) defineRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/stats", s.handleGetStats())

	api.GET("/properties", s.handleListProperties())
	api.GET("/properties/:id", s.handleGetProperty())
	api.POST("/properties", s.handleCreateProperty())

	api.GET("/reports", s.handleListReports())
	api.POST("/reports", reportRateLimiter(), s.ResolveCurrentUser(), s.handleCreateReport())

	api.POST("/users", s.handleSignup())
	api.GET("/users/:id", s.handleGetUser())
	api.GET("/leaderboard", s.handleLeaderboard())

	api.GET("/tax-notices", s.handleListTaxNotices())
	api.GET("/tax-notices/:id", s.handleGetTaxNotice())
	api.POST("/tax-notices", s.handleCreateTaxNotice())

	api.POST("/generate-pdf", s.handleGeneratePDF())
	api.GET("/pdf/:id", s.handleDownloadPDF())

	r.GET("/ws", s.handleWebSocket())
}
