package server

import (
	"net/http"

	"github.com/civiceye/civiceye/server/response"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleGetStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := s.StatsService.GetStats()
		if err != nil {
			s.respondError(c, err)
			return
		}
		response.JSON(c, "stats retrieved successfully", http.StatusOK, stats, nil)
	}
}
