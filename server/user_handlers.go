package server

import (
	"net/http"
	"strconv"

	"github.com/civiceye/civiceye/models"
	"github.com/civiceye/civiceye/server/response"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SignupRequest
		if !bindJSON(c, &req) {
			return
		}
		user, err := s.UserService.Register(&req)
		if err != nil {
			s.respondError(c, err)
			return
		}
		response.JSON(c, "user created successfully", http.StatusCreated, user, nil)
	}
}

func (s *Server) handleGetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		user, err := s.UserService.GetUser(id)
		if err != nil {
			s.respondError(c, err)
			return
		}
		response.JSON(c, "user retrieved successfully", http.StatusOK, user, nil)
	}
}

func (s *Server) handleLeaderboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				limit = parsed
			}
		}
		users, err := s.UserService.Leaderboard(limit)
		if err != nil {
			s.respondError(c, err)
			return
		}
		response.JSON(c, "leaderboard retrieved successfully", http.StatusOK, users, nil)
	}
}
