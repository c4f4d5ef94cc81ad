package server

import (
	"net/http"
	"strconv"

	"github.com/civiceye/civiceye/db"
	"github.com/civiceye/civiceye/models"
	"github.com/civiceye/civiceye/server/response"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleListProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := db.PropertyFilter{Status: c.Query("status")}
		if raw := c.Query("limit"); raw != "" {
			if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
				filter.Limit = limit
			}
		}
		properties, err := s.PropertyService.ListProperties(filter)
		if err != nil {
			s.respondError(c, err)
			return
		}
		response.JSON(c, "properties retrieved successfully", http.StatusOK, properties, nil)
	}
}

func (s *Server) handleGetProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		property, err := s.PropertyService.GetProperty(id)
		if err != nil {
			s.respondError(c, err)
			return
		}
		response.JSON(c, "property retrieved successfully", http.StatusOK, property, nil)
	}
}

func (s *Server) handleCreateProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreatePropertyRequest
		if !bindJSON(c, &req) {
			return
		}
		property, err := s.PropertyService.CreateProperty(&req)
		if err != nil {
			s.respondError(c, err)
			return
		}
		s.Hub.Broadcast(PropertyCreatedEvent(property))
		response.JSON(c, "property created successfully", http.StatusCreated, property, nil)
	}
}
