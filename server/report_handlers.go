package server

import (
	"net/http"
	"strconv"

	"github.com/civiceye/civiceye/db"
	"github.com/civiceye/civiceye/models"
	"github.com/civiceye/civiceye/server/response"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleListReports() gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter db.ReportFilter
		if raw := c.Query("propertyId"); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
				filter.PropertyID = uint(id)
			}
		}
		if raw := c.Query("userId"); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
				filter.UserID = uint(id)
			}
		}
		reports, err := s.ReportService.ListReports(filter)
		if err != nil {
			s.respondError(c, err)
			return
		}
		response.JSON(c, "reports retrieved successfully", http.StatusOK, reports, nil)
	}
}

func (s *Server) handleCreateReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateReportRequest
		if !bindJSON(c, &req) {
			return
		}
		user := GetUserFromContext(c)
		report, err := s.ReportService.SubmitReport(&req, user)
		if err != nil {
			s.respondError(c, err)
			return
		}
		s.Hub.Broadcast(ReportCreatedEvent(report))
		response.JSON(c, "report submitted successfully", http.StatusCreated, report, nil)
	}
}
