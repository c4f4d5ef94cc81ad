package server

import (
	"net/http"
	"strconv"

	"github.com/civiceye/civiceye/models"
	"github.com/civiceye/civiceye/server/response"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleListTaxNotices() gin.HandlerFunc {
	return func(c *gin.Context) {
		var propertyID uint
		if raw := c.Query("propertyId"); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
				propertyID = uint(id)
			}
		}
		notices, err := s.TaxNoticeService.ListTaxNotices(propertyID)
		if err != nil {
			s.respondError(c, err)
			return
		}
		response.JSON(c, "tax notices retrieved successfully", http.StatusOK, notices, nil)
	}
}

func (s *Server) handleGetTaxNotice() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		notice, err := s.TaxNoticeService.GetTaxNotice(id)
		if err != nil {
			s.respondError(c, err)
			return
		}
		response.JSON(c, "tax notice retrieved successfully", http.StatusOK, notice, nil)
	}
}

func (s *Server) handleCreateTaxNotice() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateTaxNoticeRequest
		if !bindJSON(c, &req) {
			return
		}
		notice, err := s.TaxNoticeService.IssueTaxNotice(&req)
		if err != nil {
			s.respondError(c, err)
			return
		}
		s.Hub.Broadcast(TaxNoticeCreatedEvent(notice))
		response.JSON(c, "tax notice issued successfully", http.StatusCreated, notice, nil)
	}
}
