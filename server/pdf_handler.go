package server

import (
	"fmt"
	"net/http"
	"os"

	"github.com/civiceye/civiceye/server/response"
	"github.com/gin-gonic/gin"
)

type generatePDFRequest struct {
	TaxNoticeID uint `json:"taxNoticeId" binding:"required"`
}

func (s *Server) handleGeneratePDF() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generatePDFRequest
		if !bindJSON(c, &req) {
			return
		}
		notice, err := s.TaxNoticeService.GetTaxNotice(req.TaxNoticeID)
		if err != nil {
			s.respondError(c, err)
			return
		}
		property, err := s.PropertyService.GetProperty(notice.PropertyID)
		if err != nil {
			s.respondError(c, err)
			return
		}
		if _, err := s.PDFService.GenerateTaxNotice(notice, property); err != nil {
			s.respondError(c, err)
			return
		}
		response.JSON(c, "pdf generated successfully", http.StatusCreated, gin.H{
			"taxNoticeId": notice.ID,
			"pdfUrl":      fmt.Sprintf("/api/pdf/%d", notice.ID),
		}, nil)
	}
}

func (s *Server) handleDownloadPDF() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		path := s.PDFService.TaxNoticePath(id)
		if _, err := os.Stat(path); err != nil {
			response.JSON(c, "pdf not found, generate it first", http.StatusNotFound, nil, nil)
			return
		}
		c.Header("Content-Type", "application/pdf")
		c.FileAttachment(path, "tax-notice.pdf")
	}
}
