package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/civiceye/civiceye/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndDownloadPDF(t *testing.T) {
	s, r, _ := newTestServer(t)
	property, err := s.PropertyRepository.CreateProperty(&models.Property{
		Address:      "789 Industrial Way, West Side",
		PropertyType: "Industrial",
		Status:       models.StatusConfirmedVacant,
	})
	require.NoError(t, err)

	w, _ := doJSON(t, r, http.MethodPost, "/api/tax-notices", gin.H{
		"propertyId":    property.ID,
		"penaltyType":   "Vacancy Tax Penalty",
		"penaltyAmount": "45200.00",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	notices, err := s.TaxNoticeRepository.ListTaxNotices(property.ID)
	require.NoError(t, err)
	require.Len(t, notices, 1)

	w, env := doJSON(t, r, http.MethodPost, "/api/generate-pdf", gin.H{
		"taxNoticeId": notices[0].ID,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(env.Data), fmt.Sprintf("/api/pdf/%d", notices[0].ID))

	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/pdf/%d", notices[0].ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	// PDF files open with this signature.
	assert.True(t, len(w.Body.Bytes()) > 4)
	assert.Equal(t, "%PDF", string(w.Body.Bytes()[:4]))
}

func TestDownloadPDFBeforeGeneration(t *testing.T) {
	_, r, _ := newTestServer(t)
	w, _ := doJSON(t, r, http.MethodGet, "/api/pdf/99", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGeneratePDFUnknownNotice(t *testing.T) {
	_, r, _ := newTestServer(t)
	w, _ := doJSON(t, r, http.MethodPost, "/api/generate-pdf", gin.H{
		"taxNoticeId": 77,
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
