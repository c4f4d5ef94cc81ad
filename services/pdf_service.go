package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/civiceye/civiceye/config"
	"github.com/civiceye/civiceye/models"
	"github.com/jung-kurt/gofpdf"
)

type PDFService interface {
	GenerateTaxNotice(notice *models.TaxNotice, property *models.Property) (string, error)
	TaxNoticePath(noticeID uint) string
}

type pdfService struct {
	dir string
}

func NewPDFService(conf *config.Config) (PDFService, error) {
	dir := conf.PDFDir
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating pdf directory: %v", err)
	}
	return &pdfService{dir: dir}, nil
}

// GenerateTaxNotice renders the penalty notice document and returns the path
// of the written file.
func (s *pdfService) GenerateTaxNotice(notice *models.TaxNotice, property *models.Property) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "TAX PENALTY NOTICE", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	line := func(label, value string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(55, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 8, value, "", "L", false)
	}

	line("Property Address:", property.Address)
	line("Penalty Type:", notice.PenaltyType)
	amount := "-"
	if notice.PenaltyAmount != nil {
		amount = *notice.PenaltyAmount
	}
	line("Penalty Amount:", amount)
	due := "-"
	if notice.DueDate != nil {
		due = notice.DueDate.Format("2006-01-02")
	}
	line("Due Date:", due)
	line("Issue Date:", notice.CreatedAt.Format("2006-01-02"))

	pdf.Ln(6)
	hash := ""
	if notice.TransactionHash != nil {
		hash = *notice.TransactionHash
	}
	pdf.SetFont("Courier", "", 9)
	pdf.MultiCell(0, 6, "Transaction Hash: "+hash, "", "L", false)

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(0, 6, "This notice was generated automatically by the CivicEye platform.", "", "L", false)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 6, time.Now().Format(time.RFC1123), "", 1, "L", false, 0, "")

	path := s.TaxNoticePath(notice.ID)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing tax notice pdf: %v", err)
	}
	return path, nil
}

func (s *pdfService) TaxNoticePath(noticeID uint) string {
	return filepath.Join(s.dir, fmt.Sprintf("tax-notice-%d.pdf", noticeID))
}
