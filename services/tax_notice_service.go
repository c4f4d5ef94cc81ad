package services

import (
	"crypto/rand"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/civiceye/civiceye/config"
	"github.com/civiceye/civiceye/db"
	"github.com/civiceye/civiceye/errors"
	"github.com/civiceye/civiceye/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type TaxNoticeService interface {
	IssueTaxNotice(req *models.CreateTaxNoticeRequest) (*models.TaxNotice, error)
	GetTaxNotice(id uint) (*models.TaxNotice, error)
	ListTaxNotices(propertyID uint) ([]models.TaxNotice, error)
}

type taxNoticeService struct {
	Config        *config.Config
	taxNoticeRepo db.TaxNoticeRepository
	propertyRepo  db.PropertyRepository
	log           zerolog.Logger
}

func NewTaxNoticeService(taxNoticeRepo db.TaxNoticeRepository, propertyRepo db.PropertyRepository, conf *config.Config, log zerolog.Logger) TaxNoticeService {
	return &taxNoticeService{
		Config:        conf,
		taxNoticeRepo: taxNoticeRepo,
		propertyRepo:  propertyRepo,
		log:           log,
	}
}

// IssueTaxNotice records an enforcement action: the notice is created Pending,
// confirmed exactly once with a simulated on-chain transaction hash, and a
// Confirmed Vacant property is promoted to Penalty Issued.
func (s *taxNoticeService) IssueTaxNotice(req *models.CreateTaxNoticeRequest) (*models.TaxNotice, error) {
	property, err := s.propertyRepo.FindPropertyByID(req.PropertyID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("property not found", http.StatusNotFound)
		}
		return nil, err
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, errors.New("dueDate must be an ISO date", http.StatusBadRequest)
	}

	notice := &models.TaxNotice{
		PropertyID:    req.PropertyID,
		PenaltyType:   req.PenaltyType,
		PenaltyAmount: req.PenaltyAmount,
		DueDate:       dueDate,
		Status:        models.TaxNoticePending,
	}
	created, err := s.taxNoticeRepo.CreateTaxNotice(notice)
	if err != nil {
		return nil, err
	}

	hash, err := generateTransactionHash()
	if err != nil {
		return nil, err
	}
	if err := s.taxNoticeRepo.ConfirmTaxNotice(created.ID, hash); err != nil {
		return nil, err
	}
	created.Status = models.TaxNoticeConfirmed
	created.TransactionHash = &hash

	// Enforcement is the only path to the terminal status, and only a
	// property already confirmed vacant takes it.
	if property.Status == models.StatusConfirmedVacant {
		if _, err := s.propertyRepo.PromoteStatus(property.ID, models.StatusPenaltyIssued); err != nil {
			s.log.Warn().Err(err).Uint("property_id", property.ID).
				Msg("notice confirmed but penalty status update failed")
		}
	}

	return created, nil
}

func (s *taxNoticeService) GetTaxNotice(id uint) (*models.TaxNotice, error) {
	notice, err := s.taxNoticeRepo.FindTaxNoticeByID(id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("tax notice not found", http.StatusNotFound)
		}
		return nil, err
	}
	return notice, nil
}

func (s *taxNoticeService) ListTaxNotices(propertyID uint) ([]models.TaxNotice, error) {
	return s.taxNoticeRepo.ListTaxNotices(propertyID)
}

func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unparseable due date %q", *raw)
}

// generateTransactionHash builds a 0x-prefixed 64-hex-digit identifier for
// the simulated enforcement transaction.
func generateTransactionHash() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(buf), nil
}
