package services

import (
	stderrors "errors"
	"net/http"

	"github.com/civiceye/civiceye/config"
	"github.com/civiceye/civiceye/db"
	"github.com/civiceye/civiceye/errors"
	"github.com/civiceye/civiceye/mailingservices"
	"github.com/civiceye/civiceye/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ReportService interface {
	SubmitReport(req *models.CreateReportRequest, user *models.User) (*models.Report, error)
	ListReports(filter db.ReportFilter) ([]models.Report, error)
}

type reportService struct {
	Config       *config.Config
	reportRepo   db.ReportRepository
	propertyRepo db.PropertyRepository
	userRepo     db.UserRepository
	mailer       mailingservices.Mailer
	log          zerolog.Logger
}

func NewReportService(reportRepo db.ReportRepository, propertyRepo db.PropertyRepository, userRepo db.UserRepository, mailer mailingservices.Mailer, conf *config.Config, log zerolog.Logger) ReportService {
	return &reportService{
		Config:       conf,
		reportRepo:   reportRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		mailer:       mailer,
		log:          log,
	}
}

// SubmitReport runs the full submission workflow: resolve the property,
// create the report, bump the report count, apply the status rule, award
// points and queue the acknowledgment mail. Everything after the report row
// is durable runs best effort; a failure there degrades the result but never
// rolls the report back or fails the submission.
func (s *reportService) SubmitReport(req *models.CreateReportRequest, user *models.User) (*models.Report, error) {
	var property *models.Property
	if req.PropertyID != nil {
		found, err := s.propertyRepo.FindPropertyByID(*req.PropertyID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("property not found", http.StatusNotFound)
			}
			return nil, err
		}
		property = found
	}

	report := &models.Report{
		PropertyID:   req.PropertyID,
		Reason:       req.Reason,
		Duration:     req.Duration,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Points:       ReportPoints,
	}
	if user != nil {
		userID := user.ID
		report.UserID = &userID
	}

	created, err := s.reportRepo.CreateReport(report)
	if err != nil {
		return nil, err
	}

	if property != nil {
		s.applyStatusRule(property.ID)
	}

	if user != nil {
		if err := s.userRepo.AddPoints(user.ID, created.Points); err != nil {
			s.log.Warn().Err(err).Uint("user_id", user.ID).Uint("report_id", created.ID).
				Msg("report recorded but point award failed")
		}
	}

	if s.mailer != nil && req.ContactEmail != nil && *req.ContactEmail != "" {
		address := ""
		if property != nil {
			address = property.Address
		}
		go s.sendAcknowledgment(*req.ContactEmail, req.ContactName, address)
	}

	return created, nil
}

// applyStatusRule increments the report count and promotes the property to
// Confirmed Vacant once the post-increment count reaches the threshold. The
// promotion jumps straight from whatever the current status is; it never
// demotes a property already at or past Confirmed Vacant.
func (s *reportService) applyStatusRule(propertyID uint) {
	if err := s.propertyRepo.IncrementReportCount(propertyID); err != nil {
		s.log.Warn().Err(err).Uint("property_id", propertyID).
			Msg("report recorded but count increment failed")
		return
	}

	property, err := s.propertyRepo.FindPropertyByID(propertyID)
	if err != nil {
		s.log.Warn().Err(err).Uint("property_id", propertyID).
			Msg("report recorded but status evaluation failed")
		return
	}
	if !ShouldConfirm(property.ReportCount) {
		return
	}

	promoted, err := s.propertyRepo.PromoteStatus(propertyID, models.StatusConfirmedVacant)
	if err != nil {
		s.log.Warn().Err(err).Uint("property_id", propertyID).
			Msg("report recorded but status promotion failed")
		return
	}
	if promoted {
		s.log.Info().Uint("property_id", propertyID).Int("report_count", property.ReportCount).
			Msg("property confirmed vacant")
	}
}

func (s *reportService) sendAcknowledgment(recipient string, name *string, address string) {
	contactName := ""
	if name != nil {
		contactName = *name
	}
	if err := s.mailer.SendReportAcknowledgment(recipient, contactName, address); err != nil {
		s.log.Warn().Err(err).Str("recipient", recipient).
			Msg("report acknowledgment mail failed")
	}
}

func (s *reportService) ListReports(filter db.ReportFilter) ([]models.Report, error) {
	return s.reportRepo.ListReports(filter)
}
