package services

import (
	"fmt"

	"github.com/civiceye/civiceye/config"
	"github.com/civiceye/civiceye/db"
	"github.com/civiceye/civiceye/models"
)

type StatsService interface {
	GetStats() (*models.Stats, error)
}

type statsService struct {
	Config       *config.Config
	propertyRepo db.PropertyRepository
	reportRepo   db.ReportRepository
	userRepo     db.UserRepository
}

func NewStatsService(propertyRepo db.PropertyRepository, reportRepo db.ReportRepository, userRepo db.UserRepository, conf *config.Config) StatsService {
	return &statsService{
		Config:       conf,
		propertyRepo: propertyRepo,
		reportRepo:   reportRepo,
		userRepo:     userRepo,
	}
}

func (s *statsService) GetStats() (*models.Stats, error) {
	propertiesReported, err := s.propertyRepo.CountProperties()
	if err != nil {
		return nil, err
	}
	confirmedVacant, err := s.propertyRepo.CountByStatus(models.StatusConfirmedVacant)
	if err != nil {
		return nil, err
	}
	investigating, err := s.propertyRepo.CountByStatus(models.StatusInvestigating)
	if err != nil {
		return nil, err
	}
	totalReports, err := s.reportRepo.CountReports()
	if err != nil {
		return nil, err
	}
	activeReporters, err := s.userRepo.CountActiveReporters()
	if err != nil {
		return nil, err
	}
	taxRecovered, err := s.propertyRepo.SumConfirmedTaxLoss()
	if err != nil {
		return nil, err
	}

	return &models.Stats{
		PropertiesReported: int(propertiesReported),
		TaxRecovered:       fmt.Sprintf("$%.1fM", taxRecovered/1000000),
		ActiveReporters:    int(activeReporters),
		ConfirmedVacant:    int(confirmedVacant),
		Investigating:      int(investigating),
		TotalReports:       int(totalReports),
	}, nil
}
