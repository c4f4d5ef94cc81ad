package services

import (
	stderrors "errors"
	"net/http"

	"github.com/civiceye/civiceye/config"
	"github.com/civiceye/civiceye/db"
	"github.com/civiceye/civiceye/errors"
	"github.com/civiceye/civiceye/models"
	"gorm.io/gorm"
)

type PropertyService interface {
	CreateProperty(req *models.CreatePropertyRequest) (*models.Property, error)
	GetProperty(id uint) (*models.Property, error)
	ListProperties(filter db.PropertyFilter) ([]models.Property, error)
}

type propertyService struct {
	Config       *config.Config
	propertyRepo db.PropertyRepository
}

func NewPropertyService(propertyRepo db.PropertyRepository, conf *config.Config) PropertyService {
	return &propertyService{
		Config:       conf,
		propertyRepo: propertyRepo,
	}
}

func (s *propertyService) CreateProperty(req *models.CreatePropertyRequest) (*models.Property, error) {
	property := &models.Property{
		Address:          req.Address,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		PropertyType:     req.PropertyType,
		EstimatedTaxLoss: req.EstimatedTaxLoss,
		Status:           models.StatusReported,
	}
	return s.propertyRepo.CreateProperty(property)
}

func (s *propertyService) GetProperty(id uint) (*models.Property, error) {
	property, err := s.propertyRepo.FindPropertyByID(id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("property not found", http.StatusNotFound)
		}
		return nil, err
	}
	return property, nil
}

func (s *propertyService) ListProperties(filter db.PropertyFilter) ([]models.Property, error) {
	return s.propertyRepo.ListProperties(filter)
}
