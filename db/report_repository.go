package db

import (
	"github.com/civiceye/civiceye/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ReportFilter narrows ListReports. Zero ids mean "not filtered".
type ReportFilter struct {
	PropertyID uint
	UserID     uint
}

type ReportRepository interface {
	CreateReport(report *models.Report) (*models.Report, error)
	FindReportByID(id uint) (*models.Report, error)
	ListReports(filter ReportFilter) ([]models.Report, error)
	CountReports() (int64, error)
}

type reportRepo struct {
	DB *gorm.DB
}

func NewReportRepo(db *GormDB) ReportRepository {
	return &reportRepo{db.DB}
}

func (r *reportRepo) CreateReport(report *models.Report) (*models.Report, error) {
	if err := r.DB.Create(report).Error; err != nil {
		return nil, errors.Wrap(err, "creating report")
	}
	return report, nil
}

func (r *reportRepo) FindReportByID(id uint) (*models.Report, error) {
	var report models.Report
	if err := r.DB.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepo) ListReports(filter ReportFilter) ([]models.Report, error) {
	var reports []models.Report
	q := r.DB.Order("id ASC")
	if filter.PropertyID != 0 {
		q = q.Where("property_id = ?", filter.PropertyID)
	}
	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if err := q.Find(&reports).Error; err != nil {
		return nil, errors.Wrap(err, "listing reports")
	}
	return reports, nil
}

func (r *reportRepo) CountReports() (int64, error) {
	var count int64
	err := r.DB.Model(&models.Report{}).Count(&count).Error
	return count, err
}
