package db

import (
	"github.com/civiceye/civiceye/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PropertyFilter narrows ListProperties. Zero values mean "not filtered".
type PropertyFilter struct {
	Status string
	Limit  int
}

type PropertyRepository interface {
	CreateProperty(property *models.Property) (*models.Property, error)
	FindPropertyByID(id uint) (*models.Property, error)
	ListProperties(filter PropertyFilter) ([]models.Property, error)
	IncrementReportCount(id uint) error
	PromoteStatus(id uint, target string) (bool, error)
	CountProperties() (int64, error)
	CountByStatus(status string) (int64, error)
	SumConfirmedTaxLoss() (float64, error)
}

type propertyRepo struct {
	DB *gorm.DB
}

func NewPropertyRepo(db *GormDB) PropertyRepository {
	return &propertyRepo{db.DB}
}

func (r *propertyRepo) CreateProperty(property *models.Property) (*models.Property, error) {
	if property.Status == "" {
		property.Status = models.StatusReported
	}
	if err := r.DB.Create(property).Error; err != nil {
		return nil, errors.Wrap(err, "creating property")
	}
	return property, nil
}

func (r *propertyRepo) FindPropertyByID(id uint) (*models.Property, error) {
	var property models.Property
	if err := r.DB.First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepo) ListProperties(filter PropertyFilter) ([]models.Property, error) {
	var properties []models.Property
	q := r.DB.Order("id ASC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Find(&properties).Error; err != nil {
		return nil, errors.Wrap(err, "listing properties")
	}
	return properties, nil
}

// IncrementReportCount bumps the counter in a single SQL expression; two
// overlapping submissions against the same property both land.
func (r *propertyRepo) IncrementReportCount(id uint) error {
	res := r.DB.Model(&models.Property{}).
		Where("id = ?", id).
		UpdateColumn("report_count", gorm.Expr("report_count + 1"))
	if res.Error != nil {
		return errors.Wrap(res.Error, "incrementing report count")
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PromoteStatus moves a property to target only when its current status ranks
// lower, so a property never walks backwards. It reports whether the update
// fired; a missing property fails loudly.
func (r *propertyRepo) PromoteStatus(id uint, target string) (bool, error) {
	var lower []string
	for _, s := range models.PropertyStatuses {
		if models.StatusRank(s) < models.StatusRank(target) {
			lower = append(lower, s)
		}
	}

	res := r.DB.Model(&models.Property{}).
		Where("id = ? AND status IN ?", id, lower).
		Update("status", target)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "promoting property status")
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	if err := r.DB.Model(&models.Property{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, gorm.ErrRecordNotFound
	}
	// Already at or past the target.
	return false, nil
}

func (r *propertyRepo) CountProperties() (int64, error) {
	var count int64
	err := r.DB.Model(&models.Property{}).Count(&count).Error
	return count, err
}

func (r *propertyRepo) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Property{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *propertyRepo) SumConfirmedTaxLoss() (float64, error) {
	var total float64
	err := r.DB.Model(&models.Property{}).
		Where("status = ? AND estimated_tax_loss IS NOT NULL", models.StatusConfirmedVacant).
		Select("COALESCE(SUM(CAST(estimated_tax_loss AS DECIMAL)), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "summing confirmed tax loss")
	}
	return total, nil
}
