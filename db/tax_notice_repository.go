package db

import (
	"github.com/civiceye/civiceye/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrTaxNoticeAlreadyConfirmed signals a second confirmation attempt; the
// Pending -> Confirmed transition happens exactly once.
var ErrTaxNoticeAlreadyConfirmed = errors.New("tax notice already confirmed")

type TaxNoticeRepository interface {
	CreateTaxNotice(notice *models.TaxNotice) (*models.TaxNotice, error)
	FindTaxNoticeByID(id uint) (*models.TaxNotice, error)
	ListTaxNotices(propertyID uint) ([]models.TaxNotice, error)
	ConfirmTaxNotice(id uint, transactionHash string) error
}

type taxNoticeRepo struct {
	DB *gorm.DB
}

func NewTaxNoticeRepo(db *GormDB) TaxNoticeRepository {
	return &taxNoticeRepo{db.DB}
}

func (r *taxNoticeRepo) CreateTaxNotice(notice *models.TaxNotice) (*models.TaxNotice, error) {
	if notice.Status == "" {
		notice.Status = models.TaxNoticePending
	}
	if err := r.DB.Create(notice).Error; err != nil {
		return nil, errors.Wrap(err, "creating tax notice")
	}
	return notice, nil
}

func (r *taxNoticeRepo) FindTaxNoticeByID(id uint) (*models.TaxNotice, error) {
	var notice models.TaxNotice
	if err := r.DB.First(&notice, id).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

func (r *taxNoticeRepo) ListTaxNotices(propertyID uint) ([]models.TaxNotice, error) {
	var notices []models.TaxNotice
	q := r.DB.Order("id ASC")
	if propertyID != 0 {
		q = q.Where("property_id = ?", propertyID)
	}
	if err := q.Find(&notices).Error; err != nil {
		return nil, errors.Wrap(err, "listing tax notices")
	}
	return notices, nil
}

// ConfirmTaxNotice records the enforcement transaction. The guard on status
// keeps the transition one way and the hash write-once.
func (r *taxNoticeRepo) ConfirmTaxNotice(id uint, transactionHash string) error {
	res := r.DB.Model(&models.TaxNotice{}).
		Where("id = ? AND status = ?", id, models.TaxNoticePending).
		Updates(map[string]interface{}{
			"status":           models.TaxNoticeConfirmed,
			"transaction_hash": transactionHash,
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "confirming tax notice")
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.DB.Model(&models.TaxNotice{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrTaxNoticeAlreadyConfirmed
	}
	return nil
}
