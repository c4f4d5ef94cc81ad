package db

import (
	"github.com/civiceye/civiceye/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	FindUserByUsername(username string) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	AddPoints(userID uint, delta int) error
	Leaderboard(limit int) ([]models.User, error)
	RankOf(points int, userID uint) (int, error)
	CountActiveReporters() (int64, error)
}

type userRepo struct {
	DB *gorm.DB
}

func NewUserRepo(db *GormDB) UserRepository {
	return &userRepo{db.DB}
}

func (r *userRepo) CreateUser(user *models.User) (*models.User, error) {
	if err := r.DB.Create(user).Error; err != nil {
		return nil, errors.Wrap(err, "creating user")
	}
	return user, nil
}

func (r *userRepo) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AddPoints applies an additive delta as a single SQL expression so concurrent
// awards never lose an update. A missing user fails loudly.
func (r *userRepo) AddPoints(userID uint, delta int) error {
	res := r.DB.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", delta))
	if res.Error != nil {
		return errors.Wrap(res.Error, "adding points")
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Leaderboard orders by points descending with lower ids first on ties, so
// repeated calls with no writes in between return identical output.
func (r *userRepo) Leaderboard(limit int) ([]models.User, error) {
	var users []models.User
	q := r.DB.Order("points DESC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "fetching leaderboard")
	}
	return users, nil
}

// RankOf counts the users strictly ahead in the leaderboard ordering.
func (r *userRepo) RankOf(points int, userID uint) (int, error) {
	var ahead int64
	err := r.DB.Model(&models.User{}).
		Where("points > ? OR (points = ? AND id < ?)", points, points, userID).
		Count(&ahead).Error
	if err != nil {
		return 0, errors.Wrap(err, "computing rank")
	}
	return int(ahead) + 1, nil
}

func (r *userRepo) CountActiveReporters() (int64, error) {
	var count int64
	err := r.DB.Model(&models.User{}).Where("points > 0").Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
