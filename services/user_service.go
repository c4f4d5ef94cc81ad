package services

import (
	stderrors "errors"
	"net/http"

	"github.com/civiceye/civiceye/config"
	"github.com/civiceye/civiceye/db"
	"github.com/civiceye/civiceye/errors"
	"github.com/civiceye/civiceye/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type UserService interface {
	Register(req *models.SignupRequest) (*models.User, error)
	GetUser(id uint) (*models.User, error)
	Leaderboard(limit int) ([]models.User, error)
}

type userService struct {
	Config   *config.Config
	userRepo db.UserRepository
	log      zerolog.Logger
}

func NewUserService(userRepo db.UserRepository, conf *config.Config, log zerolog.Logger) UserService {
	return &userService{
		Config:   conf,
		userRepo: userRepo,
		log:      log,
	}
}

func (s *userService) Register(req *models.SignupRequest) (*models.User, error) {
	if err := req.Conform(); err != nil {
		return nil, errors.New("invalid signup payload", http.StatusBadRequest)
	}
	if err := models.ValidatePassword(req.Password); err != nil {
		return nil, errors.New(err.Error(), http.StatusBadRequest)
	}

	if _, err := s.userRepo.FindUserByUsername(req.Username); err == nil {
		return nil, errors.New("username already taken", http.StatusConflict)
	} else if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.FindUserByEmail(req.Email); err == nil {
		return nil, errors.New("email already registered", http.StatusConflict)
	} else if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	created, err := s.userRepo.CreateUser(user)
	if err != nil {
		return nil, err
	}
	s.decorate(created)
	return created, nil
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.FindUserByID(id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found", http.StatusNotFound)
		}
		return nil, err
	}
	s.decorate(user)
	return user, nil
}

func (s *userService) Leaderboard(limit int) ([]models.User, error) {
	if limit <= 0 {
		limit = 10
	}
	users, err := s.userRepo.Leaderboard(limit)
	if err != nil {
		return nil, err
	}
	// The leaderboard is the prefix of the total ordering, so rank is just
	// the position.
	for i := range users {
		users[i].Rank = i + 1
		users[i].Badge = BadgeFor(users[i].Points)
	}
	return users, nil
}

// decorate fills the read-time projections (rank, badge) from stored points.
func (s *userService) decorate(user *models.User) {
	rank, err := s.userRepo.RankOf(user.Points, user.ID)
	if err != nil {
		s.log.Warn().Err(err).Uint("user_id", user.ID).Msg("rank projection failed")
		rank = 0
	}
	user.Rank = rank
	user.Badge = BadgeFor(user.Points)
}
