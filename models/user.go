package models

import (
	"errors"

	goval "github.com/go-passwd/validator"
	"github.com/leebenson/conform"
	"golang.org/x/crypto/bcrypt"
)

// User is a registered reporter. Points are the stored truth; Rank and Badge
// are projections computed from points at read time and never persisted.
type User struct {
	Model
	Username       string `json:"username" gorm:"uniqueIndex;not null"`
	Email          string `json:"email" gorm:"uniqueIndex;not null"`
	HashedPassword string `json:"-"`
	Points         int    `json:"points" gorm:"not null;default:0"`
	Rank           int    `json:"rank" gorm:"-"`
	Badge          string `json:"badge" gorm:"-"`
}

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=2" conform:"trim"`
	Email    string `json:"email" binding:"required,email" conform:"trim,lower"`
	Password string `json:"password" binding:"required"`
}

// Conform trims and normalizes the request fields in place.
func (r *SignupRequest) Conform() error {
	return conform.Strings(r)
}

func ValidatePassword(password string) error {
	passwordValidator := goval.New(
		goval.MinLength(6, errors.New("password cant be less than 6 characters")),
		goval.MaxLength(72, errors.New("password cant be more than 72 characters")))
	return passwordValidator.Validate(password)
}

func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.HashedPassword = string(hashed)
	return nil
}

func (u *User) VerifyPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password))
}
