package models

import "time"

const (
	TaxNoticePending   = "Pending"
	TaxNoticeConfirmed = "Confirmed"
)

// TaxNotice is an enforcement record. Pending -> Confirmed is one way and the
// transaction hash is written exactly once, at confirmation.
type TaxNotice struct {
	Model
	PropertyID      uint       `json:"propertyId" gorm:"not null"`
	PenaltyType     string     `json:"penaltyType" gorm:"not null"`
	PenaltyAmount   *string    `json:"penaltyAmount"`
	DueDate         *time.Time `json:"dueDate"`
	TransactionHash *string    `json:"transactionHash"`
	Status          string     `json:"status" gorm:"not null;default:Pending"`
}

type CreateTaxNoticeRequest struct {
	PropertyID    uint    `json:"propertyId" binding:"required"`
	PenaltyType   string  `json:"penaltyType" binding:"required" conform:"trim"`
	PenaltyAmount *string `json:"penaltyAmount"`
	DueDate       *string `json:"dueDate"`
}
