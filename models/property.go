package models

import "time"

// Property status values, ordered. Status only ever moves forward.
const (
	StatusReported        = "Reported"
	StatusInvestigating   = "Investigating"
	StatusConfirmedVacant = "Confirmed Vacant"
	StatusPenaltyIssued   = "Penalty Issued"
)

// PropertyStatuses lists all statuses in ascending order of severity.
var PropertyStatuses = []string{
	StatusReported,
	StatusInvestigating,
	StatusConfirmedVacant,
	StatusPenaltyIssued,
}

// StatusRank returns the position of a status in the forward-only ordering.
// Unknown statuses rank below Reported.
func StatusRank(status string) int {
	for i, s := range PropertyStatuses {
		if s == status {
			return i
		}
	}
	return -1
}

// Property is a tracked address. VacancyScore is set externally and decimal
// amounts are carried as strings, matching the wire format.
type Property struct {
	Model
	Address            string     `json:"address" gorm:"not null"`
	Latitude           *string    `json:"latitude"`
	Longitude          *string    `json:"longitude"`
	PropertyType       string     `json:"propertyType" gorm:"not null"`
	Status             string     `json:"status" gorm:"not null;default:Reported"`
	VacancyScore       int        `json:"vacancyScore" gorm:"not null;default:0"`
	ReportCount        int        `json:"reportCount" gorm:"not null;default:0"`
	LastUtilityReading *time.Time `json:"lastUtilityReading"`
	EstimatedTaxLoss   *string    `json:"estimatedTaxLoss"`
}

type CreatePropertyRequest struct {
	Address          string  `json:"address" binding:"required" conform:"trim"`
	Latitude         *string `json:"latitude"`
	Longitude        *string `json:"longitude"`
	PropertyType     string  `json:"propertyType" binding:"required" conform:"trim"`
	EstimatedTaxLoss *string `json:"estimatedTaxLoss"`
}
