package models

// Report is an immutable citizen submission. UserID is nil for anonymous
// reports; PropertyID is nil when the report is not attached to a tracked
// property. Points are fixed at creation time.
type Report struct {
	Model
	PropertyID   *uint   `json:"propertyId"`
	UserID       *uint   `json:"userId"`
	Reason       string  `json:"reason" gorm:"not null"`
	Duration     string  `json:"duration" gorm:"not null"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"imageUrl"`
	ContactName  *string `json:"contactName"`
	ContactEmail *string `json:"contactEmail"`
	Points       int     `json:"points" gorm:"not null;default:50"`
}

type CreateReportRequest struct {
	PropertyID   *uint   `json:"propertyId"`
	Reason       string  `json:"reason" binding:"required" conform:"trim"`
	Duration     string  `json:"duration" binding:"required" conform:"trim"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"imageUrl"`
	ContactName  *string `json:"contactName"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
}
