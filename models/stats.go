package models

// Stats is the aggregate dashboard payload served by GET /api/stats.
type Stats struct {
	PropertiesReported int    `json:"propertiesReported"`
	TaxRecovered       string `json:"taxRecovered"`
	ActiveReporters    int    `json:"activeReporters"`
	ConfirmedVacant    int    `json:"confirmedVacant"`
	Investigating      int    `json:"investigating"`
	TotalReports       int    `json:"totalReports"`
}
