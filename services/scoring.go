package services

// ReportPoints is awarded for every successful report submission, independent
// of property status or report history.
const ReportPoints = 50

// ConfirmThreshold is the report count at which a property is promoted to
// Confirmed Vacant.
const ConfirmThreshold = 3

type badgeTier struct {
	MinPoints int
	Name      string
}

// badgeTiers maps cumulative points to a badge label, highest tier first.
// The table is a monotonic step function: more points never means a lower tier.
var badgeTiers = []badgeTier{
	{2500, "Urban Guardian"},
	{2000, "Community Hero"},
	{1500, "Civic Champion"},
	{500, "Rising Star"},
	{0, "Newcomer"},
}

// BadgeFor returns the badge label earned at the given points total.
func BadgeFor(points int) string {
	for _, tier := range badgeTiers {
		if points >= tier.MinPoints {
			return tier.Name
		}
	}
	return badgeTiers[len(badgeTiers)-1].Name
}

// ShouldConfirm reports whether a property with the given report count, taken
// after the increment for the new report, crosses the confirmation threshold.
func ShouldConfirm(reportCount int) bool {
	return reportCount >= ConfirmThreshold
}
