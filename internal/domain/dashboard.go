package domain

import "time"

// RiskDistribution counts customers per risk band.
type RiskDistribution struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// Total returns the number of customers across all bands.
func (d RiskDistribution) Total() int {
	return d.Low + d.Medium + d.High
}

// RiskyCustomer is one entry of the top-risk list.
type RiskyCustomer struct {
	CustomerID string  `json:"customer_id"`
	Name       string  `json:"name"`
	RiskScore  float64 `json:"risk_score"`
	RiskLevel  string  `json:"risk_level"`
}

// DashboardSummary mirrors GET /api/dashboard/summary.
type DashboardSummary struct {
	TotalCustomers    int              `json:"total_customers"`
	HighRiskCount     int              `json:"high_risk_count"`
	AverageRisk       float64          `json:"average_risk"`
	MonthlyChurnRate  float64          `json:"monthly_churn_rate"`
	RiskDistribution  RiskDistribution `json:"risk_distribution"`
	TopRiskyCustomers []RiskyCustomer  `json:"top_risky_customers"`
}

// SummarySource records where a summary came from.
type SummarySource string

const (
	SourceLive        SummarySource = "live"
	SourceCache       SummarySource = "cache"
	SourcePlaceholder SummarySource = "placeholder"
)

// Snapshot is a summary together with when and where it was obtained.
type Snapshot struct {
	Summary   DashboardSummary `json:"summary"`
	FetchedAt time.Time        `json:"fetched_at"`
	Source    SummarySource    `json:"source"`
}

// PlaceholderSummary is shown when neither the API nor the cache can
// provide figures.
func PlaceholderSummary() DashboardSummary {
	return DashboardSummary{
		TotalCustomers:    7043,
		AverageRisk:       0.18,
		MonthlyChurnRate:  7.9,
		RiskDistribution:  RiskDistribution{Low: 1},
		TopRiskyCustomers: []RiskyCustomer{},
	}
}
