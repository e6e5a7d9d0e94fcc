package model

import (
	"fyne.io/fyne/v2/data/binding"

	"github.com/shhac/aura/internal/api"
	"github.com/shhac/aura/internal/domain"
)

// API states shown in the status bar.
const (
	APIIdle        = "idle"
	APILoading     = "loading"
	APILive        = "live"
	APICached      = "cached"
	APIUnavailable = "unavailable"
)

// DashboardState represents the dashboard figures with Fyne data bindings.
// Metric cards bind to the formatted strings for reactive updates.
type DashboardState struct {
	TotalCustomers binding.String
	HighRiskCount  binding.String
	ChurnRate      binding.String
	AverageRisk    binding.String

	RiskLow    binding.String
	RiskMedium binding.String
	RiskHigh   binding.String

	TopRisky binding.StringList // "id · score" rows

	API *APIUIState
}

// NewDashboardState creates a DashboardState with every metric shown as "…".
func NewDashboardState() *DashboardState {
	s := &DashboardState{
		TotalCustomers: binding.NewString(),
		HighRiskCount:  binding.NewString(),
		ChurnRate:      binding.NewString(),
		AverageRisk:    binding.NewString(),
		RiskLow:        binding.NewString(),
		RiskMedium:     binding.NewString(),
		RiskHigh:       binding.NewString(),
		TopRisky:       binding.NewStringList(),
		API:            NewAPIUIState(),
	}
	for _, b := range s.metrics() {
		_ = b.Set("…")
	}
	return s
}

func (s *DashboardState) metrics() []binding.String {
	return []binding.String{
		s.TotalCustomers, s.HighRiskCount, s.ChurnRate, s.AverageRisk,
		s.RiskLow, s.RiskMedium, s.RiskHigh,
	}
}

// Apply copies a snapshot into the bindings.
func (s *DashboardState) Apply(snap domain.Snapshot) {
	sum := snap.Summary
	_ = s.TotalCustomers.Set(api.FormatNumber(sum.TotalCustomers))
	_ = s.HighRiskCount.Set(api.FormatNumber(sum.HighRiskCount))
	_ = s.ChurnRate.Set(api.FormatPercentage(sum.MonthlyChurnRate))
	_ = s.AverageRisk.Set(api.FormatPercentage(sum.AverageRisk * 100))
	_ = s.RiskLow.Set(api.FormatNumber(sum.RiskDistribution.Low))
	_ = s.RiskMedium.Set(api.FormatNumber(sum.RiskDistribution.Medium))
	_ = s.RiskHigh.Set(api.FormatNumber(sum.RiskDistribution.High))

	rows := make([]string, 0, len(sum.TopRiskyCustomers))
	for _, c := range sum.TopRiskyCustomers {
		rows = append(rows, c.Name+" · "+api.FormatPercentage(c.RiskScore))
	}
	_ = s.TopRisky.Set(rows)

	switch snap.Source {
	case domain.SourceLive:
		s.API.Set(APILive, "Updated "+snap.FetchedAt.Local().Format("15:04:05"))
	case domain.SourceCache:
		s.API.Set(APICached, "Offline, showing data from "+snap.FetchedAt.Local().Format("2006-01-02 15:04"))
	default:
		s.API.Set(APIUnavailable, "Scoring service unavailable, showing sample figures")
	}
}

// APIUIState represents the UI state for scoring API status display.
// States: "idle", "loading", "live", "cached", "unavailable"
type APIUIState struct {
	State   binding.String
	Message binding.String
}

// NewAPIUIState creates a new APIUIState with initialized bindings.
func NewAPIUIState() *APIUIState {
	state := binding.NewString()
	_ = state.Set(APIIdle)

	return &APIUIState{
		State:   state,
		Message: binding.NewString(),
	}
}

// Set updates state and message together.
func (a *APIUIState) Set(state, message string) {
	_ = a.State.Set(state)
	_ = a.Message.Set(message)
}
