package model

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/aura/internal/domain"
)

func get(t *testing.T, b interface{ Get() (string, error) }) string {
	t.Helper()
	v, err := b.Get()
	require.NoError(t, err)
	return v
}

func TestNewDashboardState(t *testing.T) {
	test.NewTempApp(t)
	s := NewDashboardState()
	assert.Equal(t, "…", get(t, s.TotalCustomers))
	assert.Equal(t, APIIdle, get(t, s.API.State))
}

func TestApply(t *testing.T) {
	test.NewTempApp(t)
	s := NewDashboardState()
	s.Apply(domain.Snapshot{
		Summary: domain.DashboardSummary{
			TotalCustomers:   7043,
			HighRiskCount:    1869,
			AverageRisk:      0.265,
			MonthlyChurnRate: 26.5,
			RiskDistribution: domain.RiskDistribution{Low: 3800, Medium: 1374, High: 1869},
			TopRiskyCustomers: []domain.RiskyCustomer{
				{CustomerID: "a", Name: "3668-QPYBK", RiskScore: 97.14},
			},
		},
		FetchedAt: time.Now(),
		Source:    domain.SourceLive,
	})

	assert.Equal(t, "7.043", get(t, s.TotalCustomers))
	assert.Equal(t, "1.869", get(t, s.HighRiskCount))
	assert.Equal(t, "%26.5", get(t, s.ChurnRate))
	assert.Equal(t, "%26.5", get(t, s.AverageRisk))
	assert.Equal(t, "1.374", get(t, s.RiskMedium))

	rows, err := s.TopRisky.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"3668-QPYBK · %97.1"}, rows)
	assert.Equal(t, APILive, get(t, s.API.State))
}

func TestApply_SourceStates(t *testing.T) {
	test.NewTempApp(t)
	tests := []struct {
		source domain.SummarySource
		want   string
	}{
		{domain.SourceLive, APILive},
		{domain.SourceCache, APICached},
		{domain.SourcePlaceholder, APIUnavailable},
	}
	for _, tt := range tests {
		t.Run(string(tt.source), func(t *testing.T) {
			s := NewDashboardState()
			s.Apply(domain.Snapshot{Summary: domain.PlaceholderSummary(), Source: tt.source})
			assert.Equal(t, tt.want, get(t, s.API.State))
			assert.NotEmpty(t, get(t, s.API.Message))
		})
	}
}
