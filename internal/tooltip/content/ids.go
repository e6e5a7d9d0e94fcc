package content

// Tooltip ids used by the dashboard pages.
const (
	RiskScore        = "risk-score"
	RiskDistribution = "risk-distribution"
	HighRiskCount    = "high-risk-count"
	ShapValues       = "shap-values"
	Campaign         = "campaign-recommendation"
	AIInsights       = "ai-insights"
	ChurnRate        = "churn-rate"
	RetentionRate    = "retention-rate"
	ROI              = "roi"
	TotalCustomers   = "total-customers"
	MonthlyRevenue   = "monthly-revenue"
	ProjectedRevenue = "projected-revenue"
	CampaignCost     = "campaign-cost"
	LifetimeValue    = "customer-lifetime-value"

	Gender           = "gender"
	SeniorCitizen    = "senior-citizen"
	Partner          = "partner"
	Dependents       = "dependents"
	Tenure           = "tenure"
	ContractType     = "contract-type"
	MonthlyCharges   = "monthly-charges"
	TotalCharges     = "total-charges"
	PaymentMethod    = "payment-method"
	PaperlessBilling = "paperless-billing"
	PhoneService     = "phone-service"
	MultipleLines    = "multiple-lines"
	InternetService  = "internet-service"
	OnlineSecurity   = "online-security"
	OnlineBackup     = "online-backup"
	DeviceProtection = "device-protection"
	TechSupport      = "tech-support"
	StreamingTV      = "streaming-tv"
	StreamingMovies  = "streaming-movies"
)

// Pages maps each dashboard page to the tooltip ids it renders.
var Pages = map[string][]string{
	"dashboard": {
		RiskDistribution, ChurnRate, TotalCustomers, HighRiskCount, MonthlyRevenue,
	},
	"customer-detail": {
		RiskScore, ShapValues, AIInsights, Campaign,
	},
	"calculator": {
		Gender, SeniorCitizen, Partner, Dependents,
		Tenure, ContractType, MonthlyCharges, TotalCharges, PaymentMethod, PaperlessBilling,
		PhoneService, MultipleLines, InternetService, OnlineSecurity, OnlineBackup,
		DeviceProtection, TechSupport, StreamingTV, StreamingMovies,
		RiskScore, ShapValues,
	},
	"simulation": {
		ROI, RetentionRate, ProjectedRevenue, CampaignCost, LifetimeValue,
	},
}

// PageIDs returns the deduplicated ids of every page.
func PageIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, page := range []string{"dashboard", "customer-detail", "calculator", "simulation"} {
		for _, id := range Pages[page] {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}
