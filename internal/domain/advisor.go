package domain

import "time"

type ImpactLevel string

const (
	ImpactHigh     ImpactLevel = "high"
	ImpactModerate ImpactLevel = "moderate"
	ImpactLow      ImpactLevel = "low"
)

// InsightTypes are the categories the advisor knows how to prompt for.
var InsightTypes = []string{"spending", "budget", "investment", "goal", "reminder", "security", "general"}

type Insight struct {
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	Type        string      `json:"type"`
	Source      string      `json:"source"`
	ImpactLevel ImpactLevel `json:"impactLevel"`
	CreatedByAI bool        `json:"createdByAI"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

type InvestmentTip struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	RiskLevel      string   `json:"risk_level"`
	ActionItems    []string `json:"action_items"`
	ExpectedImpact string   `json:"expected_impact"`
}

type DailyTip struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	TimeHorizon string `json:"time_horizon"`
}

type Transaction struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

type AIForecastInput struct {
	Amount         float64        `json:"amount"`
	Duration       float64        `json:"duration"`
	DurationType   string         `json:"durationType"`
	InvestmentType string         `json:"investmentType"`
	RiskAppetite   string         `json:"riskAppetite"`
	ExpectedReturn *float64       `json:"expectedReturn,omitempty"`
	Currency       string         `json:"currency"`
	UserProfile    map[string]any `json:"userProfile,omitempty"`
}

type Scenario struct {
	ProjectedValue float64 `json:"projectedValue"`
	AnnualReturn   float64 `json:"annualReturn"`
	Confidence     string  `json:"confidence"`
}

type Milestone struct {
	Year           float64 `json:"year"`
	ProjectedValue float64 `json:"projectedValue"`
	Notes          string  `json:"notes"`
}

type AIRiskAssessment struct {
	Volatility           string   `json:"volatility"`
	RiskLevel            string   `json:"riskLevel"`
	KeyRisks             []string `json:"keyRisks"`
	MitigationStrategies []string `json:"mitigationStrategies"`
}

type AIRecommendations struct {
	Strategy        string `json:"strategy"`
	Diversification string `json:"diversification"`
	Timeline        string `json:"timeline"`
}

type AIForecastMetadata struct {
	GeneratedAt     time.Time       `json:"generatedAt"`
	InputParameters AIForecastInput `json:"inputParameters"`
	AIModel         string          `json:"aiModel"`
	Confidence      string          `json:"confidence"`
}

type AIForecast struct {
	Scenarios       map[string]Scenario `json:"scenarios"`
	RiskAssessment  AIRiskAssessment    `json:"riskAssessment"`
	Recommendations AIRecommendations   `json:"recommendations"`
	Milestones      []Milestone         `json:"milestones"`
	Factors         []string            `json:"factors"`
	Summary         string              `json:"summary"`
	Metadata        AIForecastMetadata  `json:"metadata"`
}

type TrendingInvestment struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Returns        string `json:"returns"`
	Risk           string `json:"risk"`
	Category       string `json:"category"`
	Symbol         string `json:"symbol"`
	TrendReason    string `json:"trend_reason"`
	Recommendation string `json:"recommendation"`
}

type Advice struct {
	Advice      string    `json:"advice"`
	Category    string    `json:"category"`
	GeneratedAt time.Time `json:"generatedAt"`
}

type SpendingAnalysis struct {
	Analysis         string    `json:"analysis"`
	TimeFrame        string    `json:"timeFrame"`
	TransactionCount int       `json:"transactionCount"`
	AnalyzedAt       time.Time `json:"analyzedAt"`
}
