package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"mintmate/internal/domain"
	"mintmate/internal/logger"
	"mintmate/internal/metrics"
	"mintmate/internal/repository"
)

const (
	defaultInsightSource   = "Groq LLM"
	defaultSpendingFrame   = "monthly"
	fallbackForecastModel  = "fallback"
	fallbackAnnualReturn   = 0.07
	maxInsightTitlePrefix  = 50
	maxInsightHeaderLength = 100
)

// AdvisorService turns user questions into Groq prompts and parses the
// free-form answers into structured responses.
type AdvisorService interface {
	Respond(ctx context.Context, prompt string) (string, error)
	Advice(ctx context.Context, category, userContext string, profile map[string]any) (*domain.Advice, error)
	AnalyzeSpending(ctx context.Context, transactions []domain.Transaction, timeFrame string) (*domain.SpendingAnalysis, error)
	GenerateInsight(ctx context.Context, insightType, userContext, source string) (*domain.Insight, error)
	InvestmentTips(ctx context.Context, userContext string, profile map[string]any) ([]domain.InvestmentTip, error)
	TrendingInvestments(ctx context.Context, marketContext string, preferences map[string]any) ([]domain.TrendingInvestment, error)
	DailyTip(ctx context.Context, userContext string) (*domain.DailyTip, error)
	InvestmentForecast(ctx context.Context, input domain.AIForecastInput) (*domain.AIForecast, error)
}

type advisorServiceHandler struct {
	LlmRepository repository.LlmRepository
	Now           func() time.Time
}

// NewAdvisorService accepts a nil repository when no Groq key is configured.
// Every operation except InvestmentForecast then fails with
// domain.ErrLlmNotConfigured.
func NewAdvisorService(llmRepository repository.LlmRepository, now func() time.Time) AdvisorService {
	if now == nil {
		now = time.Now
	}
	return advisorServiceHandler{
		LlmRepository: llmRepository,
		Now:           now,
	}
}

func invalidAdvisorInput(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidAdvisorInput, msg)
}

func (h advisorServiceHandler) complete(ctx context.Context, operation, prompt string) (string, error) {
	if h.LlmRepository == nil {
		metrics.LlmRequests.WithLabelValues(operation, metrics.ResultError).Inc()
		return "", domain.ErrLlmNotConfigured
	}
	out, err := h.LlmRepository.CompleteWithRetry(ctx, prompt)
	if err != nil {
		metrics.LlmRequests.WithLabelValues(operation, metrics.ResultError).Inc()
		return "", fmt.Errorf("%s request failed: %w", operation, err)
	}
	metrics.LlmRequests.WithLabelValues(operation, metrics.ResultOk).Inc()
	return out, nil
}

func (h advisorServiceHandler) Respond(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", invalidAdvisorInput("prompt is required and must be a string")
	}
	return h.complete(ctx, "respond", prompt)
}

func (h advisorServiceHandler) Advice(ctx context.Context, category, userContext string, profile map[string]any) (*domain.Advice, error) {
	if strings.TrimSpace(category) == "" {
		return nil, invalidAdvisorInput("advice category is required")
	}
	out, err := h.complete(ctx, "advice", advicePrompt(category, userContext, profile))
	if err != nil {
		return nil, err
	}
	return &domain.Advice{
		Advice:      out,
		Category:    category,
		GeneratedAt: h.Now().UTC(),
	}, nil
}

func (h advisorServiceHandler) AnalyzeSpending(ctx context.Context, transactions []domain.Transaction, timeFrame string) (*domain.SpendingAnalysis, error) {
	if transactions == nil {
		return nil, invalidAdvisorInput("transactions array is required")
	}
	if timeFrame == "" {
		timeFrame = defaultSpendingFrame
	}
	out, err := h.complete(ctx, "analyze_spending", spendingAnalysisPrompt(transactions, timeFrame))
	if err != nil {
		return nil, err
	}
	return &domain.SpendingAnalysis{
		Analysis:         out,
		TimeFrame:        timeFrame,
		TransactionCount: len(transactions),
		AnalyzedAt:       h.Now().UTC(),
	}, nil
}

func isInsightType(insightType string) bool {
	for _, t := range domain.InsightTypes {
		if t == insightType {
			return true
		}
	}
	return false
}

func (h advisorServiceHandler) GenerateInsight(ctx context.Context, insightType, userContext, source string) (*domain.Insight, error) {
	if insightType == "" {
		return nil, invalidAdvisorInput("insight type is required")
	}
	if !isInsightType(insightType) {
		return nil, invalidAdvisorInput("invalid insight type")
	}
	out, err := h.complete(ctx, "insight", insightPrompt(insightType, userContext))
	if err != nil {
		return nil, err
	}

	title, content, impact := parseInsight(out, insightType)
	if source == "" {
		source = defaultInsightSource
	}
	return &domain.Insight{
		Title:       title,
		Content:     content,
		Type:        insightType,
		Source:      source,
		ImpactLevel: impact,
		CreatedByAI: true,
		GeneratedAt: h.Now().UTC(),
	}, nil
}

func (h advisorServiceHandler) InvestmentTips(ctx context.Context, userContext string, profile map[string]any) ([]domain.InvestmentTip, error) {
	out, err := h.complete(ctx, "investment_tips", investmentTipsPrompt(userContext, profile))
	if err != nil {
		return nil, err
	}
	return parseInvestmentTips(ctx, out), nil
}

func (h advisorServiceHandler) TrendingInvestments(ctx context.Context, marketContext string, preferences map[string]any) ([]domain.TrendingInvestment, error) {
	out, err := h.complete(ctx, "trending_investments", trendingInvestmentsPrompt(marketContext, preferences))
	if err != nil {
		return nil, err
	}
	return parseTrendingInvestments(ctx, out), nil
}

func (h advisorServiceHandler) DailyTip(ctx context.Context, userContext string) (*domain.DailyTip, error) {
	out, err := h.complete(ctx, "daily_tip", dailyTipPrompt(userContext))
	if err != nil {
		return nil, err
	}
	return parseDailyTip(ctx, out), nil
}

// InvestmentForecast never fails on an LLM error. Unparseable answers and
// unreachable models both produce the deterministic fallback forecast.
func (h advisorServiceHandler) InvestmentForecast(ctx context.Context, input domain.AIForecastInput) (*domain.AIForecast, error) {
	if input.Amount <= 0 {
		return nil, invalidAdvisorInput("amount must be greater than 0")
	}
	if input.Duration <= 0 {
		return nil, invalidAdvisorInput("duration must be greater than 0")
	}
	if input.DurationType == "" {
		input.DurationType = "years"
	}
	if input.Currency == "" {
		input.Currency = "USD"
	}
	log := logger.FromContext(ctx)

	out, err := h.complete(ctx, "investment_forecast", aiForecastPrompt(input))
	if err != nil {
		log.Warnw("ai forecast unavailable, using fallback", "error", err.Error())
		return fallbackForecast(input, h.Now().UTC()), nil
	}

	forecast := &domain.AIForecast{}
	if err := decodeJsonObject(out, forecast); err != nil {
		log.Warnw("failed to parse ai forecast, using fallback", "error", err.Error())
		return fallbackForecast(input, h.Now().UTC()), nil
	}

	forecast.Metadata = domain.AIForecastMetadata{
		GeneratedAt:     h.Now().UTC(),
		InputParameters: input,
		AIModel:         h.LlmRepository.Model(),
		Confidence:      "AI-generated",
	}
	return forecast, nil
}

func fallbackForecast(input domain.AIForecastInput, generatedAt time.Time) *domain.AIForecast {
	annualReturn := fallbackAnnualReturn
	if input.ExpectedReturn != nil && *input.ExpectedReturn != 0 {
		annualReturn = *input.ExpectedReturn
	}
	years := input.Duration
	if input.DurationType == "months" {
		years = input.Duration / 12
	}
	projectedValue := input.Amount * math.Pow(1+annualReturn, years)

	return &domain.AIForecast{
		Scenarios: map[string]domain.Scenario{
			"bull": {
				ProjectedValue: projectedValue * 1.2,
				AnnualReturn:   annualReturn * 1.3,
				Confidence:     "High",
			},
			"neutral": {
				ProjectedValue: projectedValue,
				AnnualReturn:   annualReturn,
				Confidence:     "Medium",
			},
			"bear": {
				ProjectedValue: projectedValue * 0.8,
				AnnualReturn:   annualReturn * 0.7,
				Confidence:     "Low",
			},
		},
		RiskAssessment: domain.AIRiskAssessment{
			Volatility:           "Moderate",
			RiskLevel:            orDefault(input.RiskAppetite, "Medium"),
			KeyRisks:             []string{"Market volatility", "Economic downturns", "Interest rate changes"},
			MitigationStrategies: []string{"Diversification", "Regular rebalancing", "Long-term perspective"},
		},
		Recommendations: domain.AIRecommendations{
			Strategy:        fmt.Sprintf("Invest in %s with %s risk tolerance", input.InvestmentType, input.RiskAppetite),
			Diversification: "Consider spreading investments across different asset classes",
			Timeline:        fmt.Sprintf("%v %s investment horizon", input.Duration, input.DurationType),
		},
		Milestones: []domain.Milestone{
			{Year: 1, ProjectedValue: input.Amount * (1 + annualReturn), Notes: "First year milestone"},
			{Year: math.Floor(years / 2), ProjectedValue: input.Amount * math.Pow(1+annualReturn, years/2), Notes: "Mid-term milestone"},
			{Year: years, ProjectedValue: projectedValue, Notes: "Target completion"},
		},
		Factors: []string{"Market performance", "Economic conditions", "Investment strategy"},
		Summary: fmt.Sprintf(
			"Based on %v%% annual return, your %v investment could grow to approximately %.2f over %v years.",
			annualReturn*100, input.Amount, projectedValue, years,
		),
		Metadata: domain.AIForecastMetadata{
			GeneratedAt:     generatedAt,
			InputParameters: input,
			AIModel:         fallbackForecastModel,
			Confidence:      "Fallback calculation",
		},
	}
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

var errNoJsonObject = errors.New("no json object in response")

// decodeJsonObject decodes the outermost {...} span of a model answer,
// which often wraps the JSON in prose or code fences.
func decodeJsonObject(response string, out any) error {
	match := jsonObjectPattern.FindString(response)
	if match == "" {
		return errNoJsonObject
	}
	if err := json.Unmarshal([]byte(match), out); err != nil {
		return fmt.Errorf("failed to decode json object: %w", err)
	}
	return nil
}

func nonEmptyLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var (
	highImpactKeywords = []string{"urgent", "critical", "immediate", "important", "significant"}
	lowImpactKeywords  = []string{"consider", "optional", "suggestion", "might", "could"}
)

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func parseInsight(response, insightType string) (string, string, domain.ImpactLevel) {
	title := ""
	content := response

	lines := nonEmptyLines(response)
	if len(lines) > 0 {
		firstLine := strings.TrimSpace(lines[0])
		if len(firstLine) < maxInsightHeaderLength && (strings.HasSuffix(firstLine, ":") || strings.Contains(firstLine, "Title:")) {
			title = strings.Replace(firstLine, "Title:", "", 1)
			title = strings.TrimSpace(strings.Replace(title, ":", "", 1))
			content = strings.TrimSpace(strings.Join(lines[1:], "\n"))
		} else {
			prefix := []rune(firstLine)
			if len(prefix) > maxInsightTitlePrefix {
				prefix = prefix[:maxInsightTitlePrefix]
			}
			title = fmt.Sprintf("%s Insight: %s...", capitalize(insightType), string(prefix))
		}
	}
	if title == "" {
		title = fmt.Sprintf("%s Financial Insight", capitalize(insightType))
	}

	impact := domain.ImpactModerate
	lower := strings.ToLower(content)
	if containsAny(lower, highImpactKeywords) {
		impact = domain.ImpactHigh
	} else if containsAny(lower, lowImpactKeywords) {
		impact = domain.ImpactLow
	}

	return title, content, impact
}

// labelValue returns the text between the first and second colon of a
// "Label: value" line.
func labelValue(line string) string {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func hasLabel(line string, labels ...string) bool {
	for _, l := range labels {
		if strings.Contains(line, l) {
			return true
		}
	}
	return false
}

func defaultInvestmentTips() []domain.InvestmentTip {
	return []domain.InvestmentTip{{
		Title:          "Diversify Your Portfolio",
		Description:    "Consider spreading your investments across different asset classes to reduce risk.",
		Category:       "general",
		RiskLevel:      "medium",
		ActionItems:    []string{"Review current portfolio", "Add new asset classes"},
		ExpectedImpact: "long term",
	}}
}

func newInvestmentTip(title string) *domain.InvestmentTip {
	return &domain.InvestmentTip{
		Title:          orDefault(title, "Investment Tip"),
		Category:       "general",
		RiskLevel:      "medium",
		ActionItems:    []string{},
		ExpectedImpact: "long term",
	}
}

func parseInvestmentTips(ctx context.Context, response string) []domain.InvestmentTip {
	if jsonObjectPattern.MatchString(response) {
		parsed := struct {
			Tips []domain.InvestmentTip `json:"tips"`
		}{}
		if err := decodeJsonObject(response, &parsed); err != nil {
			logger.FromContext(ctx).Warnw("failed to parse investment tips", "error", err.Error())
			return defaultInvestmentTips()
		}
		if parsed.Tips == nil {
			return []domain.InvestmentTip{}
		}
		return parsed.Tips
	}

	tips := []domain.InvestmentTip{}
	var current *domain.InvestmentTip
	for _, line := range nonEmptyLines(response) {
		if hasLabel(line, "Title:", "title:") {
			if current != nil {
				tips = append(tips, *current)
			}
			current = newInvestmentTip(labelValue(line))
			continue
		}
		if current == nil {
			current = newInvestmentTip("")
		}
		switch {
		case hasLabel(line, "Description:", "description:"):
			current.Description = labelValue(line)
		case hasLabel(line, "Category:", "category:"):
			current.Category = orDefault(labelValue(line), "general")
		case hasLabel(line, "Risk:", "risk:"):
			current.RiskLevel = orDefault(labelValue(line), "medium")
		}
	}
	if current != nil {
		tips = append(tips, *current)
	}
	return tips
}

func defaultTrendingInvestments() []domain.TrendingInvestment {
	return []domain.TrendingInvestment{
		{
			Name:           "S&P 500 ETF",
			Description:    "Broad market index fund",
			Returns:        "+15.2%",
			Risk:           "low",
			Category:       "stocks",
			Symbol:         "SPY",
			TrendReason:    "Market recovery and economic growth",
			Recommendation: "buy",
		},
		{
			Name:           "Technology Stocks",
			Description:    "Growth technology companies",
			Returns:        "+22.8%",
			Risk:           "medium",
			Category:       "stocks",
			Symbol:         "QQQ",
			TrendReason:    "AI and innovation driving growth",
			Recommendation: "buy",
		},
	}
}

func newTrendingInvestment(name string) *domain.TrendingInvestment {
	return &domain.TrendingInvestment{
		Name:           orDefault(name, "Investment"),
		Returns:        "+0.0%",
		Risk:           "medium",
		Category:       "general",
		Recommendation: "watch",
	}
}

func parseTrendingInvestments(ctx context.Context, response string) []domain.TrendingInvestment {
	if jsonObjectPattern.MatchString(response) {
		parsed := struct {
			TrendingInvestments []domain.TrendingInvestment `json:"trendingInvestments"`
		}{}
		if err := decodeJsonObject(response, &parsed); err != nil {
			logger.FromContext(ctx).Warnw("failed to parse trending investments", "error", err.Error())
			return defaultTrendingInvestments()
		}
		if parsed.TrendingInvestments == nil {
			return []domain.TrendingInvestment{}
		}
		return parsed.TrendingInvestments
	}

	investments := []domain.TrendingInvestment{}
	var current *domain.TrendingInvestment
	for _, line := range nonEmptyLines(response) {
		if hasLabel(line, "Name:", "name:") {
			if current != nil {
				investments = append(investments, *current)
			}
			current = newTrendingInvestment(labelValue(line))
			continue
		}
		if current == nil {
			current = newTrendingInvestment("")
		}
		switch {
		case hasLabel(line, "Description:", "description:"):
			current.Description = labelValue(line)
		case hasLabel(line, "Returns:", "returns:"):
			current.Returns = orDefault(labelValue(line), "+0.0%")
		case hasLabel(line, "Risk:", "risk:"):
			current.Risk = orDefault(labelValue(line), "medium")
		case hasLabel(line, "Category:", "category:"):
			current.Category = orDefault(labelValue(line), "general")
		case hasLabel(line, "Symbol:", "symbol:"):
			current.Symbol = labelValue(line)
		}
	}
	if current != nil {
		investments = append(investments, *current)
	}
	return investments
}

func defaultDailyTip() *domain.DailyTip {
	return &domain.DailyTip{
		Title:       "Start Investing Early",
		Content:     "The earlier you start investing, the more time your money has to grow through compound interest.",
		Category:    "general",
		Difficulty:  "beginner",
		TimeHorizon: "long term",
	}
}

func parseDailyTip(ctx context.Context, response string) *domain.DailyTip {
	if jsonObjectPattern.MatchString(response) {
		parsed := struct {
			Tip *domain.DailyTip `json:"tip"`
		}{}
		if err := decodeJsonObject(response, &parsed); err != nil {
			logger.FromContext(ctx).Warnw("failed to parse daily tip", "error", err.Error())
			return defaultDailyTip()
		}
		if parsed.Tip == nil {
			return &domain.DailyTip{}
		}
		return parsed.Tip
	}

	tip := &domain.DailyTip{
		Title:       "Daily Investment Tip",
		Content:     response,
		Category:    "general",
		Difficulty:  "beginner",
		TimeHorizon: "medium term",
	}
	for _, line := range nonEmptyLines(response) {
		switch {
		case hasLabel(line, "Title:", "title:"):
			tip.Title = orDefault(labelValue(line), "Daily Investment Tip")
		case hasLabel(line, "Content:", "content:"):
			tip.Content = orDefault(labelValue(line), response)
		case hasLabel(line, "Category:", "category:"):
			tip.Category = orDefault(labelValue(line), "general")
		case hasLabel(line, "Difficulty:", "difficulty:"):
			tip.Difficulty = orDefault(labelValue(line), "beginner")
		case hasLabel(line, "Time Horizon:", "time_horizon:"):
			tip.TimeHorizon = orDefault(labelValue(line), "medium term")
		}
	}
	return tip
}
