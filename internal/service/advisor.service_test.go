package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mintmate/internal/domain"
	"mintmate/internal/repository"
	mock_repository "mintmate/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_advisorServiceHandler(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("unconfigured llm", func(t *testing.T) {
		svc := NewAdvisorService(nil, clock)

		_, err := svc.Respond(ctx, "hello")
		require.ErrorIs(t, err, domain.ErrLlmNotConfigured)
		_, err = svc.DailyTip(ctx, "")
		require.ErrorIs(t, err, domain.ErrLlmNotConfigured)
	})

	t.Run("advice builds the prompt and echoes the category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_repository.NewMockLlmRepository(ctrl)
		llm.EXPECT().CompleteWithRetry(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			require.True(t, strings.HasPrefix(prompt, "As a financial advisor, provide personalized advice for retirement. User context: age 30. "))
			require.Contains(t, prompt, `User profile: {"income":5000}. `)
			return "Save more.", nil
		})

		advice, err := NewAdvisorService(llm, clock).Advice(ctx, "retirement", "age 30", map[string]any{"income": 5000})
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(&domain.Advice{
			Advice:      "Save more.",
			Category:    "retirement",
			GeneratedAt: now,
		}, advice))
	})

	t.Run("advice requires a category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := NewAdvisorService(mock_repository.NewMockLlmRepository(ctrl), clock).Advice(ctx, " ", "", nil)
		require.ErrorIs(t, err, domain.ErrInvalidAdvisorInput)
	})

	t.Run("spending analysis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_repository.NewMockLlmRepository(ctrl)
		llm.EXPECT().CompleteWithRetry(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			require.Contains(t, prompt, "for monthly period: food: $12.5 on 2024-05-01, rent: $900 on 2024-05-02.")
			return "Cut takeout.", nil
		})

		analysis, err := NewAdvisorService(llm, clock).AnalyzeSpending(ctx, []domain.Transaction{
			{Category: "food", Amount: 12.5, Date: "2024-05-01"},
			{Category: "rent", Amount: 900, Date: "2024-05-02"},
		}, "")
		require.NoError(t, err)
		require.Equal(t, "monthly", analysis.TimeFrame)
		require.Equal(t, 2, analysis.TransactionCount)

		_, err = NewAdvisorService(llm, clock).AnalyzeSpending(ctx, nil, "weekly")
		require.ErrorIs(t, err, domain.ErrInvalidAdvisorInput)
	})

	t.Run("insight parses title and impact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_repository.NewMockLlmRepository(ctrl)
		llm.EXPECT().CompleteWithRetry(gomock.Any(), gomock.Any()).Return("Title: Trim Subscriptions\n\nIt is important to cancel unused plans.", nil)

		insight, err := NewAdvisorService(llm, clock).GenerateInsight(ctx, "spending", "", "")
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(&domain.Insight{
			Title:       "Trim Subscriptions",
			Content:     "It is important to cancel unused plans.",
			Type:        "spending",
			Source:      "Groq LLM",
			ImpactLevel: domain.ImpactHigh,
			CreatedByAI: true,
			GeneratedAt: now,
		}, insight))
	})

	t.Run("insight rejects unknown types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := NewAdvisorService(mock_repository.NewMockLlmRepository(ctrl), clock).GenerateInsight(ctx, "lottery", "", "")
		require.ErrorIs(t, err, domain.ErrInvalidAdvisorInput)
	})

	t.Run("llm errors are wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_repository.NewMockLlmRepository(ctrl)
		llm.EXPECT().CompleteWithRetry(gomock.Any(), gomock.Any()).Return("", repository.ErrLlmRateLimited)

		_, err := NewAdvisorService(llm, clock).InvestmentTips(ctx, "", nil)
		require.ErrorIs(t, err, repository.ErrLlmRateLimited)
	})

	t.Run("investment forecast uses the model answer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_repository.NewMockLlmRepository(ctrl)
		llm.EXPECT().CompleteWithRetry(gomock.Any(), gomock.Any()).Return("Here you go:\n```json\n"+
			`{"scenarios":{"neutral":{"projectedValue":1210,"annualReturn":0.1,"confidence":"Medium"}},"factors":["rates"],"summary":"ok"}`+
			"\n```", nil)
		llm.EXPECT().Model().Return("llama")

		forecast, err := NewAdvisorService(llm, clock).InvestmentForecast(ctx, domain.AIForecastInput{Amount: 1000, Duration: 2})
		require.NoError(t, err)
		require.Equal(t, 1210.0, forecast.Scenarios["neutral"].ProjectedValue)
		require.Equal(t, "llama", forecast.Metadata.AIModel)
		require.Equal(t, "AI-generated", forecast.Metadata.Confidence)
		require.Equal(t, "years", forecast.Metadata.InputParameters.DurationType)
	})

	t.Run("investment forecast falls back on llm failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_repository.NewMockLlmRepository(ctrl)
		llm.EXPECT().CompleteWithRetry(gomock.Any(), gomock.Any()).Return("", errors.New("boom"))

		forecast, err := NewAdvisorService(llm, clock).InvestmentForecast(ctx, domain.AIForecastInput{Amount: 1000, Duration: 2})
		require.NoError(t, err)
		require.Equal(t, "fallback", forecast.Metadata.AIModel)
		require.Equal(t, now, forecast.Metadata.GeneratedAt)
	})

	t.Run("investment forecast falls back without a key", func(t *testing.T) {
		forecast, err := NewAdvisorService(nil, clock).InvestmentForecast(ctx, domain.AIForecastInput{Amount: 1000, Duration: 24, DurationType: "months"})
		require.NoError(t, err)
		require.Equal(t, "fallback", forecast.Metadata.AIModel)
		require.InDelta(t, 1144.9, forecast.Scenarios["neutral"].ProjectedValue, 1e-9)
	})

	t.Run("investment forecast validates amount", func(t *testing.T) {
		_, err := NewAdvisorService(nil, clock).InvestmentForecast(ctx, domain.AIForecastInput{Amount: 0, Duration: 1})
		require.ErrorIs(t, err, domain.ErrInvalidAdvisorInput)
	})
}

func Test_fallbackForecast(t *testing.T) {
	expected := 0.1
	forecast := fallbackForecast(domain.AIForecastInput{
		Amount:         1000,
		Duration:       2,
		DurationType:   "years",
		InvestmentType: "stocks",
		RiskAppetite:   "high",
		ExpectedReturn: &expected,
	}, time.Time{})

	require.InDelta(t, 1210.0, forecast.Scenarios["neutral"].ProjectedValue, 1e-9)
	require.InDelta(t, 1452.0, forecast.Scenarios["bull"].ProjectedValue, 1e-9)
	require.InDelta(t, 0.13, forecast.Scenarios["bull"].AnnualReturn, 1e-9)
	require.InDelta(t, 968.0, forecast.Scenarios["bear"].ProjectedValue, 1e-9)
	require.InDelta(t, 0.07, forecast.Scenarios["bear"].AnnualReturn, 1e-9)

	require.Len(t, forecast.Milestones, 3)
	require.Equal(t, 1.0, forecast.Milestones[1].Year)
	require.InDelta(t, 1100.0, forecast.Milestones[1].ProjectedValue, 1e-9)
	require.Equal(t, 2.0, forecast.Milestones[2].Year)

	require.Equal(t, "high", forecast.RiskAssessment.RiskLevel)
	require.Equal(t, "Invest in stocks with high risk tolerance", forecast.Recommendations.Strategy)
	require.Equal(t, "2 years investment horizon", forecast.Recommendations.Timeline)
	require.Equal(t, "Fallback calculation", forecast.Metadata.Confidence)
}

func Test_parseInsight(t *testing.T) {
	tests := []struct {
		name     string
		response string
		title    string
		content  string
		impact   domain.ImpactLevel
	}{
		{
			name:     "header line ending in colon",
			response: "Budget Tips:\nYou could set aside 10% each month.",
			title:    "Budget Tips",
			content:  "You could set aside 10% each month.",
			impact:   domain.ImpactLow,
		},
		{
			name:     "no header",
			response: "Keep an emergency fund of three to six months of expenses at all times.",
			title:    "Goal Insight: Keep an emergency fund of three to six months of e...",
			content:  "Keep an emergency fund of three to six months of expenses at all times.",
			impact:   domain.ImpactModerate,
		},
		{
			name:     "empty title falls back",
			response: "Title:\nReview your statements.",
			title:    "Goal Financial Insight",
			content:  "Review your statements.",
			impact:   domain.ImpactModerate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, content, impact := parseInsight(tt.response, "goal")
			require.Equal(t, tt.title, title)
			require.Equal(t, tt.content, content)
			require.Equal(t, tt.impact, impact)
		})
	}
}

func Test_parseInvestmentTips(t *testing.T) {
	ctx := context.Background()

	t.Run("json", func(t *testing.T) {
		tips := parseInvestmentTips(ctx, `Sure! {"tips":[{"title":"Index funds","description":"Low fees","category":"etf","risk_level":"low","action_items":["open account"],"expected_impact":"long term"}]}`)
		require.Equal(t, "", cmp.Diff([]domain.InvestmentTip{{
			Title:          "Index funds",
			Description:    "Low fees",
			Category:       "etf",
			RiskLevel:      "low",
			ActionItems:    []string{"open account"},
			ExpectedImpact: "long term",
		}}, tips))
	})

	t.Run("broken json returns the default tip", func(t *testing.T) {
		tips := parseInvestmentTips(ctx, `{"tips": [ oops }`)
		require.Len(t, tips, 1)
		require.Equal(t, "Diversify Your Portfolio", tips[0].Title)
	})

	t.Run("labelled lines", func(t *testing.T) {
		tips := parseInvestmentTips(ctx, "Title: Rebalance\nDescription: Yearly\nRisk: low\n\nTitle: Bonds\nCategory: fixed income")
		require.Equal(t, "", cmp.Diff([]domain.InvestmentTip{
			{Title: "Rebalance", Description: "Yearly", Category: "general", RiskLevel: "low", ActionItems: []string{}, ExpectedImpact: "long term"},
			{Title: "Bonds", Category: "fixed income", RiskLevel: "medium", ActionItems: []string{}, ExpectedImpact: "long term"},
		}, tips))
	})
}

func Test_parseTrendingInvestments(t *testing.T) {
	ctx := context.Background()

	require.Len(t, parseTrendingInvestments(ctx, "{not json}"), 2)

	investments := parseTrendingInvestments(ctx, "Name: Gold\nSymbol: GLD\nReturns: +4%")
	require.Equal(t, "", cmp.Diff([]domain.TrendingInvestment{{
		Name:           "Gold",
		Returns:        "+4%",
		Risk:           "medium",
		Category:       "general",
		Symbol:         "GLD",
		Recommendation: "watch",
	}}, investments))
}

func Test_parseDailyTip(t *testing.T) {
	ctx := context.Background()

	tip := parseDailyTip(ctx, `{"tip":{"title":"Automate","content":"Set up transfers","category":"saving","difficulty":"beginner","time_horizon":"long term"}}`)
	require.Equal(t, "Automate", tip.Title)
	require.Equal(t, "long term", tip.TimeHorizon)

	tip = parseDailyTip(ctx, "Title: Rebalance\nDifficulty: intermediate")
	require.Equal(t, "", cmp.Diff(&domain.DailyTip{
		Title:       "Rebalance",
		Content:     "Title: Rebalance\nDifficulty: intermediate",
		Category:    "general",
		Difficulty:  "intermediate",
		TimeHorizon: "medium term",
	}, tip))

	require.Equal(t, "Start Investing Early", parseDailyTip(ctx, "{broken}").Title)
}
