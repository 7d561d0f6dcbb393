package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"mintmate/internal/domain"
)

var insightPrompts = map[string]string{
	"spending":   "Analyze the user's spending patterns and provide actionable advice for better financial management. Context: %s. Provide a concise title and detailed content with specific recommendations.",
	"budget":     "Create personalized budget optimization advice based on the user's financial situation. Context: %s. Include practical tips for budget allocation and spending control.",
	"investment": "Provide investment recommendations and portfolio optimization advice. Context: %s. Consider risk tolerance and financial goals in your recommendations.",
	"goal":       "Help the user achieve their financial goals with strategic planning advice. Context: %s. Provide step-by-step guidance and milestone tracking suggestions.",
	"reminder":   "Create smart financial reminders and alerts based on the user's patterns. Context: %s. Suggest proactive measures for better financial health.",
	"security":   "Provide financial security and fraud prevention advice. Context: %s. Include best practices for protecting financial information and accounts.",
	"general":    "Offer general financial wellness and money management advice. Context: %s. Focus on building healthy financial habits and long-term wealth.",
}

func insightPrompt(insightType, context string) string {
	tmpl, ok := insightPrompts[insightType]
	if !ok {
		tmpl = insightPrompts["general"]
	}
	return fmt.Sprintf(tmpl, context)
}

func profileJson(profile map[string]any) string {
	if profile == nil {
		profile = map[string]any{}
	}
	bytes, err := json.Marshal(profile)
	if err != nil {
		return "{}"
	}
	return string(bytes)
}

func advicePrompt(category, context string, profile map[string]any) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("As a financial advisor, provide personalized advice for %s. ", category))
	if context != "" {
		sb.WriteString(fmt.Sprintf("User context: %s. ", context))
	}
	sb.WriteString(fmt.Sprintf("User profile: %s. ", profileJson(profile)))
	sb.WriteString("Provide practical, actionable advice that is easy to understand and implement. Keep the response focused and relevant to the user's situation.")
	return sb.String()
}

func spendingAnalysisPrompt(transactions []domain.Transaction, timeFrame string) string {
	summary := make([]string, 0, len(transactions))
	for _, t := range transactions {
		summary = append(summary, fmt.Sprintf("%s: $%v on %s", t.Category, t.Amount, t.Date))
	}
	return fmt.Sprintf(`Analyze the following spending transactions for %s period: %s.
Provide insights on spending patterns, identify areas for improvement, and suggest specific actions to optimize spending.
Focus on practical recommendations that can help reduce unnecessary expenses and improve financial health.`, timeFrame, strings.Join(summary, ", "))
}

const investmentTipsFormat = `
Please provide tips in the following JSON format:
{
  "tips": [
    {
      "title": "Tip Title",
      "description": "Detailed explanation of the tip",
      "category": "investment_type",
      "risk_level": "low/medium/high",
      "action_items": ["action1", "action2"],
      "expected_impact": "short/long term benefit"
    }
  ]
}

Focus on practical, actionable advice that considers current market conditions, risk management, and diversification strategies.`

func investmentTipsPrompt(context string, profile map[string]any) string {
	sb := strings.Builder{}
	sb.WriteString("As a financial advisor, provide 3-5 actionable investment tips that are relevant for today's market conditions. ")
	if context != "" {
		sb.WriteString(fmt.Sprintf("User context: %s. ", context))
	}
	sb.WriteString(fmt.Sprintf("User profile: %s. ", profileJson(profile)))
	sb.WriteString(investmentTipsFormat)
	return sb.String()
}

const trendingInvestmentsFormat = `
Please provide trending investments in the following JSON format:
{
  "trendingInvestments": [
    {
      "name": "Investment Name",
      "description": "Brief description",
      "returns": "expected_return_percentage",
      "risk": "low/medium/high",
      "category": "asset_class",
      "symbol": "ticker_symbol",
      "trend_reason": "why it's trending",
      "recommendation": "buy/hold/watch"
    }
  ]
}

Include a mix of stocks, ETFs, bonds, and alternative investments. Consider current market sentiment, sector performance, and economic indicators.`

func trendingInvestmentsPrompt(marketContext string, preferences map[string]any) string {
	sb := strings.Builder{}
	sb.WriteString("Analyze current market trends and provide 4-6 trending investment opportunities across different asset classes. ")
	if marketContext != "" {
		sb.WriteString(fmt.Sprintf("Market context: %s. ", marketContext))
	}
	sb.WriteString(fmt.Sprintf("User preferences: %s. ", profileJson(preferences)))
	sb.WriteString(trendingInvestmentsFormat)
	return sb.String()
}

const dailyTipFormat = `
Please provide the tip in the following JSON format:
{
  "tip": {
    "title": "Tip Title",
    "content": "Detailed explanation of the tip",
    "category": "investment_category",
    "difficulty": "beginner/intermediate/advanced",
    "time_horizon": "short/medium/long term"
  }
}

Make it practical, educational, and relevant to current market conditions. Keep it concise but informative.`

func dailyTipPrompt(userContext string) string {
	sb := strings.Builder{}
	sb.WriteString("Provide one concise, actionable investment tip for today. ")
	if userContext != "" {
		sb.WriteString(fmt.Sprintf("User context: %s. ", userContext))
	}
	sb.WriteString(dailyTipFormat)
	return sb.String()
}

const aiForecastFormat = `
Format the response as a structured JSON object with the following structure:
{
  "scenarios": {
    "bull": { "projectedValue": number, "annualReturn": number, "confidence": string },
    "neutral": { "projectedValue": number, "annualReturn": number, "confidence": string },
    "bear": { "projectedValue": number, "annualReturn": number, "confidence": string }
  },
  "riskAssessment": {
    "volatility": string,
    "riskLevel": string,
    "keyRisks": [string],
    "mitigationStrategies": [string]
  },
  "recommendations": {
    "strategy": string,
    "diversification": string,
    "timeline": string
  },
  "milestones": [
    { "year": number, "projectedValue": number, "notes": string }
  ],
  "factors": [string],
  "summary": string
}`

func aiForecastPrompt(input domain.AIForecastInput) string {
	expected := "Not specified"
	if input.ExpectedReturn != nil && *input.ExpectedReturn != 0 {
		expected = fmt.Sprintf("%.2f%%", *input.ExpectedReturn*100)
	}
	return fmt.Sprintf(`You are an expert financial advisor and investment analyst. Always respond with valid JSON.

Analyze the following investment scenario and provide a detailed forecast:

Investment Details:
- Amount: %v %s
- Duration: %v %s
- Investment Type: %s
- Risk Appetite: %s
- Expected Return: %s

User Profile: %s

Please provide a comprehensive investment forecast including:
1. Projected returns under different market scenarios (bull, bear, neutral)
2. Risk assessment and volatility estimates
3. Recommended investment strategy
4. Key factors that could impact performance
5. Timeline milestones and expected portfolio value at different points
6. Risk mitigation strategies
%s`,
		input.Amount, input.Currency,
		input.Duration, input.DurationType,
		input.InvestmentType,
		input.RiskAppetite,
		expected,
		profileJson(input.UserProfile),
		aiForecastFormat,
	)
}
