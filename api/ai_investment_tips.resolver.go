package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type getInvestmentTipsRequest struct {
	Context     string         `json:"context"`
	UserProfile map[string]any `json:"userProfile"`
}

func (m ApiHandler) getInvestmentTips(c *gin.Context) {
	var requestBody getInvestmentTipsRequest
	if err := bindOptionalJson(c, &requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	tips, err := m.AdvisorService.InvestmentTips(c.Request.Context(), requestBody.Context, requestBody.UserProfile)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnSuccessJson(c, gin.H{
		"tips":        tips,
		"generatedAt": time.Now().UTC(),
		"source":      "Groq AI",
	})
}

type getTrendingInvestmentsRequest struct {
	MarketContext   string         `json:"marketContext"`
	UserPreferences map[string]any `json:"userPreferences"`
}

func (m ApiHandler) getTrendingInvestments(c *gin.Context) {
	var requestBody getTrendingInvestmentsRequest
	if err := bindOptionalJson(c, &requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	investments, err := m.AdvisorService.TrendingInvestments(c.Request.Context(), requestBody.MarketContext, requestBody.UserPreferences)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnSuccessJson(c, gin.H{
		"trendingInvestments": investments,
		"generatedAt":         time.Now().UTC(),
		"source":              "Groq AI Market Analysis",
	})
}

type getDailyTipRequest struct {
	UserContext string `json:"userContext"`
}

func (m ApiHandler) getDailyTip(c *gin.Context) {
	var requestBody getDailyTipRequest
	if err := bindOptionalJson(c, &requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	tip, err := m.AdvisorService.DailyTip(c.Request.Context(), requestBody.UserContext)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnSuccessJson(c, gin.H{
		"tip":         tip,
		"generatedAt": time.Now().UTC(),
		"source":      "Groq AI Daily Tip",
	})
}
