package api

import (
	"fmt"
	"net/http"

	"mintmate/internal/domain"

	"github.com/gin-gonic/gin"
)

type generateFinancialAdviceRequest struct {
	Category    string         `json:"category"`
	Context     string         `json:"context"`
	UserProfile map[string]any `json:"userProfile"`
}

func (m ApiHandler) generateFinancialAdvice(c *gin.Context) {
	var requestBody generateFinancialAdviceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	advice, err := m.AdvisorService.Advice(c.Request.Context(), requestBody.Category, requestBody.Context, requestBody.UserProfile)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnSuccessJson(c, advice)
}

type analyzeSpendingRequest struct {
	Transactions []domain.Transaction `json:"transactions"`
	TimeFrame    string               `json:"timeFrame"`
}

func (m ApiHandler) analyzeSpending(c *gin.Context) {
	var requestBody analyzeSpendingRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	analysis, err := m.AdvisorService.AnalyzeSpending(c.Request.Context(), requestBody.Transactions, requestBody.TimeFrame)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnSuccessJson(c, analysis)
}
