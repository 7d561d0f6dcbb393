package api

import (
	"fmt"
	"net/http"

	"mintmate/internal/domain"

	"github.com/gin-gonic/gin"
)

type generateForecastRequest struct {
	InvestmentAmount float64 `json:"investmentAmount"`
	Duration         int     `json:"duration"`
	RiskAppetite     string  `json:"riskAppetite"`
	InvestmentType   string  `json:"investmentType"`
	ExpectedReturn   float64 `json:"expectedReturn"`
	Currency         string  `json:"currency"`
}

func (m ApiHandler) generateForecast(c *gin.Context) {
	var requestBody generateForecastRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	forecast, err := m.ForecastService.Generate(domain.ForecastInput{
		InvestmentAmount: requestBody.InvestmentAmount,
		Duration:         requestBody.Duration,
		RiskAppetite:     domain.RiskAppetite(requestBody.RiskAppetite),
		InvestmentType:   requestBody.InvestmentType,
		ExpectedReturn:   requestBody.ExpectedReturn,
		Currency:         requestBody.Currency,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnSuccessJson(c, forecast)
}
