package api

import (
	"fmt"
	"net/http"

	"mintmate/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) generateAIForecast(c *gin.Context) {
	var requestBody domain.AIForecastInput
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	forecast, err := m.AdvisorService.InvestmentForecast(c.Request.Context(), requestBody)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnSuccessJson(c, forecast)
}
