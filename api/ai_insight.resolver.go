package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type generateInsightRequest struct {
	Type    string `json:"type"`
	Context string `json:"context"`
	Source  string `json:"source"`
}

func (m ApiHandler) generateInsight(c *gin.Context) {
	var requestBody generateInsightRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	insight, err := m.AdvisorService.GenerateInsight(c.Request.Context(), requestBody.Type, requestBody.Context, requestBody.Source)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"data":    insight,
		"message": "AI insight generated successfully",
	})
}
