package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type getAIResponseRequest struct {
	Prompt string `json:"prompt"`
}

func (m ApiHandler) getAIResponse(c *gin.Context) {
	var requestBody getAIResponseRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("prompt is required and must be a string: %w", err), c, http.StatusBadRequest)
		return
	}

	response, err := m.AdvisorService.Respond(c.Request.Context(), requestBody.Prompt)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnSuccessJson(c, response)
}
