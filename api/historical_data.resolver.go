package api

import (
	"fmt"
	"net/http"

	"mintmate/internal/domain"

	"github.com/gin-gonic/gin"
)

type getHistoricalDataRequest struct {
	Symbol   string `json:"symbol"`
	Type     string `json:"type"`
	Interval string `json:"interval"`
	Duration *int   `json:"duration"`
	Strict   bool   `json:"strict"`
}

type getHistoricalDataResponse struct {
	Symbol            string              `json:"symbol"`
	Prices            []float64           `json:"prices"`
	Dates             []string            `json:"dates"`
	Metrics           any                 `json:"metrics"`
	Source            string              `json:"source"`
	Note              string              `json:"note,omitempty"`
	RequestedDuration int                 `json:"requestedDuration"`
	ActualDataPoints  int                 `json:"actualDataPoints"`
	Data              []domain.PricePoint `json:"data"`
}

func newHistoricalDataResponse(series *domain.HistoricalSeries) getHistoricalDataResponse {
	var metrics any = gin.H{}
	if series.Metrics != nil {
		metrics = series.Metrics
	}
	return getHistoricalDataResponse{
		Symbol:            series.Symbol,
		Prices:            series.Closes(),
		Dates:             series.Dates(),
		Metrics:           metrics,
		Source:            series.Source,
		Note:              series.Note,
		RequestedDuration: series.RequestedDuration,
		ActualDataPoints:  series.ActualDataPoints,
		Data:              series.Data,
	}
}

func (m ApiHandler) getHistoricalData(c *gin.Context) {
	var requestBody getHistoricalDataRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	duration := domain.DefaultDuration
	if requestBody.Duration != nil {
		duration = *requestBody.Duration
	}

	series, err := m.HistoricalDataService.GetHistoricalData(c.Request.Context(), domain.HistoricalQuery{
		Symbol:   requestBody.Symbol,
		Type:     requestBody.Type,
		Interval: requestBody.Interval,
		Duration: duration,
		Strict:   requestBody.Strict,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.Set(dataSourceKey, series.Source)

	returnSuccessJson(c, newHistoricalDataResponse(series))
}
