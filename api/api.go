package api

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"mintmate/internal/db/models/postgres/public/model"
	"mintmate/internal/domain"
	"mintmate/internal/logger"
	"mintmate/internal/metrics"
	"mintmate/internal/repository"
	"mintmate/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const dataSourceKey = "dataSource"

type ApiHandler struct {
	Db                    *sql.DB
	HistoricalDataService service.HistoricalDataService
	SymbolSearchService   service.SymbolSearchService
	ForecastService       service.ForecastService
	AdvisorService        service.AdvisorService
	ApiRequestRepository  repository.ApiRequestRepository
	AllowedOrigins        []string
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(m.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = m.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsConfig))
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"message": "welcome to mintmate"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	investment := router.Group("/api/investment")
	investment.POST("/historical-data", m.getHistoricalData)
	investment.GET("/search-symbols", m.searchSymbols)
	investment.POST("/forecast", m.generateForecast)

	ai := router.Group("/api/ai")
	ai.POST("/response", m.getAIResponse)
	ai.POST("/advice", m.generateFinancialAdvice)
	ai.POST("/analyze-spending", m.analyzeSpending)
	ai.POST("/insights", m.generateInsight)
	ai.POST("/insight", m.generateInsight)
	ai.POST("/recommendations", m.generateInsight)
	ai.POST("/investment-tips", m.getInvestmentTips)
	ai.POST("/trending-investments", m.getTrendingInvestments)
	ai.POST("/daily-tip", m.getDailyTip)
	ai.POST("/investment-forecast", m.generateAIForecast)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	logger.FromContext(context.Background()).Infow("starting api", "port", port)
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatusCode(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Errorw("request failed", "status", code, "error", err.Error())
	} else {
		log.Infow("request rejected", "status", code, "error", err.Error())
	}
	c.AbortWithStatusJSON(code, gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}

func errorStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingSymbol),
		errors.Is(err, domain.ErrNoStockProvider),
		errors.Is(err, domain.ErrInvalidForecastInput),
		errors.Is(err, domain.ErrInvalidAdvisorInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrLlmNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, repository.ErrLlmRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func returnSuccessJson(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   data,
	})
}

// bindOptionalJson leaves out untouched when the request has no body.
func bindOptionalJson(c *gin.Context, out any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBindJSON(out)
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// logRequestMiddlware attaches a request scoped logger, records the request
// in api_request and counts it by route and status.
func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	requestID := uuid.New()
	log := logger.FromContext(context.Background()).With("requestId", requestID.String())
	ctx.Request = ctx.Request.WithContext(logger.WithLogger(ctx.Request.Context(), log))

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Warnw("failed to read request body", "error", err.Error())
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		RequestID:   requestID,
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Warnw("failed to record api request", "error", err.Error())
	}

	ctx.Next()

	status := ctx.Writer.Status()
	route := ctx.FullPath()
	if route == "" {
		route = "unmatched"
	}
	metrics.HttpRequests.WithLabelValues(route, ctx.Request.Method, strconv.Itoa(status)).Inc()
	log.Infow("handled request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", status,
		"durationMs", time.Since(start).Milliseconds(),
	)

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(status))
		req.ResponseBody = strPtr(w.body.String())
		if source := ctx.GetString(dataSourceKey); source != "" {
			req.DataSource = strPtr(source)
		}

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Warnw("failed to update api request", "error", err.Error())
		}
	}
}
