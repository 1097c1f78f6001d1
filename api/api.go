package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"stockdash/internal/app"
	"stockdash/internal/domain"
	"stockdash/internal/logger"
	"stockdash/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	DashboardApp app.DashboardApp
	Metrics      *metrics.Recorder
	Logger       *zap.SugaredLogger
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to " + domain.DashboardTitle})
	})
	router.GET("/symbols", m.symbols)
	router.POST("/dashboard", m.dashboard)
	router.POST("/series", m.series)
	router.POST("/resample", m.resample)
	router.GET("/correlation", m.correlation)
	if m.Metrics != nil {
		router.GET("/metrics", gin.WrapH(m.Metrics.Handler()))
	}

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func errorStatus(err error) int {
	var (
		notFound  *domain.SymbolNotFoundError
		frequency *domain.InvalidFrequencyError
		mismatch  *domain.DimensionMismatchError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &frequency):
		return http.StatusBadRequest
	case errors.As(err, &mismatch):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatus(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Warnw("request failed", "error", err, "status", code)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	lg := m.Logger
	if lg == nil {
		lg = logger.New()
	}
	requestID := uuid.New()
	lg = lg.With("requestID", requestID)
	c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), lg))
	c.Header("X-Request-ID", requestID.String())

	start := time.Now().UTC()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	duration := time.Since(start)
	lg.Infow(
		"handled request",
		"method", c.Request.Method,
		"route", route,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"ip", c.ClientIP(),
		"durationMs", duration.Milliseconds(),
	)
	if m.Metrics != nil {
		m.Metrics.RecordLatency("http "+route, duration.Seconds())
	}
}
