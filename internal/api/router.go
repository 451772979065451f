package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cleanup-estimator/internal/api/handlers/estimate"
	"cleanup-estimator/internal/api/handlers/health"
	"cleanup-estimator/internal/api/middleware"
	"cleanup-estimator/internal/core/analysis"
	"cleanup-estimator/internal/core/vision"
	"cleanup-estimator/internal/infrastructure/config"
	"cleanup-estimator/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, svc *analysis.Service, queue *vision.Queue) (*gin.Engine, error) {
	if svc == nil {
		return nil, fmt.Errorf("analysis service is required")
	}

	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	timeout := cfg.Server.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))

	// 全局中間件：設置超時和服務
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("analysis_service", svc)
		c.Set("photo_queue", queue)

		c.Next()

		// 處理程序未回應且已超時
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
				zap.Duration("timeout", timeout),
			)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, common.ErrorResponse{
				Success: false,
				Code:    common.ErrCodeGatewayTimeout,
				Error:   "request timeout after " + timeout.String(),
			})
		}
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.ErrorResponse{
			Success: false,
			Code:    common.ErrCodeNotFound,
			Error:   common.ErrNotFound.Message,
		})
	})

	// 健康檢查路由
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Recipe Cleanup Time Estimator API",
			"version": cfg.App.Version,
			"status":  "running",
		})
	})
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	handler := estimate.NewHandler(svc, cfg.App.Debug)

	// API 路由組
	api := router.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	{
		dedup := middleware.Deduplication(cfg.DedupWindow)

		api.POST("/analyze-recipe", dedup, handler.AnalyzeRecipe)
		api.POST("/analyze-recipe/debug", handler.DebugRecipe)
		api.POST("/analyze-text", handler.AnalyzeText)
		api.POST("/analyze-photo", handler.AnalyzePhoto)

		api.POST("/feedback", dedup, handler.SubmitFeedback)
		api.GET("/feedback", handler.ListFeedback)

		api.GET("/equipment", handler.ListEquipment)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Bool("vision_available", queue.Available()),
		zap.Duration("timeout", timeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router, nil
}
