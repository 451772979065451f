package health

import (
	"net/http"
	"runtime"
	"time"

	"cleanup-estimator/internal/core/analysis"
	"cleanup-estimator/internal/core/cache"
	"cleanup-estimator/internal/core/vision"
	"cleanup-estimator/internal/infrastructure/config"
	"cleanup-estimator/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     *cache.Stats           `json:"cache,omitempty"`
	Queue     *vision.QueueStatus    `json:"queue,omitempty"`
	Vision    bool                   `json:"visionAvailable"`
}

// HealthCheck 健康檢查處理器
func HealthCheck(c *gin.Context) {
	cfg, ok := c.MustGet("config").(*config.Config)
	if !ok {
		common.LogError("Invalid configuration type in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Invalid configuration type",
		})
		return
	}

	// 獲取運行時信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   cfg.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	if svc, ok := c.Get("analysis_service"); ok {
		if s, ok := svc.(*analysis.Service); ok && s != nil {
			stats := s.CacheStats(c.Request.Context())
			response.Cache = &stats
		}
	}
	if q, ok := c.Get("photo_queue"); ok {
		if queue, ok := q.(*vision.Queue); ok && queue != nil {
			status := queue.Status()
			response.Queue = &status
			response.Vision = queue.Available()
		}
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器：快取與回饋儲存皆可連線
func ReadinessCheck(c *gin.Context) {
	svc, ok := c.MustGet("analysis_service").(*analysis.Service)
	if !ok || svc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}

	checks := gin.H{}
	ready := true
	for name, err := range svc.Ready(c.Request.Context()) {
		if err != nil {
			ready = false
			checks[name] = err.Error()
			common.LogWarn("Readiness check failed", zap.String("component", name), zap.Error(err))
			continue
		}
		checks[name] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "checks": checks})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "checks": checks})
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
