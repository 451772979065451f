package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cleanup-estimator/internal/api"
	"cleanup-estimator/internal/api/router"
	"cleanup-estimator/internal/core/analysis"
	"cleanup-estimator/internal/core/cache"
	"cleanup-estimator/internal/core/feedback"
	"cleanup-estimator/internal/core/scraper"
	"cleanup-estimator/internal/core/vision"
	"cleanup-estimator/internal/infrastructure/config"
	"cleanup-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	// 載入設定（含 .env）
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("vision_provider", cfg.Vision.Provider),
		zap.String("vision_model", cfg.Vision.Model),
		zap.String("vision_api_key", config.MaskAPIKey(cfg.Vision.APIKey())),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// 初始化快取
	store, err := cache.NewStore(cfg)
	if err != nil {
		common.LogFatal("Failed to initialize cache", zap.Error(err))
	}
	defer store.Close()

	// 初始化回饋儲存
	var feedbackStore feedback.Store
	if cfg.Feedback.Enabled {
		sqlite, err := feedback.NewSQLiteStore(context.Background(), cfg.Feedback.Path)
		if err != nil {
			common.LogFatal("Failed to open feedback database", zap.Error(err), zap.String("path", cfg.Feedback.Path))
		}
		defer sqlite.Close()
		feedbackStore = sqlite
	}

	// 初始化照片分析；未設定金鑰時照片端點回傳錯誤，其他功能照常
	provider, err := vision.NewProvider(cfg.Vision)
	if err != nil {
		common.LogWarn("Photo analysis disabled", zap.Error(err))
	}
	queue := vision.NewQueue(vision.NewAnalyzer(provider, cfg.Vision.MaxTokens), cfg.Queue.Workers, cfg.Queue.MaxSize)
	defer queue.Close()

	svc := analysis.NewService(analysis.Options{
		Fetcher:       scraper.New(cfg.Scraper),
		Cache:         store,
		Photos:        queue,
		Feedback:      feedbackStore,
		MaxImageBytes: cfg.Vision.MaxImageBytes,
	})

	// 設置路由
	engine, err := api.SetupRouter(cfg, svc, queue)
	if err != nil {
		common.LogFatal("Failed to setup router", zap.Error(err))
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router.ErrorHandler(engine),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.LogFatal("Failed to start server", zap.Error(err))
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
		return
	}

	common.LogInfo("Server exited")
}
