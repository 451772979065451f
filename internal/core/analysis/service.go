package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cleanup-estimator/internal/core/cache"
	"cleanup-estimator/internal/core/cleanup"
	"cleanup-estimator/internal/core/equipment"
	"cleanup-estimator/internal/core/feedback"
	"cleanup-estimator/internal/core/vision"
	"cleanup-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// Fetcher 取得食譜內容
type Fetcher interface {
	Scrape(ctx context.Context, url string) (common.RecipeRecord, error)
}

// PhotoAnalyzer 照片分析
type PhotoAnalyzer interface {
	Submit(ctx context.Context, img vision.Image, prefs cleanup.Preferences) (*vision.Result, error)
	Available() bool
}

// pinger 可檢查連線的依賴
type pinger interface {
	Ping(ctx context.Context) error
}

// Service 串接抓取、快取、偵測與計算
type Service struct {
	fetcher       Fetcher
	cache         cache.Store
	photos        PhotoAnalyzer
	feedback      feedback.Store
	maxImageBytes int64
}

// Options 建立服務所需的依賴；Cache 為 nil 時不快取，Photos / Feedback 為 nil 時對應功能回傳錯誤
type Options struct {
	Fetcher       Fetcher
	Cache         cache.Store
	Photos        PhotoAnalyzer
	Feedback      feedback.Store
	MaxImageBytes int64
}

// NewService 創建分析服務
func NewService(opts Options) *Service {
	store := opts.Cache
	if store == nil {
		store = cache.NoopStore{}
	}
	return &Service{
		fetcher:       opts.Fetcher,
		cache:         store,
		photos:        opts.Photos,
		feedback:      opts.Feedback,
		maxImageBytes: opts.MaxImageBytes,
	}
}

// RecipeAnalysis 食譜分析結果
type RecipeAnalysis struct {
	Recipe  common.RecipeSummary `json:"recipe"`
	Cleanup cleanup.Result       `json:"cleanup"`
	Cached  bool                 `json:"cached"`
}

// DetectedEquipment 除錯輸出中的一項設備
type DetectedEquipment struct {
	Type       string               `json:"type"`
	Quantity   int                  `json:"quantity"`
	Confidence float64              `json:"confidence"`
	Reasoning  []string             `json:"reasoning"`
	Complexity equipment.Complexity `json:"complexity"`
}

// DebugRecipe 除錯輸出中的食譜內容
type DebugRecipe struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// DebugResult 偵測除錯結果
type DebugResult struct {
	Recipe            DebugRecipe         `json:"recipe"`
	EquipmentDetected []DetectedEquipment `json:"equipmentDetected"`
	Statistics        equipment.DebugInfo `json:"statistics"`
}

// AnalyzeRecipe 分析食譜網址；快取只保存食譜與設備，清潔時間依偏好重新計算
func (s *Service) AnalyzeRecipe(ctx context.Context, url string, prefs cleanup.Preferences) (*RecipeAnalysis, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, common.ErrInvalidRequest.WithMessage("recipe URL is required")
	}
	prefs = prefs.Normalize()

	entry, err := s.cache.Get(ctx, url)
	switch {
	case err == nil:
		common.LogInfo("Returning cached analysis", zap.String("url", url))
		return &RecipeAnalysis{
			Recipe:  entry.Recipe.Summary(),
			Cleanup: cleanup.Calculate(entry.Instances, prefs),
			Cached:  true,
		}, nil
	case !errors.Is(err, common.ErrCacheMiss):
		common.LogWarn("Cache lookup failed", zap.String("url", url), zap.Error(err))
	}

	recipe, instances, err := s.scrapeAndDetect(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, url, &cache.Entry{Recipe: recipe, Instances: instances, CachedAt: time.Now()}); err != nil {
		common.LogWarn("Failed to cache analysis", zap.String("url", url), zap.Error(err))
	}

	return &RecipeAnalysis{
		Recipe:  recipe.Summary(),
		Cleanup: cleanup.Calculate(instances, prefs),
		Cached:  false,
	}, nil
}

// Debug 抓取食譜並回傳偵測細節，不使用快取
func (s *Service) Debug(ctx context.Context, url string) (*DebugResult, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, common.ErrInvalidRequest.WithMessage("recipe URL is required")
	}

	recipe, instances, err := s.scrapeAndDetect(ctx, url)
	if err != nil {
		return nil, err
	}
	return debugResult(recipe, instances), nil
}

// AnalyzeText 直接分析呼叫端提供的食譜內容
func (s *Service) AnalyzeText(recipe common.RecipeRecord, prefs cleanup.Preferences) (*RecipeAnalysis, error) {
	recipe.Ingredients = trimAll(recipe.Ingredients)
	recipe.Instructions = trimAll(recipe.Instructions)
	recipe.Title = strings.TrimSpace(recipe.Title)
	if recipe.IsEmpty() {
		return nil, common.ErrInvalidRequest.WithMessage("recipe ingredients or instructions are required")
	}
	if recipe.Title == "" {
		recipe.Title = "Unknown Recipe"
	}

	instances := equipment.Detect(recipe)
	return &RecipeAnalysis{
		Recipe:  recipe.Summary(),
		Cleanup: cleanup.Calculate(instances, prefs.Normalize()),
	}, nil
}

// AnalyzePhoto 驗證照片後交由隊列分析
func (s *Service) AnalyzePhoto(ctx context.Context, data []byte, mimeType string, prefs cleanup.Preferences) (*vision.Result, error) {
	img, err := vision.ValidateImage(data, mimeType, s.maxImageBytes)
	if err != nil {
		return nil, err
	}
	if s.photos == nil || !s.photos.Available() {
		return nil, common.ErrVisionUnavailable
	}

	common.LogInfo("Analyzing kitchen photo",
		zap.String("mime", img.MimeType),
		zap.String("size", fmt.Sprintf("%.2fKB", float64(len(img.Data))/1024)),
	)
	return s.photos.Submit(ctx, img, prefs.Normalize())
}

// SubmitFeedback 儲存使用者回饋
func (s *Service) SubmitFeedback(ctx context.Context, sub feedback.Submission) (*feedback.Record, error) {
	if s.feedback == nil {
		return nil, common.ErrServiceUnavailable.WithMessage("feedback storage is disabled")
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	record, err := s.feedback.Save(ctx, sub)
	if err != nil {
		common.LogError("Failed to save feedback", zap.String("url", sub.RecipeURL), zap.Error(err))
		return nil, common.ErrInternalError.WithMessage("failed to save feedback").Wrap(err)
	}
	common.LogInfo("Feedback saved", zap.String("url", record.RecipeURL), zap.String("id", record.ID))
	return record, nil
}

// ListFeedback 由新到舊列出回饋
func (s *Service) ListFeedback(ctx context.Context, limit int) ([]feedback.Record, error) {
	if s.feedback == nil {
		return nil, common.ErrServiceUnavailable.WithMessage("feedback storage is disabled")
	}
	records, err := s.feedback.List(ctx, limit)
	if err != nil {
		return nil, common.ErrInternalError.WithMessage("failed to retrieve feedback").Wrap(err)
	}
	if records == nil {
		records = []feedback.Record{}
	}
	return records, nil
}

// CacheStats 快取統計
func (s *Service) CacheStats(ctx context.Context) cache.Stats {
	return s.cache.Stats(ctx)
}

// Ready 檢查快取與回饋儲存的連線
func (s *Service) Ready(ctx context.Context) map[string]error {
	checks := map[string]error{}
	if p, ok := s.cache.(pinger); ok {
		checks["cache"] = p.Ping(ctx)
	}
	if p, ok := s.feedback.(pinger); ok {
		checks["feedback"] = p.Ping(ctx)
	}
	return checks
}

func (s *Service) scrapeAndDetect(ctx context.Context, url string) (common.RecipeRecord, []equipment.Instance, error) {
	if s.fetcher == nil {
		return common.RecipeRecord{}, nil, common.ErrServiceUnavailable.WithMessage("recipe fetching is not configured")
	}

	common.LogInfo("Scraping recipe", zap.String("url", url))
	recipe, err := s.fetcher.Scrape(ctx, url)
	if err != nil {
		return common.RecipeRecord{}, nil, err
	}

	instances := equipment.Detect(recipe)
	common.LogInfo("Equipment detected",
		zap.String("url", url),
		zap.Int("count", len(instances)),
	)
	return recipe, instances, nil
}

func debugResult(recipe common.RecipeRecord, instances []equipment.Instance) *DebugResult {
	detected := make([]DetectedEquipment, 0, len(instances))
	for _, inst := range instances {
		detected = append(detected, DetectedEquipment{
			Type:       inst.Type,
			Quantity:   inst.Quantity,
			Confidence: inst.Confidence,
			Reasoning:  inst.Reasoning,
			Complexity: inst.Complexity,
		})
	}
	return &DebugResult{
		Recipe: DebugRecipe{
			Title:        recipe.Title,
			Ingredients:  recipe.Ingredients,
			Instructions: recipe.Instructions,
		},
		EquipmentDetected: detected,
		Statistics:        equipment.Debug(recipe),
	}
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if t := strings.TrimSpace(item); t != "" {
			out = append(out, t)
		}
	}
	return out
}
