package scraper

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"cleanup-estimator/internal/infrastructure/config"
	"cleanup-estimator/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var urlPattern = regexp.MustCompile(`(?i)^https?://.+`)

// recipeURLHints 常見食譜網站或路徑關鍵字
var recipeURLHints = []string{
	"recipe", "cooking", "kitchen", "food", "allrecipes", "foodnetwork", "bonappetit",
	"seriouseats", "epicurious", "tasty", "delish", "yummly",
}

// ValidateURL 只接受 http / https 網址
func ValidateURL(url string) error {
	if !urlPattern.MatchString(strings.TrimSpace(url)) {
		return common.ErrInvalidURL
	}
	return nil
}

// IsLikelyRecipeURL 網址看起來是否像食譜頁
func IsLikelyRecipeURL(url string) bool {
	lower := strings.ToLower(url)
	for _, hint := range recipeURLHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// Scraper 下載食譜頁並解析為 RecipeRecord
type Scraper struct {
	client       *resty.Client
	maxBodyBytes int64
}

// New 創建抓取服務
func New(cfg config.ScraperConfig) *Scraper {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(500*time.Millisecond).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")

	return &Scraper{client: client, maxBodyBytes: cfg.MaxBodyBytes}
}

// Scrape 抓取並正規化食譜
func (s *Scraper) Scrape(ctx context.Context, url string) (common.RecipeRecord, error) {
	url = strings.TrimSpace(url)
	if err := ValidateURL(url); err != nil {
		return common.RecipeRecord{}, err
	}
	if !IsLikelyRecipeURL(url) {
		common.LogDebug("URL does not look like a recipe page", zap.String("url", url))
	}

	start := time.Now()
	resp, err := s.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		common.LogWarn("Recipe fetch failed", zap.String("url", url), zap.Error(err))
		return common.RecipeRecord{}, common.ErrUpstreamFetch.Wrap(err)
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogWarn("Recipe fetch returned non-200",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode()),
		)
		return common.RecipeRecord{}, common.ErrUpstreamFetch.Wrap(fmt.Errorf("status %d", resp.StatusCode()))
	}

	body := resp.Body()
	if s.maxBodyBytes > 0 && int64(len(body)) > s.maxBodyBytes {
		return common.RecipeRecord{}, common.ErrUpstreamFetch.Wrap(fmt.Errorf("page larger than %d bytes", s.maxBodyBytes))
	}

	recipe, err := Parse(body, url)
	if err != nil {
		return common.RecipeRecord{}, err
	}

	common.LogInfo("Recipe scraped",
		zap.String("url", url),
		zap.String("title", recipe.Title),
		zap.Int("ingredients", len(recipe.Ingredients)),
		zap.Int("instructions", len(recipe.Instructions)),
		zap.Duration("耗時", time.Since(start)),
	)
	return recipe, nil
}
