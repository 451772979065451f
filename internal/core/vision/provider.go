package vision

import (
	"context"
	"fmt"
	"time"

	"cleanup-estimator/internal/infrastructure/config"
	"cleanup-estimator/internal/pkg/common"
)

// Image 已驗證的照片
type Image struct {
	Data     []byte
	MimeType string
}

// Request 送往視覺模型的請求
type Request struct {
	Image     Image
	Prompt    string
	MaxTokens int
}

// Provider 定義視覺模型供應商介面
type Provider interface {
	// Analyze 送出照片與提示詞，回傳模型文字輸出
	Analyze(ctx context.Context, req *Request) (string, error)

	// Name 供應商名稱
	Name() string

	// GetModel 獲取當前使用的模型名稱
	GetModel() string
}

// NewProvider 依設定建立供應商；未設定金鑰時回傳 ErrVisionUnavailable
func NewProvider(cfg config.VisionConfig) (Provider, error) {
	if cfg.APIKey() == "" {
		return nil, common.ErrVisionUnavailable.Wrap(fmt.Errorf("missing API key for provider %q", cfg.Provider))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	switch cfg.Provider {
	case config.VisionProviderOpenRouter:
		return NewOpenRouterProvider(cfg.OpenRouterAPIKey, cfg.Model, timeout), nil
	case config.VisionProviderAnthropic, "":
		return NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.Model, timeout), nil
	default:
		return nil, common.ErrVisionUnavailable.Wrap(fmt.Errorf("unknown provider %q", cfg.Provider))
	}
}
