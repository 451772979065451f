package vision

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cleanup-estimator/internal/pkg/common"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider 透過 Anthropic Messages API 分析照片
type AnthropicProvider struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicProvider 創建 Anthropic 供應商
func NewAnthropicProvider(apiKey, model string, timeout time.Duration, opts ...option.RequestOption) *AnthropicProvider {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(timeout),
	}, opts...)
	client := anthropic.NewClient(opts...)
	return &AnthropicProvider{client: &client, model: model}
}

// Name 供應商名稱
func (p *AnthropicProvider) Name() string { return "anthropic" }

// GetModel 模型名稱
func (p *AnthropicProvider) GetModel() string { return p.model }

// Analyze 圖片在前、提示詞在後送出
func (p *AnthropicProvider) Analyze(ctx context.Context, req *Request) (string, error) {
	start := time.Now()
	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(req.Image.MimeType, base64.StdEncoding.EncodeToString(req.Image.Data)),
				anthropic.NewTextBlock(req.Prompt),
			),
		},
	})
	common.LogVisionCall(p.Name(), time.Since(start), err)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return "", common.ErrVisionUnavailable.WithMessage("invalid Anthropic API key, please check your configuration").Wrap(err)
		}
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
