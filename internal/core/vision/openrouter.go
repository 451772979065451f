package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cleanup-estimator/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider 透過 OpenRouter chat completions 分析照片
type OpenRouterProvider struct {
	client *resty.Client
	model  string
}

// NewOpenRouterProvider 創建 OpenRouter 供應商
func NewOpenRouterProvider(apiKey, model string, timeout time.Duration) *OpenRouterProvider {
	client := resty.New().
		SetBaseURL(openRouterBaseURL).
		SetTimeout(timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey)).
		SetHeader("HTTP-Referer", "https://cleanup-estimator.local").
		SetHeader("X-Title", "Kitchen Cleanup Estimator")

	return &OpenRouterProvider{client: client, model: model}
}

// Name 供應商名稱
func (p *OpenRouterProvider) Name() string { return "openrouter" }

// GetModel 模型名稱
func (p *OpenRouterProvider) GetModel() string { return p.model }

// Analyze 以 data URL 夾帶照片
func (p *OpenRouterProvider) Analyze(ctx context.Context, req *Request) (string, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", req.Image.MimeType, base64.StdEncoding.EncodeToString(req.Image.Data))

	body := map[string]interface{}{
		"model": p.model,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "image_url", "image_url": map[string]string{"url": dataURL}},
					{"type": "text", "text": req.Prompt},
				},
			},
		},
		"max_tokens": req.MaxTokens,
	}

	start := time.Now()
	content, err := p.send(ctx, body)
	common.LogVisionCall(p.Name(), time.Since(start), err)
	return content, err
}

func (p *OpenRouterProvider) send(ctx context.Context, body map[string]interface{}) (string, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return "", common.ErrVisionUnavailable.WithMessage("invalid OpenRouter API key, please check your configuration")
	default:
		return "", fmt.Errorf("OpenRouter API returned error: %s", resp.String())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenRouter response")
	}
	return result.Choices[0].Message.Content, nil
}
