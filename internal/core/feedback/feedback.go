package feedback

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"cleanup-estimator/internal/pkg/common"
)

// Submission 使用者對估算結果的回饋
type Submission struct {
	RecipeURL         string          `json:"recipeUrl"`
	EstimatedTime     *int            `json:"estimatedTime"`
	ActualTime        *int            `json:"actualTime,omitempty"`
	EquipmentFeedback json.RawMessage `json:"equipmentFeedback,omitempty"`
	Comments          string          `json:"comments,omitempty"`
}

// Validate 檢查必要欄位
func (s Submission) Validate() error {
	if strings.TrimSpace(s.RecipeURL) == "" || s.EstimatedTime == nil {
		return common.ErrInvalidRequest.WithMessage("recipe URL and estimated time are required")
	}
	if *s.EstimatedTime < 0 || (s.ActualTime != nil && *s.ActualTime < 0) {
		return common.ErrInvalidRequest.WithMessage("times must not be negative")
	}
	if len(s.EquipmentFeedback) > 0 && !json.Valid(s.EquipmentFeedback) {
		return common.ErrInvalidRequest.WithMessage("equipmentFeedback must be valid JSON")
	}
	return nil
}

// Record 已儲存的回饋
type Record struct {
	ID                string          `json:"id"`
	RecipeURL         string          `json:"recipeUrl"`
	EstimatedTime     int             `json:"estimatedTime"`
	ActualTime        *int            `json:"actualTime,omitempty"`
	EquipmentFeedback json.RawMessage `json:"equipmentFeedback,omitempty"`
	Comments          string          `json:"comments,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// Store 回饋儲存
type Store interface {
	Save(ctx context.Context, s Submission) (*Record, error)
	// List 由新到舊，limit <= 0 表示全部
	List(ctx context.Context, limit int) ([]Record, error)
	Close() error
}
