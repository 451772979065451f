package vision

import (
	"context"
	"math"

	"cleanup-estimator/internal/core/cleanup"
	"cleanup-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// dishwasherMaterials 可放入洗碗機的材質
var dishwasherMaterials = map[string]bool{
	"glass":           true,
	"ceramic":         true,
	"stainless_steel": true,
	"generic":         true,
}

const (
	dishwasherSavingRate = 0.6
	quickMultiplier      = 0.7
	thoroughMultiplier   = 1.4
	rangeSpread          = 0.2
)

// EquipmentItem 模型辨識出的一項待洗器具
type EquipmentItem struct {
	Item          string  `json:"item"`
	Quantity      float64 `json:"quantity"`
	Type          string  `json:"type"`
	Material      string  `json:"material"`
	MessLevel     string  `json:"messLevel"`
	EstimatedTime float64 `json:"estimatedTime"`
	Notes         string  `json:"notes,omitempty"`
}

// Area 模型評估的廚房區域
type Area struct {
	Name          string  `json:"name"`
	Condition     string  `json:"condition"`
	EstimatedTime float64 `json:"estimatedTime"`
	Notes         string  `json:"notes,omitempty"`
}

// Assessment 整體評估
type Assessment struct {
	TotalItems      float64  `json:"totalItems"`
	MessLevel       string   `json:"messLevel"`
	Complexity      string   `json:"complexity"`
	Recommendations []string `json:"recommendations"`
}

// ModelOutput 模型回傳的原始 JSON
type ModelOutput struct {
	Equipment         []EquipmentItem `json:"equipment"`
	Areas             []Area          `json:"areas"`
	OverallAssessment Assessment      `json:"overallAssessment"`
	Confidence        float64         `json:"confidence"`
}

// Breakdown 器具與區域各自的時間
type Breakdown struct {
	Equipment int `json:"equipment"`
	Areas     int `json:"areas"`
}

// Range 估算區間
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Analysis 照片分析結果
type Analysis struct {
	TotalTime     int             `json:"totalTime"`
	Equipment     []EquipmentItem `json:"equipment"`
	Areas         []Area          `json:"areas"`
	Breakdown     Breakdown       `json:"breakdown"`
	Assessment    Assessment      `json:"assessment"`
	Confidence    float64         `json:"confidence"`
	EstimateRange Range           `json:"estimateRange"`
}

// Result 回應主體
type Result struct {
	Analysis        Analysis            `json:"analysis"`
	UserPreferences cleanup.Preferences `json:"userPreferences"`
}

// Analyzer 照片分析服務
type Analyzer struct {
	provider  Provider
	maxTokens int
}

// NewAnalyzer 創建照片分析服務；provider 可為 nil，此時分析回傳 ErrVisionUnavailable
func NewAnalyzer(provider Provider, maxTokens int) *Analyzer {
	if maxTokens <= 0 {
		maxTokens = 2000
	}
	return &Analyzer{provider: provider, maxTokens: maxTokens}
}

// Available 是否已設定供應商
func (a *Analyzer) Available() bool {
	return a != nil && a.provider != nil
}

// Analyze 分析已驗證的照片並套用使用者偏好
func (a *Analyzer) Analyze(ctx context.Context, img Image, prefs cleanup.Preferences) (*Result, error) {
	if !a.Available() {
		return nil, common.ErrVisionUnavailable
	}
	prefs = prefs.Normalize()

	content, err := a.provider.Analyze(ctx, &Request{
		Image:     img,
		Prompt:    analysisPrompt,
		MaxTokens: a.maxTokens,
	})
	if err != nil {
		return nil, err
	}

	var out ModelOutput
	if err := common.ParseModelJSON(content, &out); err != nil {
		common.LogWarn("Failed to parse vision response",
			zap.String("provider", a.provider.Name()),
			zap.Int("length", len(content)),
			zap.Error(err),
		)
		return nil, common.ErrVisionParse.Wrap(err)
	}

	analysis := Summarize(out, prefs)
	common.LogInfo("Kitchen photo analyzed",
		zap.String("provider", a.provider.Name()),
		zap.String("model", a.provider.GetModel()),
		zap.Int("equipment", len(analysis.Equipment)),
		zap.Int("areas", len(analysis.Areas)),
		zap.Int("totalTime", analysis.TotalTime),
	)
	return &Result{Analysis: analysis, UserPreferences: prefs}, nil
}

// Summarize 加總器具與區域時間並套用洗碗機與清潔習慣
func Summarize(out ModelOutput, prefs cleanup.Preferences) Analysis {
	equipment := out.Equipment
	if equipment == nil {
		equipment = []EquipmentItem{}
	}
	areas := out.Areas
	if areas == nil {
		areas = []Area{}
	}

	equipmentTime := 0.0
	for _, item := range equipment {
		equipmentTime += item.EstimatedTime * item.Quantity
	}
	areasTime := 0.0
	for _, area := range areas {
		areasTime += area.EstimatedTime
	}
	total := equipmentTime + areasTime

	if prefs.HasDishwasher {
		savings := 0.0
		for _, item := range equipment {
			if dishwasherMaterials[item.Material] {
				savings += item.EstimatedTime * item.Quantity * dishwasherSavingRate
			}
		}
		total -= savings
	}

	switch prefs.CleaningStyle {
	case cleanup.StyleQuick:
		total *= quickMultiplier
	case cleanup.StyleThorough:
		total *= thoroughMultiplier
	}

	return Analysis{
		TotalTime:  round(total),
		Equipment:  equipment,
		Areas:      areas,
		Breakdown:  Breakdown{Equipment: round(equipmentTime), Areas: round(areasTime)},
		Assessment: out.OverallAssessment,
		Confidence: out.Confidence,
		EstimateRange: Range{
			Min: round(total * (1 - rangeSpread)),
			Max: round(total * (1 + rangeSpread)),
		},
	}
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
