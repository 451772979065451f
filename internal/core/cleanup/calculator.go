package cleanup

import (
	"fmt"
	"math"
	"strings"

	"cleanup-estimator/internal/core/equipment"
	"cleanup-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	// emptyConfidence 沒有任何設備時的整體信心
	emptyConfidence = 0.5
	// uncategorized 明細沒有分類時的分組名稱
	uncategorized = "other"
)

// round 四捨五入（0.5 一律進位）
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Calculate 將設備清單與使用者偏好換算為清潔時間
func Calculate(instances []equipment.Instance, prefs Preferences) Result {
	prefs = prefs.Normalize()

	var total float64
	breakdown := make([]BreakdownItem, 0, len(instances)+4)

	for _, inst := range instances {
		def, ok := equipment.Lookup(inst.Type)
		if !ok {
			common.LogWarn("Unknown equipment type", zap.String("type", inst.Type))
			continue
		}

		item, seconds := calculateItem(inst, def, prefs)
		breakdown = append(breakdown, item)
		total += seconds
	}

	tasks, taskTime := generalTasks(instances)
	breakdown = append(breakdown, tasks...)
	total += float64(taskTime)

	confidence := overallConfidence(instances)
	return Result{
		TotalTime:     round(total),
		Breakdown:     breakdown,
		Confidence:    confidence,
		Categories:    groupByCategory(breakdown),
		EstimateRange: estimateRange(total, confidence),
	}
}

// calculateItem 單一設備的明細與未四捨五入的秒數
func calculateItem(inst equipment.Instance, def equipment.Definition, prefs Preferences) (BreakdownItem, float64) {
	quantity := max(inst.Quantity, 1)
	running := float64(def.BaseTime * quantity)
	modifiers := make([]ModifierEntry, 0)

	for _, m := range inst.Complexity.Modifiers {
		increase := ModifierImpact(m.Type, def.Category)
		running += float64(increase)
		modifiers = append(modifiers, ModifierEntry{Name: m.Description, Time: increase, Type: KindComplexity})
	}

	for _, m := range MaterialModifiers(inst.Type) {
		running += float64(m.Time)
		modifiers = append(modifiers, m)
	}

	adjusted, prefMods := applyPreferences(running, def, prefs)
	modifiers = append(modifiers, prefMods...)

	// 信心越低估得越寬鬆
	adjusted *= 1 + (1-inst.Confidence)*0.2

	return BreakdownItem{
		Item:       equipment.DisplayName(inst.Type),
		Quantity:   quantity,
		BaseTime:   def.BaseTime,
		Modifiers:  modifiers,
		Subtotal:   round(adjusted),
		Reasoning:  detailedReasoning(inst, quantity),
		Confidence: inst.Confidence,
		Category:   string(def.Category),
	}, adjusted
}

func detailedReasoning(inst equipment.Instance, quantity int) []string {
	reasons := append(make([]string, 0, len(inst.Reasoning)+2), inst.Reasoning...)
	if quantity > 1 {
		reasons = append(reasons, fmt.Sprintf("%d items detected", quantity))
	}
	if len(inst.Complexity.Modifiers) > 0 {
		types := make([]string, len(inst.Complexity.Modifiers))
		for i, m := range inst.Complexity.Modifiers {
			types[i] = m.Type
		}
		reasons = append(reasons, "Complexity factors: "+strings.Join(types, ", "))
	}
	return reasons
}

// overallConfidence 所有設備信心的平均，取到小數第二位
func overallConfidence(instances []equipment.Instance) float64 {
	if len(instances) == 0 {
		return emptyConfidence
	}
	var sum float64
	for _, inst := range instances {
		sum += inst.Confidence
	}
	return math.Floor(sum/float64(len(instances))*100+0.5) / 100
}

func groupByCategory(breakdown []BreakdownItem) map[string]*CategoryGroup {
	groups := make(map[string]*CategoryGroup)
	for _, item := range breakdown {
		category := item.Category
		if category == "" {
			category = uncategorized
		}
		g, ok := groups[category]
		if !ok {
			g = &CategoryGroup{}
			groups[category] = g
		}
		g.Items = append(g.Items, item)
		g.TotalTime += item.Subtotal
	}
	return groups
}

// estimateRange 信心越低區間越寬，浮動比例介於 10% 到 50%
func estimateRange(total, confidence float64) EstimateRange {
	variability := (1-confidence)*0.4 + 0.1
	variability = math.Min(math.Max(variability, 0.1), 0.5)
	return EstimateRange{
		Min:        round(total * (1 - variability)),
		Max:        round(total * (1 + variability)),
		Confidence: confidence,
	}
}
