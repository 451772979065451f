package equipment

import (
	"cleanup-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// Detect 偵測食譜需要的設備
func Detect(recipe common.RecipeRecord) []Instance {
	return DetectText(recipe.Text())
}

// DetectText 對已正規化的全文執行偵測流程：
// 掃描 → 彙整 → 使用分析 → 推論 → 衝突處理
func DetectText(text string) []Instance {
	mentions := Scan(text)
	groups := Aggregate(mentions, text)
	usage := AnalyzeUsage(text)

	instances := make([]Instance, 0, len(groups))
	for _, g := range groups {
		instances = append(instances, instanceFromGroup(g, usage))
	}
	instances = append(instances, Imply(text, instances)...)

	resolved := Resolve(instances)
	out := make([]Instance, 0, len(resolved))
	for _, inst := range resolved {
		if _, ok := Lookup(inst.Type); !ok {
			common.LogWarn("Unknown equipment type dropped", zap.String("type", inst.Type))
			continue
		}
		out = append(out, inst)
	}

	common.LogDebug("設備偵測完成",
		zap.Int("mentions", len(mentions)),
		zap.Int("groups", len(groups)),
		zap.Int("instances", len(out)),
	)
	return out
}

// DebugInfo 偵測過程的掃描統計
type DebugInfo struct {
	TotalMentions        int            `json:"totalMentions"`
	MentionsBySource     map[Source]int `json:"mentionsBySource"`
	UniqueEquipmentTypes int            `json:"uniqueEquipmentTypes"`
	Mentions             []Mention      `json:"mentions"`
}

// Debug 回傳掃描階段的完整證據，供除錯端點使用
func Debug(recipe common.RecipeRecord) DebugInfo {
	mentions := Scan(recipe.Text())
	info := DebugInfo{
		TotalMentions:    len(mentions),
		MentionsBySource: make(map[Source]int),
		Mentions:         mentions,
	}
	types := make(map[string]bool)
	for _, m := range mentions {
		info.MentionsBySource[m.Source]++
		types[m.EquipmentType] = true
	}
	info.UniqueEquipmentTypes = len(types)
	return info
}
