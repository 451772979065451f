package equipment

import "strings"

// Usage 使用型態分析結果
type Usage struct {
	Patterns   []string
	Complexity Complexity
}

// AnalyzeUsage 掃描整段食譜文字的複雜度修正
//
// 每種修正類型只取第一個出現的指標詞；結果只取決於文字本身，
// 所有設備群組共用同一份分析。
func AnalyzeUsage(text string) Usage {
	usage := Usage{
		Patterns:   []string{},
		Complexity: Complexity{Modifiers: []ComplexityModifier{}},
	}
	for _, entry := range ComplexityModifiers {
		for _, indicator := range entry.Terms {
			if strings.Contains(text, strings.ToLower(indicator)) {
				usage.Patterns = append(usage.Patterns, entry.Type)
				usage.Complexity.Modifiers = append(usage.Complexity.Modifiers, ComplexityModifier{
					Type:        entry.Type,
					Indicator:   indicator,
					Description: ModifierDescription(entry.Type),
				})
				break
			}
		}
	}
	usage.Complexity.Base = ComplexityFor(len(usage.Complexity.Modifiers))
	return usage
}

// instanceFromGroup 由群組與使用分析組出設備實例
func instanceFromGroup(g Group, usage Usage) Instance {
	inst := Instance{
		Type:          g.Type,
		Quantity:      g.Quantity,
		UsagePatterns: usage.Patterns,
		Complexity:    usage.Complexity,
		Confidence:    g.Confidence,
		Reasoning:     g.Reasoning,
	}
	return inst.clone()
}
