package equipment

import (
	"regexp"
	"strings"
)

var (
	knifeTypes        = []string{"chef_knife", "paring_knife", "cleaver", "utility_knife"}
	measurementRegexp = regexp.MustCompile(`(?i)\b(\d+\/?\d*\s*(?:cup|tablespoon|teaspoon|tsp|tbsp|ml|oz))`)
	mixingWords       = []string{"mix", "combine", "stir together", "blend"}
)

func impliedInstance(equipmentType string, confidence float64, usage, reason string) Instance {
	return Instance{
		Type:          equipmentType,
		Quantity:      1,
		UsagePatterns: []string{usage},
		Complexity:    Complexity{Base: ComplexityLow, Modifiers: []ComplexityModifier{}},
		Confidence:    confidence,
		Reasoning:     []string{reason},
	}
}

// Imply 補上文字沒有直接寫出、但由其他設備或用語推得的設備
func Imply(text string, existing []Instance) []Instance {
	present := make(map[string]bool, len(existing))
	for _, inst := range existing {
		present[inst.Type] = true
	}

	implied := make([]Instance, 0)

	hasKnife := false
	for _, k := range knifeTypes {
		if present[k] {
			hasKnife = true
			break
		}
	}
	if hasKnife && !present["cutting_board"] {
		implied = append(implied, impliedInstance("cutting_board", 0.9, "chopping", "Implied by knife usage"))
	}

	if measurementRegexp.MatchString(text) && !present["measuring_cups"] && !present["measuring_spoons"] {
		const reason = "Implied by specific measurements in recipe"
		implied = append(implied,
			impliedInstance("measuring_cups", 0.8, "measuring", reason),
			impliedInstance("measuring_spoons", 0.8, "measuring", reason),
		)
	}

	if containsAny(text, mixingWords) && !present["mixing_bowl"] {
		implied = append(implied, impliedInstance("mixing_bowl", 0.7, "mixing", "Implied by mixing instructions"))
	}

	return implied
}

func containsAny(text string, words []string) bool {
	lower := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
