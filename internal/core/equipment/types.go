package equipment

// Source 偵測證據的來源層級
type Source string

const (
	SourceDirectMention     Source = "direct_mention"
	SourceTechniqueMapping  Source = "technique_mapping"
	SourceIngredientPattern Source = "ingredient_pattern"
	SourceCulturalIndicator Source = "cultural_indicator"
)

// 各來源的固定信心值
const (
	ConfidenceDirect     = 0.95
	ConfidenceTechnique  = 0.75
	ConfidenceCultural   = 0.70
	ConfidenceIngredient = 0.50
)

// UnknownPosition 只做存在檢查的證據沒有位置
const UnknownPosition = -1

// Mention 文字中某一種設備的一筆證據
type Mention struct {
	EquipmentType string  `json:"type"`
	MatchedTerm   string  `json:"term"`
	Position      int     `json:"position"`
	Confidence    float64 `json:"confidence"`
	Source        Source  `json:"source"`
	Context       string  `json:"context,omitempty"`
}

// HasPosition 是否帶有位置
func (m Mention) HasPosition() bool {
	return m.Position >= 0
}

// ComplexityLevel 清潔複雜度等級
type ComplexityLevel string

const (
	ComplexityLow    ComplexityLevel = "low"
	ComplexityMedium ComplexityLevel = "medium"
	ComplexityHigh   ComplexityLevel = "high"
)

// ComplexityFor 依修飾數量決定等級：0 → low，1–2 → medium，≥3 → high
func ComplexityFor(modifierCount int) ComplexityLevel {
	switch {
	case modifierCount == 0:
		return ComplexityLow
	case modifierCount <= 2:
		return ComplexityMedium
	default:
		return ComplexityHigh
	}
}

// ComplexityModifier 一種增加清潔難度的烹調行為
type ComplexityModifier struct {
	Type        string `json:"type"`
	Indicator   string `json:"indicator"`
	Description string `json:"description"`
}

// Complexity 設備的清潔複雜度
type Complexity struct {
	Base      ComplexityLevel      `json:"base"`
	Modifiers []ComplexityModifier `json:"modifiers"`
}

// Instance 偵測結果的基本單位，也是計算器的輸入
type Instance struct {
	Type          string     `json:"type"`
	Quantity      int        `json:"quantity"`
	UsagePatterns []string   `json:"usagePatterns"`
	Complexity    Complexity `json:"complexity"`
	Confidence    float64    `json:"confidence"`
	Reasoning     []string   `json:"reasoning"`
}

// HasUsagePattern 是否含有指定的使用型態
func (i Instance) HasUsagePattern(pattern string) bool {
	for _, p := range i.UsagePatterns {
		if p == pattern {
			return true
		}
	}
	return false
}

// clone 複製切片，避免結果之間共用底層陣列
func (i Instance) clone() Instance {
	out := i
	out.UsagePatterns = append(make([]string, 0, len(i.UsagePatterns)), i.UsagePatterns...)
	out.Reasoning = append(make([]string, 0, len(i.Reasoning)), i.Reasoning...)
	out.Complexity.Modifiers = append(make([]ComplexityModifier, 0, len(i.Complexity.Modifiers)), i.Complexity.Modifiers...)
	return out
}
