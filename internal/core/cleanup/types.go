package cleanup

import "strings"

// CleaningStyle 使用者的清潔習慣
type CleaningStyle string

const (
	StyleQuick    CleaningStyle = "quick"
	StyleNormal   CleaningStyle = "normal"
	StyleThorough CleaningStyle = "thorough"
)

// ParseStyle 解析清潔習慣，空字串視為 normal
func ParseStyle(s string) (CleaningStyle, bool) {
	switch CleaningStyle(strings.ToLower(strings.TrimSpace(s))) {
	case "", StyleNormal:
		return StyleNormal, true
	case StyleQuick:
		return StyleQuick, true
	case StyleThorough:
		return StyleThorough, true
	default:
		return StyleNormal, false
	}
}

// Preferences 使用者偏好
type Preferences struct {
	HasDishwasher     bool          `json:"hasDishwasher"`
	CleaningStyle     CleaningStyle `json:"cleaningStyle"`
	SoakingPreference bool          `json:"soakingPreference"`
}

// DefaultPreferences 預設偏好：無洗碗機、一般清潔、不浸泡
func DefaultPreferences() Preferences {
	return Preferences{CleaningStyle: StyleNormal}
}

// Normalize 補上預設值；無法辨識的清潔習慣以 normal 計算
func (p Preferences) Normalize() Preferences {
	style, _ := ParseStyle(string(p.CleaningStyle))
	p.CleaningStyle = style
	return p
}

// ModifierKind 時間調整的種類
type ModifierKind string

const (
	KindComplexity ModifierKind = "complexity"
	KindMaterial   ModifierKind = "material"
	KindPreference ModifierKind = "preference"
)

// ModifierEntry 明細中的一筆時間調整（秒，可為負）
type ModifierEntry struct {
	Name string       `json:"name"`
	Time int          `json:"time"`
	Type ModifierKind `json:"type"`
}

// BreakdownItem 明細中的一個項目
type BreakdownItem struct {
	Item       string          `json:"item"`
	Quantity   int             `json:"quantity"`
	BaseTime   int             `json:"baseTime"`
	Modifiers  []ModifierEntry `json:"modifiers"`
	Subtotal   int             `json:"subtotal"`
	Reasoning  []string        `json:"reasoning"`
	Confidence float64         `json:"confidence"`
	Category   string          `json:"category"`
}

// CategoryGroup 同分類項目的彙總
type CategoryGroup struct {
	Items     []BreakdownItem `json:"items"`
	TotalTime int             `json:"totalTime"`
}

// EstimateRange 依信心推得的時間區間
type EstimateRange struct {
	Min        int     `json:"min"`
	Max        int     `json:"max"`
	Confidence float64 `json:"confidence"`
}

// Result 清潔時間估算結果
type Result struct {
	TotalTime     int                       `json:"totalTime"`
	Breakdown     []BreakdownItem           `json:"breakdown"`
	Confidence    float64                   `json:"confidence"`
	Categories    map[string]*CategoryGroup `json:"categories"`
	EstimateRange EstimateRange             `json:"estimateRange"`
}
