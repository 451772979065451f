package equipment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// concurrentWindow 同時烹調字詞與設備證據的最大距離（位元組）
const concurrentWindow = 200

// genericNames 任何設備都會一併比對的通稱
var genericNames = []string{"pan", "pot", "bowl", "knife", "dish"}

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"a pair": 2,
}

// Group 同一設備類型的證據彙整
type Group struct {
	Type       string    `json:"type"`
	Mentions   []Mention `json:"mentions"`
	Quantity   int       `json:"quantity"`
	Confidence float64   `json:"confidence"`
	Reasoning  []string  `json:"reasoning"`
}

// quantityPatterns 單一設備類型的數量偵測規則
type quantityPatterns struct {
	explicit   []*regexp.Regexp
	separating []*regexp.Regexp
	sizes      *regexp.Regexp
}

var quantityRules = func() map[string]*quantityPatterns {
	rules := make(map[string]*quantityPatterns)
	for _, t := range PatternTypes() {
		rules[t] = buildQuantityPatterns(t)
	}
	return rules
}()

func quantityPatternsFor(equipmentType string) *quantityPatterns {
	if p, ok := quantityRules[equipmentType]; ok {
		return p
	}
	return buildQuantityPatterns(equipmentType)
}

func buildQuantityPatterns(equipmentType string) *quantityPatterns {
	names := append([]string{strings.ReplaceAll(equipmentType, "_", " ")}, genericNames...)

	p := &quantityPatterns{}
	quoted := make([]string, len(names))
	for i, name := range names {
		q := regexp.QuoteMeta(name)
		quoted[i] = q
		p.explicit = append(p.explicit,
			regexp.MustCompile(`(?i)(\d+)\s*(?:large |medium |small |)`+q),
			regexp.MustCompile(`(?i)(two|three|four|five)\s*`+q),
			regexp.MustCompile(`(?i)(a pair) of\s*`+q),
		)
	}
	alternation := strings.Join(quoted, "|")

	for _, word := range SeparatingWords {
		p.separating = append(p.separating,
			regexp.MustCompile(`(?i)`+regexp.QuoteMeta(word)+`\s*(?:`+alternation+`)`))
	}

	sizes := make([]string, len(SizeDescriptors))
	for i, s := range SizeDescriptors {
		sizes[i] = regexp.QuoteMeta(s)
	}
	p.sizes = regexp.MustCompile(`(?i)(` + strings.Join(sizes, "|") + `)\s*(?:` + alternation + `)`)
	return p
}

func parseQuantity(s string) int {
	lower := strings.ToLower(s)
	if n, ok := numberWords[lower]; ok {
		return n
	}
	n, err := strconv.Atoi(lower)
	if err != nil {
		return 1
	}
	return n
}

// Aggregate 依設備類型彙整證據並推估數量，順序為類型首次出現的順序
func Aggregate(mentions []Mention, text string) []Group {
	var order []string
	byType := make(map[string]*Group)
	for _, m := range mentions {
		g, ok := byType[m.EquipmentType]
		if !ok {
			g = &Group{Type: m.EquipmentType, Quantity: 1}
			byType[m.EquipmentType] = g
			order = append(order, m.EquipmentType)
		}
		g.Mentions = append(g.Mentions, m)
		if m.Confidence > g.Confidence {
			g.Confidence = m.Confidence
		}
	}

	groups := make([]Group, 0, len(order))
	for _, t := range order {
		g := byType[t]
		quantity, reasons := detectQuantity(t, text, g.Mentions)
		g.Quantity = quantity

		var reasoning []string
		for _, m := range g.Mentions {
			if m.Context != "" {
				reasoning = append(reasoning, fmt.Sprintf("Found in recipe: \"%s\"", m.Context))
				break
			}
		}
		g.Reasoning = appendUnique(reasoning, reasons...)
		if g.Reasoning == nil {
			g.Reasoning = []string{}
		}
		groups = append(groups, *g)
	}
	return groups
}

// detectQuantity 推估某類設備需要幾件，最少為 1
func detectQuantity(equipmentType, text string, mentions []Mention) (int, []string) {
	quantity := 1
	var reasoning []string
	rules := quantityPatternsFor(equipmentType)

	// 明確數量：每個規則只看第一個匹配
	for _, re := range rules.explicit {
		sub := re.FindStringSubmatch(text)
		if sub == nil {
			continue
		}
		if n := parseQuantity(sub[1]); n > quantity {
			quantity = n
			reasoning = append(reasoning, fmt.Sprintf("Explicit quantity mentioned: \"%s\"", sub[0]))
		}
	}

	for i, re := range rules.separating {
		if re.MatchString(text) {
			quantity = max(quantity, 2)
			reasoning = append(reasoning, fmt.Sprintf("Separating word detected: \"%s\"", SeparatingWords[i]))
			break
		}
	}

	for _, word := range ConcurrentCooking {
		pos := strings.Index(text, word)
		if pos < 0 {
			continue
		}
		if nearAny(pos, mentions) {
			quantity = max(quantity, 2)
			reasoning = append(reasoning, fmt.Sprintf("Concurrent cooking detected: \"%s\"", word))
			break
		}
	}

	var sizes []string
	seen := make(map[string]bool)
	for _, sub := range rules.sizes.FindAllStringSubmatch(text, -1) {
		size := strings.ToLower(sub[1])
		if !seen[size] {
			seen[size] = true
			sizes = append(sizes, size)
		}
	}
	if len(sizes) > 1 {
		quantity = max(quantity, len(sizes))
		reasoning = append(reasoning, "Multiple sizes detected: "+strings.Join(sizes, ", "))
	}

	return quantity, reasoning
}

func nearAny(pos int, mentions []Mention) bool {
	for _, m := range mentions {
		if !m.HasPosition() {
			continue
		}
		d := pos - m.Position
		if d < 0 {
			d = -d
		}
		if d < concurrentWindow {
			return true
		}
	}
	return false
}

// appendUnique 附加尚未出現過的字串
func appendUnique(dst []string, items ...string) []string {
	for _, item := range items {
		dup := false
		for _, existing := range dst {
			if existing == item {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, item)
		}
	}
	return dst
}
