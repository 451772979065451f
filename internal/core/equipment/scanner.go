package equipment

// compiledEntry 預先編譯好的一組詞彙
type compiledEntry struct {
	equipmentType string
	matchers      []*termMatcher
}

// evidenceGroup 一種證據來源與其詞彙表
type evidenceGroup struct {
	source     Source
	confidence float64
	// positional 為 true 時記錄每一次出現，否則只檢查是否存在
	positional bool
	entries    []compiledEntry
}

var evidenceGroups = []evidenceGroup{
	{SourceDirectMention, ConfidenceDirect, true, compileEntries(DirectMentions)},
	{SourceTechniqueMapping, ConfidenceTechnique, true, compileEntries(TechniqueMappings)},
	{SourceIngredientPattern, ConfidenceIngredient, false, compileEntries(IngredientPatterns)},
	{SourceCulturalIndicator, ConfidenceCultural, false, compileEntries(CulturalIndicators)},
}

func compileEntries(entries []PatternEntry) []compiledEntry {
	out := make([]compiledEntry, 0, len(entries))
	for _, e := range entries {
		ce := compiledEntry{equipmentType: e.Type}
		for _, term := range e.Terms {
			ce.matchers = append(ce.matchers, newTermMatcher(term))
		}
		out = append(out, ce)
	}
	return out
}

// Scan 掃描已正規化（小寫）的食譜文字，產生所有設備證據
//
// 輸出順序：來源層級 → 詞彙表順序 → 詞彙順序 → 出現位置。
func Scan(text string) []Mention {
	mentions := make([]Mention, 0)
	for _, group := range evidenceGroups {
		for _, entry := range group.entries {
			for _, m := range entry.matchers {
				if !group.positional {
					if m.contains(text) {
						mentions = append(mentions, Mention{
							EquipmentType: entry.equipmentType,
							MatchedTerm:   m.term,
							Position:      UnknownPosition,
							Confidence:    group.confidence,
							Source:        group.source,
						})
					}
					continue
				}

				for _, hit := range m.findAll(text) {
					mention := Mention{
						EquipmentType: entry.equipmentType,
						MatchedTerm:   hit.text,
						Position:      hit.start,
						Confidence:    group.confidence,
						Source:        group.source,
					}
					if group.source == SourceDirectMention {
						mention.Context = snippet(text, hit.start, hit.end)
					}
					mentions = append(mentions, mention)
				}
			}
		}
	}
	return mentions
}
