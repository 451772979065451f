package cleanup

import (
	"testing"

	"cleanup-estimator/internal/core/equipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instance(equipmentType string, quantity int, confidence float64, modifiers ...string) equipment.Instance {
	inst := equipment.Instance{
		Type:          equipmentType,
		Quantity:      quantity,
		UsagePatterns: []string{},
		Complexity:    equipment.Complexity{Modifiers: []equipment.ComplexityModifier{}},
		Confidence:    confidence,
		Reasoning:     []string{},
	}
	for _, m := range modifiers {
		inst.UsagePatterns = append(inst.UsagePatterns, m)
		inst.Complexity.Modifiers = append(inst.Complexity.Modifiers, equipment.ComplexityModifier{
			Type:        m,
			Description: equipment.ModifierDescription(m),
		})
	}
	inst.Complexity.Base = equipment.ComplexityFor(len(modifiers))
	return inst
}

func itemNamed(t *testing.T, result Result, name string) BreakdownItem {
	t.Helper()
	for _, item := range result.Breakdown {
		if item.Item == name {
			return item
		}
	}
	require.Failf(t, "missing breakdown item", "%s not in breakdown", name)
	return BreakdownItem{}
}

func hasItem(result Result, name string) bool {
	for _, item := range result.Breakdown {
		if item.Item == name {
			return true
		}
	}
	return false
}

func TestCalculate_EmptyRecipe(t *testing.T) {
	result := Calculate(nil, DefaultPreferences())

	assert.Equal(t, 55, result.TotalTime)
	assert.Equal(t, 0.5, result.Confidence)
	require.Len(t, result.Breakdown, 2)
	assert.Equal(t, "Counter wiping", result.Breakdown[0].Item)
	assert.Equal(t, "Sink cleanup", result.Breakdown[1].Item)
	assert.Equal(t, EstimateRange{Min: 39, Max: 72, Confidence: 0.5}, result.EstimateRange)

	require.Contains(t, result.Categories, "general")
	assert.Equal(t, 55, result.Categories["general"].TotalTime)
}

func TestCalculate_DishwasherReduction(t *testing.T) {
	result := Calculate([]equipment.Instance{instance("mixing_bowl", 1, 1.0)},
		Preferences{HasDishwasher: true})

	bowl := itemNamed(t, result, "Mixing Bowl")
	assert.Equal(t, 24, bowl.Subtotal, "0.4 × base time")
	assert.Equal(t, []ModifierEntry{{Name: "Dishwasher safe", Time: -36, Type: KindPreference}}, bowl.Modifiers)
}

func TestCalculate_PartialDishwasher(t *testing.T) {
	result := Calculate([]equipment.Instance{instance("mandoline", 1, 1.0)},
		Preferences{HasDishwasher: true})

	mandoline := itemNamed(t, result, "Mandoline")
	assert.Equal(t, 126, mandoline.Subtotal)
	assert.Equal(t, "Partially dishwasher safe", mandoline.Modifiers[0].Name)
	assert.Equal(t, -54, mandoline.Modifiers[0].Time)
}

func TestCalculate_DishwasherIgnoredForHandWash(t *testing.T) {
	result := Calculate([]equipment.Instance{instance("cast_iron_pan", 1, 1.0)},
		Preferences{HasDishwasher: true})

	pan := itemNamed(t, result, "Cast Iron Pan")
	assert.Equal(t, 285, pan.Subtotal)
	assert.Equal(t, []ModifierEntry{{Name: "Cast iron maintenance", Time: 45, Type: KindMaterial}}, pan.Modifiers)
}

func TestCalculate_CleaningStyle(t *testing.T) {
	tests := []struct {
		style    CleaningStyle
		subtotal int
		logged   []ModifierEntry
	}{
		{StyleQuick, 42, []ModifierEntry{{Name: "Quick cleaning style", Time: -18, Type: KindPreference}}},
		{StyleNormal, 60, []ModifierEntry{}},
		{StyleThorough, 84, []ModifierEntry{{Name: "Thorough cleaning style", Time: 24, Type: KindPreference}}},
		{"", 60, []ModifierEntry{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			result := Calculate([]equipment.Instance{instance("mixing_bowl", 1, 1.0)}, Preferences{CleaningStyle: tt.style})

			bowl := itemNamed(t, result, "Mixing Bowl")
			assert.Equal(t, tt.subtotal, bowl.Subtotal)
			assert.Equal(t, tt.logged, bowl.Modifiers)
		})
	}
}

func TestCalculate_SoakingOnlyForCookware(t *testing.T) {
	result := Calculate([]equipment.Instance{
		instance("saucepan", 1, 1.0),
		instance("mixing_bowl", 1, 1.0),
	}, Preferences{SoakingPreference: true})

	assert.Equal(t, 240, itemNamed(t, result, "Saucepan").Subtotal)
	assert.Equal(t, 60, itemNamed(t, result, "Mixing Bowl").Subtotal)
}

func TestCalculate_PipelineOrder(t *testing.T) {
	inst := instance("saucepan", 2, 0.95, "sticky_sauce")
	result := Calculate([]equipment.Instance{inst}, Preferences{
		HasDishwasher:     true,
		CleaningStyle:     StyleThorough,
		SoakingPreference: true,
	})

	pan := itemNamed(t, result, "Saucepan")
	// (120×2 + 120) → −60% → ×1.4 → +120 → ×1.01
	assert.Equal(t, 325, pan.Subtotal)
	assert.Equal(t, []ModifierEntry{
		{Name: "Sticky or caramelized substances that require extra scrubbing", Time: 120, Type: KindComplexity},
		{Name: "Dishwasher safe", Time: -216, Type: KindPreference},
		{Name: "Thorough cleaning style", Time: 144, Type: KindPreference},
		{Name: "Soaking time included", Time: 120, Type: KindPreference},
	}, pan.Modifiers)
	assert.Equal(t, []string{"2 items detected", "Complexity factors: sticky_sauce"}, pan.Reasoning)
	assert.Equal(t, 120, pan.BaseTime)
	assert.Equal(t, 2, pan.Quantity)
	assert.Equal(t, "cookware", pan.Category)
}

func TestCalculate_ConfidencePenalty(t *testing.T) {
	result := Calculate([]equipment.Instance{instance("mixing_bowl", 1, 0.5)}, DefaultPreferences())

	assert.Equal(t, 66, itemNamed(t, result, "Mixing Bowl").Subtotal)
	assert.Equal(t, 0.5, result.Confidence)
}

func TestCalculate_GeneralTaskGating(t *testing.T) {
	result := Calculate([]equipment.Instance{instance("mixing_bowl", 1, 1.0)}, DefaultPreferences())
	assert.False(t, hasItem(result, "Stovetop cleaning"))
	assert.False(t, hasItem(result, "Floor sweeping"))
	assert.True(t, hasItem(result, "Counter wiping"))
	assert.True(t, hasItem(result, "Sink cleanup"))

	result = Calculate([]equipment.Instance{
		instance("wok", 1, 1.0),
		instance("mixing_bowl", 1, 1.0, "dough_work"),
	}, DefaultPreferences())
	assert.True(t, hasItem(result, "Stovetop cleaning"))
	floor := itemNamed(t, result, "Floor sweeping")
	assert.Equal(t, 60, floor.Subtotal)
	assert.Equal(t, 1.0, floor.Confidence)
	assert.Equal(t, "general", floor.Category)
}

func TestCalculate_UnknownTypeSkipped(t *testing.T) {
	result := Calculate([]equipment.Instance{
		instance("flux_capacitor", 1, 0.5),
		instance("mixing_bowl", 1, 1.0),
	}, DefaultPreferences())

	assert.Len(t, result.Breakdown, 3)
	assert.Equal(t, 60+55, result.TotalTime)
	assert.Equal(t, 0.75, result.Confidence)
}

func TestCalculate_TotalUsesUnroundedSubtotals(t *testing.T) {
	// 35 × 1.04 = 36.4，三個合計 109.2
	insts := []equipment.Instance{
		instance("whisk", 1, 0.8),
		instance("whisk", 1, 0.8),
		instance("whisk", 1, 0.8),
	}
	result := Calculate(insts, DefaultPreferences())

	assert.Equal(t, 36, result.Breakdown[0].Subtotal)
	assert.Equal(t, 109+55, result.TotalTime)
}

func TestCalculate_Categories(t *testing.T) {
	result := Calculate([]equipment.Instance{
		instance("wok", 1, 1.0),
		instance("saucepan", 1, 1.0),
		instance("whisk", 1, 1.0),
	}, DefaultPreferences())

	require.Contains(t, result.Categories, "cookware")
	assert.Len(t, result.Categories["cookware"].Items, 2)
	assert.Equal(t, 150+120, result.Categories["cookware"].TotalTime)
	assert.Equal(t, 35, result.Categories["utensils"].TotalTime)
	assert.Equal(t, 30+45+25, result.Categories["general"].TotalTime)
}

func TestGroupByCategory_DefaultsToOther(t *testing.T) {
	groups := groupByCategory([]BreakdownItem{{Item: "Mystery", Subtotal: 10}})

	require.Contains(t, groups, "other")
	assert.Equal(t, 10, groups["other"].TotalTime)
}

func TestEstimateRange_WidensWithLowerConfidence(t *testing.T) {
	prevWidth := -1
	for _, c := range []float64{1.0, 0.9, 0.75, 0.5, 0.25, 0} {
		r := estimateRange(600, c)
		assert.LessOrEqual(t, r.Min, 600)
		assert.GreaterOrEqual(t, r.Max, 600)

		width := r.Max - r.Min
		assert.GreaterOrEqual(t, width, prevWidth, "confidence %.2f", c)
		prevWidth = width
	}

	assert.Equal(t, EstimateRange{Min: 540, Max: 660, Confidence: 1}, estimateRange(600, 1))
	assert.Equal(t, EstimateRange{Min: 300, Max: 900, Confidence: 0}, estimateRange(600, 0))
}

func TestOverallConfidence(t *testing.T) {
	assert.Equal(t, 0.5, overallConfidence(nil))
	assert.Equal(t, 0.82, overallConfidence([]equipment.Instance{
		{Confidence: 0.95}, {Confidence: 0.7}, {Confidence: 0.8},
	}))
}

func TestCalculate_DetectedRecipe(t *testing.T) {
	instances := equipment.DetectText("heat 2 large pans. sauté the onions in a cast iron skillet until they caramelize.")
	result := Calculate(instances, DefaultPreferences())

	pan := itemNamed(t, result, "Cast Iron Pan")
	assert.Equal(t, 2, pan.Quantity)
	assert.Contains(t, pan.Reasoning, "2 items detected")
	assert.True(t, hasItem(result, "Stovetop cleaning"))
	assert.Greater(t, result.TotalTime, pan.Subtotal)
}
