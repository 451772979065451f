package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeUsage_FirstIndicatorPerType(t *testing.T) {
	usage := AnalyzeUsage("sear the steak, then glaze with honey")

	assert.Equal(t, []string{"sticky_sauce", "burnt_potential"}, usage.Patterns)
	require.Len(t, usage.Complexity.Modifiers, 2)
	assert.Equal(t, ComplexityModifier{
		Type:        "sticky_sauce",
		Indicator:   "glaze",
		Description: "Sticky or caramelized substances that require extra scrubbing",
	}, usage.Complexity.Modifiers[0])
	assert.Equal(t, "sear", usage.Complexity.Modifiers[1].Indicator)
	assert.Equal(t, ComplexityMedium, usage.Complexity.Base)
}

func TestAnalyzeUsage_Empty(t *testing.T) {
	usage := AnalyzeUsage("boil water")

	assert.NotNil(t, usage.Patterns)
	assert.Empty(t, usage.Patterns)
	assert.NotNil(t, usage.Complexity.Modifiers)
	assert.Equal(t, ComplexityLow, usage.Complexity.Base)
}

func TestAnalyzeUsage_High(t *testing.T) {
	usage := AnalyzeUsage("knead the pizza dough, top with marinara and bake with milk")

	assert.Equal(t, []string{"dairy_burning", "tomato_staining", "dough_work"}, usage.Patterns)
	assert.Equal(t, ComplexityHigh, usage.Complexity.Base)
}

func TestComplexityFor(t *testing.T) {
	assert.Equal(t, ComplexityLow, ComplexityFor(0))
	assert.Equal(t, ComplexityMedium, ComplexityFor(1))
	assert.Equal(t, ComplexityMedium, ComplexityFor(2))
	assert.Equal(t, ComplexityHigh, ComplexityFor(3))
	assert.Equal(t, ComplexityHigh, ComplexityFor(9))
}

func TestModifierDescription(t *testing.T) {
	assert.Equal(t, "Raw meat handling requiring sanitization", ModifierDescription("raw_meat"))
	assert.Equal(t, "Additional cleaning complexity", ModifierDescription("glitter"))
	assert.Len(t, modifierDescriptions, len(ComplexityModifiers))
}

func TestInstanceFromGroup_DoesNotShareSlices(t *testing.T) {
	usage := AnalyzeUsage("caramelize")
	a := instanceFromGroup(Group{Type: "wok", Quantity: 1, Reasoning: []string{}}, usage)
	b := instanceFromGroup(Group{Type: "whisk", Quantity: 1, Reasoning: []string{}}, usage)

	a.UsagePatterns[0] = "changed"
	assert.Equal(t, "sticky_sauce", b.UsagePatterns[0])
	assert.Equal(t, "sticky_sauce", usage.Patterns[0])
}
