package equipment

import (
	"testing"

	"cleanup-estimator/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var skilletOnions = common.RecipeRecord{
	Title:       "Skillet Onions",
	Ingredients: []string{"2 onions", "1 tbsp butter"},
	Instructions: []string{
		"Heat 2 large pans.",
		"Sauté the onions in a cast iron skillet until they caramelize.",
	},
}

func find(instances []Instance, equipmentType string) *Instance {
	for i := range instances {
		if instances[i].Type == equipmentType {
			return &instances[i]
		}
	}
	return nil
}

func TestDetect_EndToEnd(t *testing.T) {
	instances := Detect(skilletOnions)

	pan := find(instances, "cast_iron_pan")
	require.NotNil(t, pan)
	assert.GreaterOrEqual(t, pan.Quantity, 2)
	assert.Equal(t, ConfidenceDirect, pan.Confidence)
	assert.NotEmpty(t, pan.Complexity.Modifiers)
	assert.Contains(t, pan.UsagePatterns, "sticky_sauce")
	assert.Contains(t, pan.Reasoning, `Explicit quantity mentioned: "2 large pan"`)

	assert.Nil(t, find(instances, "frying_pan"), "generic pan should yield to cast iron")
	assert.NotNil(t, find(instances, "cutting_board"))
	assert.NotNil(t, find(instances, "measuring_spoons"))
}

func TestDetect_Invariants(t *testing.T) {
	recipe := common.RecipeRecord{
		Title:       "Weeknight Stir Fry",
		Ingredients: []string{"1 lb chicken", "2 tbsp soy sauce", "3 cloves garlic, minced", "1 cup rice"},
		Instructions: []string{
			"Whisk the sauce in a small bowl.",
			"Meanwhile, heat the wok over high heat and stir-fry the chicken.",
			"Serve with steamed rice from the rice cooker.",
		},
	}

	instances := Detect(recipe)
	require.NotEmpty(t, instances)

	seen := make(map[string]bool)
	for _, inst := range instances {
		assert.False(t, seen[inst.Type], "duplicate %s", inst.Type)
		seen[inst.Type] = true

		_, ok := Lookup(inst.Type)
		assert.True(t, ok, inst.Type)
		assert.GreaterOrEqual(t, inst.Quantity, 1)
		assert.Equal(t, ComplexityFor(len(inst.Complexity.Modifiers)), inst.Complexity.Base)
		assert.NotNil(t, inst.UsagePatterns)
		assert.NotNil(t, inst.Reasoning)
	}

	assert.Equal(t, instances, Detect(recipe), "detection must be deterministic")
}

func TestDetect_Empty(t *testing.T) {
	instances := Detect(common.RecipeRecord{})
	assert.NotNil(t, instances)
	assert.Empty(t, instances)
}

func TestDebug(t *testing.T) {
	info := Debug(skilletOnions)

	assert.Equal(t, len(info.Mentions), info.TotalMentions)
	assert.Positive(t, info.MentionsBySource[SourceDirectMention])
	assert.Positive(t, info.MentionsBySource[SourceTechniqueMapping])

	total := 0
	for _, n := range info.MentionsBySource {
		total += n
	}
	assert.Equal(t, info.TotalMentions, total)
	assert.LessOrEqual(t, info.UniqueEquipmentTypes, info.TotalMentions)
}
