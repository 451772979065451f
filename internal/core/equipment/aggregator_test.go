package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_GroupsInFirstSeenOrder(t *testing.T) {
	mentions := []Mention{
		{EquipmentType: "whisk", Position: 3, Confidence: ConfidenceTechnique, Source: SourceTechniqueMapping},
		{EquipmentType: "wok", Position: UnknownPosition, Confidence: ConfidenceCultural, Source: SourceCulturalIndicator},
		{EquipmentType: "whisk", Position: 10, Confidence: ConfidenceDirect, Source: SourceDirectMention, Context: "...whisk..."},
	}

	groups := Aggregate(mentions, "to whisk a whisk")

	require.Len(t, groups, 2)
	assert.Equal(t, "whisk", groups[0].Type)
	assert.Equal(t, "wok", groups[1].Type)
	assert.Len(t, groups[0].Mentions, 2)
	assert.Equal(t, ConfidenceDirect, groups[0].Confidence)
	assert.Equal(t, 1, groups[0].Quantity)
	assert.Equal(t, []string{`Found in recipe: "...whisk..."`}, groups[0].Reasoning)
	assert.NotNil(t, groups[1].Reasoning)
	assert.Empty(t, groups[1].Reasoning)
}

func TestDetectQuantity(t *testing.T) {
	tests := []struct {
		name          string
		equipmentType string
		text          string
		mentions      []Mention
		wantQuantity  int
		wantReason    string
	}{
		{
			name:          "digits with size word",
			equipmentType: "cast_iron_pan",
			text:          "heat 2 large pans over medium heat",
			wantQuantity:  2,
			wantReason:    `Explicit quantity mentioned: "2 large pan"`,
		},
		{
			name:          "number word",
			equipmentType: "stockpot",
			text:          "bring three pots of water to a boil",
			wantQuantity:  3,
			wantReason:    `Explicit quantity mentioned: "three pot"`,
		},
		{
			name:          "a pair of",
			equipmentType: "mixing_bowl",
			text:          "you will need a pair of bowls",
			wantQuantity:  2,
			wantReason:    `Explicit quantity mentioned: "a pair of bowl"`,
		},
		{
			name:          "separating word",
			equipmentType: "mixing_bowl",
			text:          "whisk the eggs in a bowl, then sift flour into another bowl",
			wantQuantity:  2,
			wantReason:    `Separating word detected: "another"`,
		},
		{
			name:          "concurrent cooking near a mention",
			equipmentType: "frying_pan",
			text:          "heat the skillet. meanwhile, chop the herbs",
			mentions:      []Mention{{EquipmentType: "frying_pan", Position: 9}},
			wantQuantity:  2,
			wantReason:    `Concurrent cooking detected: "meanwhile"`,
		},
		{
			name:          "multiple sizes",
			equipmentType: "mixing_bowl",
			text:          "in a large bowl combine the dry ingredients; in a small bowl beat the eggs",
			wantQuantity:  2,
			wantReason:    "Multiple sizes detected: large, small",
		},
		{
			name:          "single size is not evidence",
			equipmentType: "mixing_bowl",
			text:          "in a large bowl combine everything",
			wantQuantity:  1,
		},
		{
			name:          "nothing",
			equipmentType: "whisk",
			text:          "whisk the eggs",
			wantQuantity:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quantity, reasoning := detectQuantity(tt.equipmentType, tt.text, tt.mentions)

			assert.Equal(t, tt.wantQuantity, quantity)
			if tt.wantReason != "" {
				assert.Contains(t, reasoning, tt.wantReason)
			} else {
				assert.Empty(t, reasoning)
			}
		})
	}
}

func TestDetectQuantity_ConcurrentNeedsPositionedMention(t *testing.T) {
	text := "meanwhile, make the sauce in a saucepan"

	quantity, _ := detectQuantity("wok", text, []Mention{{EquipmentType: "wok", Position: UnknownPosition}})
	assert.Equal(t, 1, quantity)

	quantity, _ = detectQuantity("saucepan", text, []Mention{{EquipmentType: "saucepan", Position: 31}})
	assert.Equal(t, 2, quantity)
}

func TestDetectQuantity_ConcurrentTooFar(t *testing.T) {
	filler := make([]byte, 250)
	for i := range filler {
		filler[i] = 'x'
	}
	text := "meanwhile " + string(filler) + " skillet"

	quantity, _ := detectQuantity("frying_pan", text, []Mention{{EquipmentType: "frying_pan", Position: len(text) - 7}})
	assert.Equal(t, 1, quantity)
}

func TestDetectQuantity_OnlyRaises(t *testing.T) {
	quantity, reasoning := detectQuantity("mixing_bowl", "use 3 bowls and 2 dishes", nil)

	assert.Equal(t, 3, quantity)
	assert.Equal(t, []string{`Explicit quantity mentioned: "3 bowl"`}, reasoning)
}

func TestQuantityPatternsFor_UnknownType(t *testing.T) {
	p := quantityPatternsFor("tortilla_press")
	require.NotNil(t, p)
	assert.True(t, p.explicit[0].MatchString("2 tortilla press"))
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 2, parseQuantity("two"))
	assert.Equal(t, 2, parseQuantity("A Pair"))
	assert.Equal(t, 12, parseQuantity("12"))
	assert.Equal(t, 1, parseQuantity("several"))
}
