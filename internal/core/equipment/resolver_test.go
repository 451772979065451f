package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_HigherConfidenceReplaces(t *testing.T) {
	out := Resolve([]Instance{
		{Type: "mixing_bowl", Quantity: 3, Confidence: 0.5, Reasoning: []string{"a"}},
		{Type: "mixing_bowl", Quantity: 1, Confidence: 0.7, Reasoning: []string{"b"}},
	})

	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].Quantity)
	assert.Equal(t, 0.7, out[0].Confidence)
	assert.Equal(t, []string{"b"}, out[0].Reasoning)
}

func TestResolve_LowerConfidenceIgnored(t *testing.T) {
	out := Resolve([]Instance{
		{Type: "mixing_bowl", Quantity: 1, Confidence: 0.95, Reasoning: []string{"a"}},
		{Type: "mixing_bowl", Quantity: 4, Confidence: 0.7, Reasoning: []string{"b"}},
	})

	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].Quantity)
	assert.Equal(t, []string{"a"}, out[0].Reasoning)
}

func TestResolve_EqualConfidenceMerges(t *testing.T) {
	out := Resolve([]Instance{
		{Type: "whisk", Quantity: 1, Confidence: 0.75, Reasoning: []string{"a", "b"}},
		{Type: "whisk", Quantity: 2, Confidence: 0.75, Reasoning: []string{"b", "c"}},
	})

	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].Quantity)
	assert.Equal(t, []string{"a", "b", "c"}, out[0].Reasoning)
}

func TestResolve_PanSpecificity(t *testing.T) {
	out := Resolve([]Instance{
		{Type: "frying_pan", Quantity: 1, Confidence: 0.95},
		{Type: "wok", Quantity: 1, Confidence: 0.7},
		{Type: "cast_iron_pan", Quantity: 2, Confidence: 0.95},
	})

	assert.Equal(t, []string{"wok", "cast_iron_pan"}, typesOf(out))
}

func TestResolve_EqualSpecificityPansKept(t *testing.T) {
	out := Resolve([]Instance{
		{Type: "frying_pan", Quantity: 1, Confidence: 0.95},
		{Type: "skillet", Quantity: 1, Confidence: 0.75},
	})

	assert.Equal(t, []string{"frying_pan", "skillet"}, typesOf(out))
}

func TestResolve_OneInstancePerType(t *testing.T) {
	out := Resolve([]Instance{
		{Type: "a", Confidence: 0.5}, {Type: "b", Confidence: 0.5}, {Type: "a", Confidence: 0.9},
		{Type: "c", Confidence: 0.1}, {Type: "b", Confidence: 0.5},
	})

	assert.Equal(t, []string{"a", "b", "c"}, typesOf(out))
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	in := []Instance{
		{Type: "whisk", Quantity: 1, Confidence: 0.75, Reasoning: []string{"a"}},
		{Type: "whisk", Quantity: 2, Confidence: 0.75, Reasoning: []string{"b"}},
	}
	Resolve(in)

	assert.Equal(t, 1, in[0].Quantity)
	assert.Equal(t, []string{"a"}, in[0].Reasoning)
}
