package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cleanup-estimator/internal/core/cleanup"
	"cleanup-estimator/internal/core/equipment"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pancakes = `{
  "title": "Pancakes",
  "ingredients": ["1 cup flour", "2 eggs", "1 cup milk"],
  "instructions": ["Whisk the batter in a large bowl.", "Cook on a hot griddle until golden."]
}`

func writeRecipe(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipe.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// 旗標是套件層級變數，每次執行前重設
	asJSON, dishwasher, soak, showMentions = false, false, false, false
	style, categoryFilter = "normal", ""
	estimateSource, detectSource = recipeSource{}, recipeSource{}
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEstimate_JSON(t *testing.T) {
	path := writeRecipe(t, pancakes)

	out, err := run(t, "estimate", "--file", path, "--json")
	require.NoError(t, err)

	var result cleanup.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Greater(t, result.TotalTime, 55)
	assert.LessOrEqual(t, result.EstimateRange.Min, result.TotalTime)
	assert.GreaterOrEqual(t, result.EstimateRange.Max, result.TotalTime)
}

func TestEstimate_Table(t *testing.T) {
	path := writeRecipe(t, pancakes)

	out, err := run(t, "estimate", "--file", path, "--dishwasher", "--style", "quick")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Pancakes ===")
	assert.Contains(t, out, "Estimated cleanup:")
	assert.Contains(t, out, "Counter wiping")
}

func TestEstimate_BadInput(t *testing.T) {
	path := writeRecipe(t, pancakes)

	_, err := run(t, "estimate", "--file", path, "--style", "sloppy")
	assert.ErrorContains(t, err, "unknown style")

	_, err = run(t, "estimate")
	assert.Error(t, err)

	_, err = run(t, "estimate", "--file", writeRecipe(t, `{"title":"Empty"}`))
	assert.ErrorContains(t, err, "no ingredients or instructions")
}

func TestDetect(t *testing.T) {
	path := writeRecipe(t, pancakes)

	out, err := run(t, "detect", "--file", path, "--json")
	require.NoError(t, err)

	var instances []equipment.Instance
	require.NoError(t, json.Unmarshal([]byte(out), &instances))
	assert.NotEmpty(t, instances)

	out, err = run(t, "detect", "--file", path, "--mentions")
	require.NoError(t, err)
	assert.Contains(t, out, "mentions")
}

func TestEquipment(t *testing.T) {
	out, err := run(t, "equipment", "--category", "cookware")
	require.NoError(t, err)
	assert.Contains(t, out, "Cast Iron Pan")
	assert.NotContains(t, out, "Cutting Board")

	_, err = run(t, "equipment", "--category", "spaceship")
	assert.ErrorContains(t, err, "unknown category")
}

func TestReadRecipeFile_DefaultTitle(t *testing.T) {
	recipe, err := readRecipeFile(writeRecipe(t, `{"ingredients":["salt"]}`))
	require.NoError(t, err)
	assert.Equal(t, "Unknown Recipe", recipe.Title)
}
