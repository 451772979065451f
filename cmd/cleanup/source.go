package main

import (
	"context"
	"fmt"
	"os"

	"cleanup-estimator/internal/core/scraper"
	"cleanup-estimator/internal/infrastructure/config"
	"cleanup-estimator/internal/pkg/common"

	"github.com/spf13/cobra"
)

// recipeSource --file / --url 旗標
type recipeSource struct {
	file string
	url  string
}

func (s *recipeSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "file", "f", "", "Recipe JSON file (title, ingredients, instructions)")
	cmd.Flags().StringVarP(&s.url, "url", "u", "", "Recipe page URL to scrape")
	cmd.MarkFlagsMutuallyExclusive("file", "url")
	cmd.MarkFlagsOneRequired("file", "url")
}

// load 讀取檔案或抓取網址
func (s *recipeSource) load(ctx context.Context) (common.RecipeRecord, error) {
	if s.file != "" {
		return readRecipeFile(s.file)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return common.RecipeRecord{}, err
	}
	return scraper.New(cfg.Scraper).Scrape(ctx, s.url)
}

func readRecipeFile(path string) (common.RecipeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return common.RecipeRecord{}, fmt.Errorf("failed to read recipe file: %w", err)
	}

	var recipe common.RecipeRecord
	if err := common.ParseJSONBytes(data, &recipe); err != nil {
		return common.RecipeRecord{}, fmt.Errorf("failed to parse recipe file: %w", err)
	}
	if recipe.IsEmpty() {
		return common.RecipeRecord{}, fmt.Errorf("recipe file has no ingredients or instructions")
	}
	if recipe.Title == "" {
		recipe.Title = "Unknown Recipe"
	}
	return recipe, nil
}
