package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"cleanup-estimator/internal/core/cleanup"
	"cleanup-estimator/internal/core/equipment"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	estimateSource recipeSource
	dishwasher     bool
	style          string
	soak           bool
	asJSON         bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate cleanup time for a recipe",
	Example: `  cleanup estimate --file pancakes.json --dishwasher
  cleanup estimate --url https://example.com/recipes/stew --style thorough --soak`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cleaningStyle, ok := cleanup.ParseStyle(style)
		if !ok {
			return fmt.Errorf("unknown style %q (quick, normal, thorough)", style)
		}

		recipe, err := estimateSource.load(cmd.Context())
		if err != nil {
			return err
		}

		prefs := cleanup.Preferences{
			HasDishwasher:     dishwasher,
			CleaningStyle:     cleaningStyle,
			SoakingPreference: soak,
		}
		result := cleanup.Calculate(equipment.Detect(recipe), prefs)

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}
		printEstimate(cmd.OutOrStdout(), recipe.Title, result)
		return nil
	},
}

func init() {
	estimateSource.register(estimateCmd)
	estimateCmd.Flags().BoolVar(&dishwasher, "dishwasher", false, "A dishwasher is available")
	estimateCmd.Flags().StringVar(&style, "style", "normal", "Cleaning style: quick, normal or thorough")
	estimateCmd.Flags().BoolVar(&soak, "soak", false, "Soak cookware before washing")
	estimateCmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw result as JSON")
}

// printEstimate 以表格形式輸出估算結果
func printEstimate(w io.Writer, title string, result cleanup.Result) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(w, "\n%s\n\n", cyan("=== "+title+" ==="))
	fmt.Fprintf(w, "Estimated cleanup: %s  %s\n",
		green(cleanup.FormatDuration(result.TotalTime)),
		faint(fmt.Sprintf("(%s to %s, confidence %.0f%%)",
			cleanup.FormatDuration(result.EstimateRange.Min),
			cleanup.FormatDuration(result.EstimateRange.Max),
			result.Confidence*100)),
	)

	categories := make([]string, 0, len(result.Categories))
	for name := range result.Categories {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	for _, name := range categories {
		group := result.Categories[name]
		fmt.Fprintf(w, "\n%s %s\n", yellow(strings.ToUpper(name[:1])+name[1:]), faint(cleanup.FormatDuration(group.TotalTime)))
		for _, item := range group.Items {
			label := item.Item
			if item.Quantity > 1 {
				label = fmt.Sprintf("%s ×%d", label, item.Quantity)
			}
			fmt.Fprintf(w, "  %-32s %s\n", label, cleanup.FormatDuration(item.Subtotal))
			for _, m := range item.Modifiers {
				sign := "+"
				if m.Time < 0 {
					sign = "-"
				}
				fmt.Fprintf(w, "    %s\n", faint(fmt.Sprintf("%s %s %s", sign, cleanup.FormatDuration(abs(m.Time)), m.Name)))
			}
		}
	}
	fmt.Fprintln(w)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
