package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cleanup-estimator/internal/core/equipment"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	detectSource recipeSource
	showMentions bool
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "List the equipment detected in a recipe",
	RunE: func(cmd *cobra.Command, args []string) error {
		recipe, err := detectSource.load(cmd.Context())
		if err != nil {
			return err
		}

		instances := equipment.Detect(recipe)
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if showMentions {
				return enc.Encode(map[string]interface{}{
					"equipment":  instances,
					"statistics": equipment.Debug(recipe),
				})
			}
			return enc.Encode(instances)
		}

		printInstances(cmd.OutOrStdout(), recipe.Title, instances)
		if showMentions {
			printMentions(cmd.OutOrStdout(), equipment.Debug(recipe))
		}
		return nil
	},
}

func init() {
	detectSource.register(detectCmd)
	detectCmd.Flags().BoolVar(&showMentions, "mentions", false, "Also print every scanned mention")
	detectCmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw result as JSON")
}

func printInstances(w io.Writer, title string, instances []equipment.Instance) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(w, "\n%s\n\n", cyan(fmt.Sprintf("=== %s: %d item(s) ===", title, len(instances))))
	for _, inst := range instances {
		confidence := color.New(color.FgGreen)
		if inst.Confidence < 0.7 {
			confidence = color.New(color.FgYellow)
		}
		fmt.Fprintf(w, "  %-28s ×%d  %s  %s\n",
			equipment.DisplayName(inst.Type),
			inst.Quantity,
			confidence.Sprintf("%.2f", inst.Confidence),
			faint(string(inst.Complexity.Base)),
		)
		if len(inst.UsagePatterns) > 0 {
			fmt.Fprintf(w, "    %s\n", faint("usage: "+strings.Join(inst.UsagePatterns, ", ")))
		}
		for _, r := range inst.Reasoning {
			fmt.Fprintf(w, "    %s\n", faint(r))
		}
	}
	fmt.Fprintln(w)
}

func printMentions(w io.Writer, info equipment.DebugInfo) {
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(w, "%s %d mentions, %d unique types\n", yellow("Scan:"), info.TotalMentions, info.UniqueEquipmentTypes)
	for _, m := range info.Mentions {
		fmt.Fprintf(w, "  [%s] %s %q\n", m.Source, m.EquipmentType, m.MatchedTerm)
	}
	fmt.Fprintln(w)
}
