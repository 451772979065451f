package main

import (
	"fmt"
	"io"

	"cleanup-estimator/internal/core/cleanup"
	"cleanup-estimator/internal/core/equipment"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var categoryFilter string

var equipmentCmd = &cobra.Command{
	Use:   "equipment",
	Short: "List the equipment catalog by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories := equipment.Categories()
		if categoryFilter != "" {
			category := equipment.Category(categoryFilter)
			if len(equipment.ByCategory(category)) == 0 {
				return fmt.Errorf("unknown category %q", categoryFilter)
			}
			categories = []equipment.Category{category}
		}
		printCatalog(cmd.OutOrStdout(), categories)
		return nil
	},
}

func init() {
	equipmentCmd.Flags().StringVarP(&categoryFilter, "category", "c", "", "Only list one category")
}

func printCatalog(w io.Writer, categories []equipment.Category) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	for _, category := range categories {
		defs := equipment.ByCategory(category)
		fmt.Fprintf(w, "\n%s\n", yellow(string(category)))
		for _, t := range equipment.Types() {
			def, ok := defs[t]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "  %-28s %-12s %s\n",
				equipment.DisplayName(t),
				cleanup.FormatDuration(def.BaseTime),
				faint("dishwasher: "+dishwasherLabel(def.DishwasherSafe)),
			)
		}
	}
	fmt.Fprintln(w)
}

func dishwasherLabel(d equipment.DishwasherSafety) string {
	switch d {
	case equipment.DishwasherYes:
		return "yes"
	case equipment.DishwasherPartial:
		return "partial"
	default:
		return "no"
	}
}
