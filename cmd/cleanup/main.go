package main

import (
	"fmt"
	"os"

	"cleanup-estimator/internal/pkg/common"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Estimate kitchen cleanup time for a recipe",
	Long: `cleanup reads a recipe from a JSON file or a recipe URL, detects the
equipment it needs and estimates how long the dishes will take.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		common.InitConsoleLogger(level)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detection logs")
	rootCmd.AddCommand(estimateCmd, detectCmd, equipmentCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
