package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "buildmon",
	Short: "Building environment monitoring toolkit",
	Long:  "Buildmon samples building sensors, evaluates alert and compliance rules, and emits per-cycle snapshots.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(replayCmd)
}
