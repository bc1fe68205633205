// Package cmd wires cobra flags into a config.Params and drives a single
// designer run, grounded on the same root-command-plus-subcommand shape the
// example corpus's other cobra-based CLIs use.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "layernet",
	Short:   "Multi-layer optical transport network topology designer",
	Long:    `layernet assigns demand lightpaths over a physical topology and iteratively collapses frequent sub-routes into lower-granularity cross-connect bypasses, subject to a fiber-growth budget.`,
	Version: "0.1.0",
}

// Execute runs the CLI's selected subcommand.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("layernet version " + rootCmd.Version)
	},
}
