// treespec validates JSON documents against declarative YAML schemas built
// on the spec validation engine.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "treespec",
	Short: "Validate JSON documents against declarative tree schemas",
	Long: `treespec checks decoded JSON documents against a YAML schema describing
the expected shape: scalars, bounded numbers, decimal strings, constrained
strings, and nested maps and lists. Violations are reported one per line
with the exact path inside the document.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
