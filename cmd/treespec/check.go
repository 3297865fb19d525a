package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/treespec/pkg/schema"
)

var checkSchemaPath string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compile a schema without validating any documents",
	Long:  `Compiles the schema and reports construction errors. Exits non-zero when the schema is malformed.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.NoColor {
			color.NoColor = true
		}

		if _, err := schema.ParseFile(checkSchemaPath); err != nil {
			return fmt.Errorf("schema %s: %w", checkSchemaPath, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", fileColor.Sprint(checkSchemaPath), okColor.Sprint("ok"))
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkSchemaPath, "schema", "s", "", "path to the YAML schema (required)")
	_ = checkCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(checkCmd)
}
