package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/treespec/pkg/schema"
	"github.com/dmitrymomot/treespec/pkg/spec"
)

var (
	schemaPath string
	quiet      bool

	pathColor = color.New(color.FgYellow)
	fileColor = color.New(color.FgCyan, color.Bold)
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

var validateCmd = &cobra.Command{
	Use:   "validate [file ...]",
	Short: "Validate JSON documents against a schema",
	Long: `Decodes each JSON document and validates it against the schema. Use "-"
to read a document from stdin. Exits non-zero when any document fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)
		if cfg.NoColor {
			color.NoColor = true
		}

		s, err := schema.ParseFile(schemaPath)
		if err != nil {
			return fmt.Errorf("load schema %s: %w", schemaPath, err)
		}

		failed := false
		for _, path := range args {
			value, err := decodeDocument(path)
			if err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}

			if err := s.Validate(value); err != nil {
				failed = true
				logger.Debug("document failed validation", "file", path)
				if !quiet {
					printViolations(cmd.OutOrStdout(), path, err)
				}
				continue
			}
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", fileColor.Sprint(path), okColor.Sprint("ok"))
			}
		}

		if failed {
			return errors.New("validation failed")
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "path to the YAML schema (required)")
	validateCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-violation output")
	_ = validateCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(validateCmd)
}

// decodeDocument reads a JSON document from path, or stdin when path is "-".
// Numbers are decoded as json.Number so integer checks stay exact.
func decodeDocument(path string) (any, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

func printViolations(w io.Writer, path string, err error) {
	vs := spec.ExtractViolations(err)
	if vs == nil {
		fmt.Fprintf(w, "%s: %s\n", fileColor.Sprint(path), failColor.Sprint(err.Error()))
		return
	}
	for _, v := range vs {
		location := v.Path.String()
		if location == "" {
			fmt.Fprintf(w, "%s: %s\n", fileColor.Sprint(path), failColor.Sprint(v.Message))
			continue
		}
		fmt.Fprintf(w, "%s: %s: %s\n", fileColor.Sprint(path), pathColor.Sprint(location), failColor.Sprint(v.Message))
	}
}
