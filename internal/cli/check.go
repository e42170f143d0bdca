package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"

	"resource-mapper/internal/diagnostic"
	"resource-mapper/mapping"
)

type checkResult struct {
	path  string
	count int
	diags *diagnostic.Diagnostics
	err   error
}

func newCheckCmd(a *app) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "check [schema.yaml...]",
		Short: "Validate resource schema files",
		Long: `Check loads every schema file, validates its field mapping tables and
constant sets, and reports each diagnostic. Without arguments the file given
with --schema is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				if a.opts.schema == "" {
					return errors.New("no schema files given")
				}

				paths = []string{a.opts.schema}
			}

			if noColor {
				color.NoColor = true
			}

			results := checkFiles(paths)

			invalid := 0

			for _, r := range results {
				if !printResult(cmd.OutOrStdout(), r) {
					invalid++
				}
			}

			a.logger.Debug("schemas checked", "files", len(results), "invalid", invalid)

			if invalid > 0 {
				return fmt.Errorf("%d of %d schema files invalid", invalid, len(results))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

// checkFiles loads and validates every path concurrently. Results keep the
// order of paths.
func checkFiles(paths []string) []checkResult {
	results := make([]checkResult, len(paths))

	var wg conc.WaitGroup

	for i, path := range paths {
		wg.Go(func() {
			results[i] = checkFile(path)
		})
	}

	wg.Wait()

	return results
}

func checkFile(path string) checkResult {
	sf, err := mapping.LoadFile(path)
	if err != nil {
		return checkResult{path: path, err: err}
	}

	return checkResult{path: path, count: len(sf.Resources), diags: mapping.Validate(sf)}
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	okColor      = color.New(color.FgGreen)
)

// printResult writes one line per diagnostic and reports whether the file
// is valid.
func printResult(w io.Writer, r checkResult) bool {
	if r.err != nil {
		fmt.Fprintf(w, "%s: %s\n", r.path, errorColor.Sprint(r.err))
		return false
	}

	for _, d := range r.diags.All() {
		c := infoColor

		switch d.Severity {
		case diagnostic.DiagnosticError:
			c = errorColor
		case diagnostic.DiagnosticWarning:
			c = warningColor
		}

		fmt.Fprintf(w, "%s: %s %s\n", r.path, c.Sprint(d.Severity), d)
	}

	if r.diags.HasErrors() {
		return false
	}

	fmt.Fprintf(w, "%s: %s (%d resources)\n", r.path, okColor.Sprint("ok"), r.count)

	return true
}
