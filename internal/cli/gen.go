package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"resource-mapper/internal/gen"
	"resource-mapper/mapping"
)

func newGenCmd(a *app) *cobra.Command {
	config := gen.DefaultGeneratorConfig()
	config.OutputDir = "."

	var noComments bool

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go declarations from a resource schema",
		Long: `Gen writes one <name>_gen.go file per resource declared in --schema, holding
its mapping table, resource type and constant sets, plus registry_gen.go.`,
		Example: `  resource-mapper gen --schema connectapi/schema.yaml --out connectapi`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.opts.schema == "" {
				return errors.New("gen requires --schema")
			}

			sf, err := mapping.LoadFile(a.opts.schema)
			if err != nil {
				return err
			}

			config.GenerateComments = !noComments

			files, err := gen.NewGenerator(config).Generate(sf)
			if err != nil {
				return err
			}

			if err := gen.WriteFiles(files, config.OutputDir); err != nil {
				return err
			}

			for _, f := range files {
				a.logger.Info("generated", "file", f.Filename, "dir", config.OutputDir)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "generated %d files in %s\n", len(files), config.OutputDir)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&config.OutputDir, "out", "o", config.OutputDir, "output directory")
	flags.StringVar(&config.PackageName, "package", config.PackageName, "package name when the schema names none")
	flags.StringVar(&config.ModulePath, "module", config.ModulePath, "import path prefix of the mapping and resource packages")
	flags.BoolVar(&noComments, "no-comments", false, "omit doc comments on generated declarations")

	return cmd
}
