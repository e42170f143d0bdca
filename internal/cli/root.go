// Package cli implements the resource-mapper command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"resource-mapper/connectapi"
	"resource-mapper/internal/logging"
	"resource-mapper/mapping"
	"resource-mapper/options"
	"resource-mapper/resource"
)

// app is the state shared by every subcommand, built before it runs.
type app struct {
	logger   *slog.Logger
	registry *resource.Registry
	codec    *resource.Codec
	closer   io.Closer
	opts     *rootOptions
}

type rootOptions struct {
	verbose  bool
	logFile  string
	schema   string
	features []string
}

// NewRootCmd returns the resource-mapper command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	a := &app{}

	root := &cobra.Command{
		Use:   "resource-mapper",
		Short: "Convert JSON:API resources between wire and local form",
		Long: `resource-mapper converts JSON:API style {type, id, attributes} resources
between their wire form and local attribute names, driven by declarative
field mapping tables.

Types come from the built-in App Store Connect declarations, or from a YAML
schema file given with --schema.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(opts)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}

			return nil
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output, including ignored wire keys")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to a rotated file instead of stderr")
	flags.StringVarP(&opts.schema, "schema", "s", "", "YAML schema file declaring the resource types")
	flags.StringSliceVar(&opts.features, "features", []string{"default"},
		fmt.Sprintf("codec features: all, none, default or any of %v, '-' prefix removes", options.FeatureNames()))

	root.AddCommand(
		newDecodeCmd(a),
		newEncodeCmd(a),
		newCheckCmd(a),
		newGenCmd(a),
		newTypesCmd(a),
	)

	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) init(opts *rootOptions) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}

	a.logger, a.closer = logging.Setup(logging.Options{Level: level, File: opts.logFile})
	a.opts = opts

	return nil
}

// load builds the registry and codec. Only commands that convert resources
// call it, so check and gen work on schemas that do not load.
func (a *app) load() error {
	features, err := options.ParseFeatures(a.opts.features)
	if err != nil {
		return err
	}

	a.registry = connectapi.Registry()

	if a.opts.schema != "" {
		sf, err := mapping.LoadFile(a.opts.schema)
		if err != nil {
			return err
		}

		if a.registry, err = resource.RegistryFromSchema(sf); err != nil {
			return fmt.Errorf("%s: %w", a.opts.schema, err)
		}
	}

	a.logger.Debug("codec ready", "types", a.registry.Len(), "features", features.String())
	a.codec = resource.NewCodec(
		resource.WithRegistry(a.registry),
		resource.WithFeatures(features),
		resource.WithLogger(a.logger),
	)

	return nil
}
