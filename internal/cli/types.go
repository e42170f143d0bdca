package cli

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"resource-mapper/mapping"
	"resource-mapper/resource"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered resource types and their field mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(); err != nil {
				return err
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeaderAutoFormat(tw.Off),
			)
			table.Header("Type", "Wire", "Local", "Constants")

			for _, id := range a.registry.TypeIDs() {
				def, _ := a.registry.Lookup(id)

				var rows [][]string

				def.Fields().Each(func(p mapping.Pair) bool {
					rows = append(rows, []string{id, p.Wire, p.Local, constantsOf(def, p.Local)})
					return true
				})

				if err := table.Bulk(rows); err != nil {
					return err
				}
			}

			return table.Render()
		},
	}
}

func constantsOf(def resource.Definition, local string) string {
	cs, ok := def.Constants(local)
	if !ok {
		return ""
	}

	return cs.Name() + " (" + strings.Join(preview(cs.Tokens(), 3), ", ") + ")"
}

// preview returns the first n tokens, with an ellipsis when there are more.
func preview(tokens []string, n int) []string {
	if len(tokens) <= n {
		return tokens
	}

	return append(tokens[:n:n], "…")
}
