// Package cmd - units and functions commands
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"unitcalc/core/catalog"
	"unitcalc/core/expression"
	"unitcalc/core/format"
	"unitcalc/core/unit"
	"unitcalc/internal/config"
)

var category string

// unitsCmd lists the unit catalog
var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the available units",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := newWriter(cmd, config.Get())
		table := w.NewTable("symbol", "name", "category", "definition")

		for _, entry := range catalog.Default().Entries() {
			if category != "" && entry.Category.String() != category {
				continue
			}
			table.AddRow(entry.Symbol, entry.Description, entry.Category.String(), definition(entry.Unit))
		}
		table.Render()
		return nil
	},
}

// functionsCmd lists the expression functions
var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the available functions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := newWriter(cmd, config.Get())
		table := w.NewTable("function", "arguments", "description")

		for _, fn := range expression.Functions() {
			arity := strconv.Itoa(fn.MinArgs)
			if fn.MaxArgs != fn.MinArgs {
				arity = fmt.Sprintf("%d-%d", fn.MinArgs, fn.MaxArgs)
			}
			table.AddRow(fn.Name, arity, fn.Description)
		}
		table.Render()
	},
}

func init() {
	unitsCmd.Flags().StringVarP(&category, "category", "c", "", "only list units of this category")
}

// definition describes a unit in terms of the units it is built from
func definition(u unit.Unit) string {
	switch x := u.(type) {
	case *unit.Native:
		if x.Base() == x {
			return "base unit"
		}
		return format.Default.Format(x.Factor(nil)) + " " + x.Base().Symbol()
	case *unit.Derived:
		return unit.NewDerived(x.Definition()...).String()
	default:
		return u.String()
	}
}
