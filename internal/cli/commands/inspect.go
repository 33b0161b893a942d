package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabwright/tabwright/pkg/formula"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <formula>",
		Short: "Parse a table formula and show its structure",
		Long: `Parse a table formula and print its column- and row-axis terms.

Useful for checking how a formula will be interpreted before building
a table from it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formula.Parse(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Formula: %s\n", f.String())

			_, _ = fmt.Fprintln(w, "Columns:")
			for _, term := range formula.Terms(f.Cols) {
				_, _ = fmt.Fprintf(w, "  %s\n", term.String())
			}

			_, _ = fmt.Fprintln(w, "Rows:")
			for _, term := range formula.Terms(f.Rows) {
				_, _ = fmt.Fprintf(w, "  %s\n", term.String())
			}
			return nil
		},
	}
}
