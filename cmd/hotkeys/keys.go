package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/hotkeys/internal/input/key"
)

func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List recognized key names and their codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCODE")
			for _, name := range key.Names() {
				code := key.CodeOf(name).String()
				if key.IsModifierName(name) {
					code = "(modifier)"
				}
				fmt.Fprintf(w, "%s\t%s\n", name, code)
			}
			return w.Flush()
		},
	}
}
