package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/hotkeys/internal/hotkeys"
	"github.com/dshills/hotkeys/internal/input/key"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <Ctrl+K | name...>",
		Short: "Validate a combination and show what it matches",
		Example: `  hotkeys check Ctrl+Shift+K
  hotkeys check control shift k`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := combinationArgs(args)
			if err != nil {
				return err
			}
			combo, err := hotkeys.Validate(names)
			if err != nil {
				return err
			}

			mods := combo.Required().String()
			if mods == "" {
				mods = "none"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hotkeys:   %s\n", combo)
			fmt.Fprintf(out, "modifiers: %s\n", mods)
			fmt.Fprintf(out, "code:      %s\n", combo.Code())
			return nil
		},
	}
	return cmd
}

// combinationArgs accepts either one text-form argument or a list of names.
func combinationArgs(args []string) ([]string, error) {
	if len(args) == 1 && strings.Contains(args[0], "+") {
		return key.ParseCombination(args[0])
	}
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = strings.ToLower(a)
	}
	return names, nil
}
