// Package main is the entry point for the hotkeys shortcut host.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hotkeys",
		Short: "Recognize keyboard shortcuts and run an action",
		Long: `hotkeys watches key-down events for one declared combination such as
control+k and runs an action each time it is pressed.

Combinations are written either as names ("control k") or in text form
("Ctrl+K"). Exactly one non-modifier key is required.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		runCmd(),
		checkCmd(),
		keysCmd(),
		versionCmd(),
	)
	return root
}
