package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/hotkeys/internal/app"
	"github.com/dshills/hotkeys/internal/config"
)

func runCmd() *cobra.Command {
	var (
		configPath string
		logFile    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the terminal and listen for the configured shortcut",
		Long: `Open the terminal and listen for the configured shortcut.

The configuration file is reloaded when it changes. The quit shortcut,
SIGINT or SIGTERM stop the host.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("config") {
				if _, err := os.Stat(configPath); err != nil {
					configPath = ""
				}
			}

			// The screen owns the tty, so logs go to a file or nowhere.
			var logOut io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				logOut = f
			}

			application, err := app.New(app.Options{
				ConfigPath: configPath,
				LogOutput:  logOut,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return application.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "Path to configuration file (.toml, .yaml)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Append logs to this file")

	return cmd
}
