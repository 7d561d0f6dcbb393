package main

import (
	"context"
	"os"

	"mintmate/internal/logger"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "mintmate",
		Short: "Market data, forecasting and ai advisor api",
		// no subcommand starts the server
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a yaml config file (defaults by MINTMATE_ENV)")

	rootCmd.AddCommand(
		serveCmd(),
		historyCmd(),
		searchCmd(),
		forecastCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		logger.FromContext(context.Background()).Errorw("command failed", "error", err.Error())
		os.Exit(1)
	}
}
