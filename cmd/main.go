package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "gym"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          appName,
		Short:        "247 Gym booking and contact backend",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "Config file path (TOML)")

	cmd.AddCommand(
		serveCmd(&configPath),
		bookCmd(&configPath),
		contactCmd(&configPath),
		scheduleCmd(&configPath),
	)

	return cmd
}
