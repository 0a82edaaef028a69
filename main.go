package main

import (
	"datefinder/cmd"
	"datefinder/config"
	"datefinder/log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var logLevel string
	rootCmd := &cobra.Command{
		Use:           "datefinder",
		Short:         "Find calendar dates in free text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if logLevel == "" {
				logLevel = config.Cfg.LogLevel
			}
			return log.SetLevel(logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.AddCommand(cmd.Extract)
	rootCmd.AddCommand(cmd.Serve)
	rootCmd.AddCommand(cmd.Locales)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed")
		os.Exit(1)
	}
}
