package cmd

import (
	"datefinder/clock"
	"datefinder/log"
	"datefinder/oops"
	"datefinder/routes"
	"net/http"

	"github.com/spf13/cobra"
)

var Serve *cobra.Command

func init() {
	var configPath string
	var addr string
	Serve = &cobra.Command{
		Use:   "serve",
		Short: "Serve the extraction HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := commandConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			log.Info().Str("addr", cfg.Addr).Stringer("config", cfg).Msg("Started")
			if err := http.ListenAndServe(cfg.Addr, routes.NewRouter(cfg, clock.System)); err != nil {
				return oops.Wrap(err)
			}
			return nil
		},
	}
	Serve.Flags().StringVar(&configPath, "config", "", "YAML config file")
	Serve.Flags().StringVar(&addr, "addr", ":3000", "listen address")
}
