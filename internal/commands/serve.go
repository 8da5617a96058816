package commands

import (
	"github.com/spf13/cobra"

	"github.com/insightdelivered/finance-insights/internal/api"
	"github.com/insightdelivered/finance-insights/internal/config"
	"github.com/insightdelivered/finance-insights/internal/logger"
)

func newServeCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API for statement analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}

			log := logger.Default()
			srv := api.NewServer(cfg, log)
			log.Info("starting API", "listen", cfg.Listen, "mode", string(srv.Mode()))
			return srv.App().Listen(cfg.Listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "bind address (overrides config)")
	return cmd
}
