package main

import (
	"github.com/spf13/cobra"

	"github.com/sant0-9/reformulator/internal/config"
	"github.com/sant0-9/reformulator/internal/logger"
	"github.com/sant0-9/reformulator/internal/metrics"
	"github.com/sant0-9/reformulator/internal/server"
)

func newServeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /reformulate and friends over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exporter := metrics.NewExporter(metrics.DefaultConfig())

			svc, store, err := c.service(true, exporter)
			if err != nil {
				return err
			}
			defer store.Close()

			srv := server.New(c.cfg.Server, svc, exporter, logger.Named("server"))
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().String("addr", "", "listen address (default "+config.DefaultServerAddr+")")
	cmd.Flags().Float64("rate-limit", 0, "requests per second per client, 0 disables")
	mustBind(c, "server.addr", cmd, "addr")
	mustBind(c, "server.rate_limit", cmd, "rate-limit")

	return cmd
}
