package main

import (
	"github.com/katalvlaran/lvmc/montecarlo"
	"github.com/katalvlaran/lvmc/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCmd(env *cmdEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve estimation, run history and metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := env.load(cmd)
			if err != nil {
				return err
			}
			repo, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			if repo != nil {
				defer repo.Close()
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			srv := server.New(server.Deps{
				Logger:   logger,
				Store:    repo,
				Registry: reg,
				Defaults: montecarlo.Options{
					Seed:      resolveSeed(cfg.Estimate.Seed),
					Workers:   cfg.Estimate.Workers,
					ChunkSize: cfg.Estimate.ChunkSize,
				},
				Samples: cfg.Estimate.Samples,
			})
			return srv.Run(cmd.Context(), cfg.Server.Addr)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	return cmd
}
