package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadpath/bellmanford"
	"github.com/katalvlaran/roadpath/internal/metrics"
	"github.com/katalvlaran/roadpath/internal/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		nf   networkFlags
		addr string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve shortest distances over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := nf.load(a, cmd.InOrStdin())
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			opts := []bellmanford.Option{
				bellmanford.WithLogger(a.log),
				bellmanford.WithObserver(metrics.New(reg)),
			}
			if a.cfg.Engine.RejectedMemo {
				opts = append(opts, bellmanford.WithRejectedMemo())
			}
			eng, err := bellmanford.New(n.Store, opts...)
			if err != nil {
				return err
			}

			scfg := a.cfg.Server
			if addr != "" {
				scfg.Addr = addr
			}
			srv := server.New(n, eng, scfg, reg, a.log)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err = <-errCh:
				return err
			case <-ctx.Done():
			}

			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err = srv.Stop(sctx); err != nil {
				return err
			}

			return <-errCh
		},
	}
	nf.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}
