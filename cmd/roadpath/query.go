package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadpath/bellmanford"
	"github.com/katalvlaran/roadpath/roadnet"
)

var errNoSource = errors.New("no source city: pass --source or end the input with one")

func newQueryCmd(a *app) *cobra.Command {
	var (
		nf           networkFlags
		sources      []string
		rejectedMemo bool
	)
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print shortest distances from one or more source cities",
		Long: `Reads a road network and prints the distance table from each --source
in order. A source repeated later is answered from the cache. When a negative
cycle is reachable from a source the table is replaced by a notice.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := nf.load(a, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(sources) == 0 {
				if n.Source == "" {
					return errNoSource
				}
				sources = []string{n.Source}
			}

			opts := []bellmanford.Option{bellmanford.WithLogger(a.log)}
			if rejectedMemo || (a.cfg.Engine.RejectedMemo && !cmd.Flags().Changed("rejected-memo")) {
				opts = append(opts, bellmanford.WithRejectedMemo())
			}
			eng, err := bellmanford.New(n.Store, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, name := range sources {
				if i > 0 {
					fmt.Fprintln(out)
				}
				src, err := n.Index(name)
				if err != nil {
					return err
				}
				d, cached, err := eng.Lookup(cmd.Context(), src)
				switch {
				case errors.Is(err, bellmanford.ErrNegativeCycle):
					if err = roadnet.RenderNegativeCycle(out); err != nil {
						return err
					}
				case err != nil:
					return err
				default:
					if err = roadnet.Render(out, n, src, d, cached); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	nf.register(cmd)
	cmd.Flags().StringSliceVarP(&sources, "source", "s", nil, "source city (repeatable; default: the input's source)")
	cmd.Flags().BoolVar(&rejectedMemo, "rejected-memo", false, "remember sources that hit a negative cycle")

	return cmd
}
