package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/roadnet"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		o      = roadnet.DefaultGenerateOptions()
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random road network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := resolveFormat(format, output)
			if err != nil {
				return err
			}
			n, err := roadnet.Generate(o, core.WithMaxVertices(a.cfg.Engine.MaxVertices))
			if err != nil {
				return err
			}

			a.log.Debug().
				Int("cities", len(n.Cities)).
				Int("roads", len(n.Roads)).
				Int64("seed", o.Seed).
				Msg("network generated")

			write := func(w io.Writer) error {
				if f == formatYAML {
					return roadnet.WriteYAML(w, n)
				}
				return roadnet.WriteText(w, n)
			}
			if output == "-" {
				err = write(cmd.OutOrStdout())
			} else {
				var file *os.File
				if file, err = os.Create(output); err != nil {
					return err
				}
				err = writeAndClose(file, write)
			}
			if err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&o.Cities, "cities", "n", o.Cities, "number of cities")
	cmd.Flags().Float64Var(&o.Density, "density", o.Density, "probability in (0,1] that each road exists")
	cmd.Flags().Int64Var(&o.Min, "min", o.Min, "minimum road distance (may be negative)")
	cmd.Flags().Int64Var(&o.Max, "max", o.Max, "maximum road distance")
	cmd.Flags().Int64Var(&o.Seed, "seed", o.Seed, "random seed")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text or yaml (default: from extension, else text)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", `output file, "-" for stdout`)

	return cmd
}

// writeAndClose runs write on wc and always closes it. The first error wins,
// so a failed flush on Close is not lost.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	err := write(wc)
	if cerr := wc.Close(); err == nil {
		err = cerr
	}

	return err
}
