package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/internal/config"
	"github.com/katalvlaran/roadpath/internal/logging"
	"github.com/katalvlaran/roadpath/roadnet"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

var errUnknownFormat = errors.New("unknown format")

// app carries state shared by every subcommand once the root has loaded
// configuration.
type app struct {
	configPath string
	cfg        config.Config
	log        zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "roadpath",
		Short:         "Shortest road distances with negative-cycle detection",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logging.New(cfg.Logging, cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file (env ROADPATH_* overrides it)")

	root.AddCommand(
		newQueryCmd(a),
		newServeCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// networkFlags are the input flags shared by query and serve.
type networkFlags struct {
	input       string
	format      string
	maxVertices int
}

func (f *networkFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "-", `road network file, "-" for stdin`)
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "input format: text or yaml (default: from extension, else text)")
	cmd.Flags().IntVar(&f.maxVertices, "max-vertices", 0, "city capacity (overrides engine.max_vertices)")
}

// load reads the network named by the flags.
func (f *networkFlags) load(a *app, stdin io.Reader) (*roadnet.Network, error) {
	limit := a.cfg.Engine.MaxVertices
	if f.maxVertices > 0 {
		limit = f.maxVertices
	}

	format, err := resolveFormat(f.format, f.input)
	if err != nil {
		return nil, err
	}

	r := stdin
	if f.input != "-" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	var n *roadnet.Network
	switch format {
	case formatYAML:
		n, err = roadnet.ParseYAML(r, core.WithMaxVertices(limit))
	default:
		n, err = roadnet.ParseText(r, core.WithMaxVertices(limit))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.input, err)
	}
	a.log.Debug().
		Str("input", f.input).
		Str("format", format).
		Int("cities", len(n.Cities)).
		Int("roads", len(n.Roads)).
		Msg("network loaded")

	return n, nil
}

// resolveFormat returns the explicit format, or guesses it from the file
// extension.
func resolveFormat(format, path string) (string, error) {
	switch strings.ToLower(format) {
	case formatText, formatYAML:
		return strings.ToLower(format), nil
	case "":
	default:
		return "", fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	}

	return formatText, nil
}
