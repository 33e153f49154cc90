// Command svg2tikz converts a draw.io SVG export to a TikZ picture.
//
// Usage:
//
//	svg2tikz [flags] <input.svg> [output.tex]
//
// The picture is written to stdout when no output file is given.
// Translation problems are logged as warnings and never fail the command.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vasalvit/svg2tikz"
	"github.com/vasalvit/svg2tikz/colors"
	"github.com/vasalvit/svg2tikz/config"
	"github.com/vasalvit/svg2tikz/numfmt"
	"github.com/vasalvit/svg2tikz/preview"
)

type flags struct {
	config                string
	preview               string
	verbose               bool
	forceQuadraticAsCubic bool
	showControlPoints     bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:          "svg2tikz [flags] <input.svg> [output.tex]",
		Short:        "Convert a draw.io SVG export to TikZ",
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(f.verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			return run(cmd, args, f, logger)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVar(&f.preview, "preview", "", "write a PNG preview to this file")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log debug information")
	cmd.Flags().BoolVar(&f.forceQuadraticAsCubic, "force-quadratic-as-cubic", false, "join quadratic curves into cubics")
	cmd.Flags().BoolVar(&f.showControlPoints, "show-control-points", false, "mark curve control points")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cmd *cobra.Command, args []string, f flags, logger *zap.Logger) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	cfg.Input = args[0]
	if len(args) == 2 {
		cfg.Output = args[1]
	}
	if cmd.Flags().Changed("preview") {
		cfg.Preview = f.preview
	}
	if cmd.Flags().Changed("force-quadratic-as-cubic") {
		cfg.ForceQuadraticAsCubic = f.forceQuadraticAsCubic
	}
	if cmd.Flags().Changed("show-control-points") {
		cfg.ShowControlPoints = f.showControlPoints
	}

	in, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	doc, err := svg2tikz.ParseSvgFromReader(in, cfg.Input)
	if err != nil {
		return err
	}

	registry := colors.NewRegistry()
	if err := cfg.DefineColors(registry); err != nil {
		return err
	}
	t := svg2tikz.NewTranslator(cfg.Engine(), registry, numfmt.New())
	prims := doc.Translate(t, logger)

	opts := cfg.Tikz()
	if !cfg.NoColorDefs {
		opts.ColorDefinitions = registry.Definitions()
	}

	var out io.Writer = cmd.OutOrStdout()
	if cfg.Output != "" {
		file, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer file.Close()
		out = file
	}
	if err := svg2tikz.WriteTikz(out, prims, opts); err != nil {
		return err
	}
	logger.Info("picture written", zap.String("input", cfg.Input), zap.String("output", cfg.Output),
		zap.Int("primitives", len(prims)))

	if cfg.Preview != "" {
		if err := writePreview(cfg.Preview, doc, prims, cfg.Scale); err != nil {
			return err
		}
		logger.Info("preview written", zap.String("file", cfg.Preview))
	}
	return nil
}

// defaultPreviewSize is used when the document has no usable size.
const defaultPreviewSize = 512

// writePreview renders the document at its own size, scaled like the
// operations of the primitives.
func writePreview(name string, doc *svg2tikz.Svg, prims []svg2tikz.DrawingPrimitive, scale float64) error {
	w := previewSize(doc.Width, scale)
	h := previewSize(doc.Height, scale)

	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating preview: %w", err)
	}
	if err := preview.WritePNG(file, preview.Render(w, h, prims)); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func previewSize(v string, scale float64) int {
	n, err := numfmt.Parse(v)
	if err != nil || n <= 0 {
		return defaultPreviewSize
	}
	return int(n*scale + 0.5)
}
