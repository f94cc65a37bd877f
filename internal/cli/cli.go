// Package cli implements the sentinel-diagram command-line interface.
//
// The single root command renders the Sentinel architecture diagram into
// the output directory. Progress is logged to the configured writer with
// charmbracelet/log; --verbose (-v) enables debug output.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ankek/sentinel-diagram/internal/generator"
	"github.com/ankek/sentinel-diagram/internal/interfaces"
	"github.com/ankek/sentinel-diagram/internal/renderer"
)

// CLI holds the logger and generator shared by the command.
type CLI struct {
	logger    *log.Logger
	generator interfaces.DiagramGenerator
}

// New returns a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		logger:    newLogger(w, level),
		generator: generator.New(),
	}
}

// SetLogLevel changes the level of the CLI's logger.
func (c *CLI) SetLogLevel(level log.Level) {
	c.logger.SetLevel(level)
}

// options holds the command-line flags.
type options struct {
	outputDir string
	svg       bool
	verbose   bool
}

// RootCommand builds the sentinel-diagram command. version is shown by
// --version.
func (c *CLI) RootCommand(version string) *cobra.Command {
	opts := options{outputDir: generator.DefaultOutputDir}

	cmd := &cobra.Command{
		Use:   "sentinel-diagram",
		Short: "Render the Sentinel architecture diagram",
		Long: `Renders the Sentinel secure multi-VPC architecture diagram and writes it
to docs/sentinel_architecture.pdf and docs/sentinel_architecture.png (300 DPI).`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				c.SetLogLevel(LogDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", opts.outputDir, "directory the diagram files are written to")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "also write an SVG copy")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

func (c *CLI) run(ctx context.Context, opts options) error {
	formats := generator.DefaultFormats()
	if opts.svg {
		formats = append(formats, renderer.FormatSVG)
	}

	prog := newProgress(c.logger)
	res, err := c.generator.Generate(ctx, interfaces.DiagramConfig{
		OutputDir: opts.outputDir,
		Formats:   formats,
		Logger:    c.logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d files with %d elements", len(res.OutputPaths), res.ElementCount))
	return nil
}
