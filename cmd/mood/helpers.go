package main

import (
	charmlog "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/panbanda/mood/internal/output"
	"github.com/panbanda/mood/pkg/config"
	"github.com/urfave/cli/v2"
)

// outputFlags returns the flags shared by commands that write a report.
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: text, markdown, json, yaml, toon",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write output to file",
		},
	}
}

// loadConfig loads the file named by --config, or searches root for one.
func loadConfig(c *cli.Context, root string) (*config.LoadResult, error) {
	opts := []config.LoadOption{config.WithRoot(root)}
	if path := c.String("config"); path != "" {
		opts = append(opts, config.WithPath(path))
	}
	result, err := config.LoadConfig(opts...)
	if err != nil {
		return nil, err
	}
	if result.Config.Output.Verbose {
		logger.SetLevel(charmlog.DebugLevel)
	}
	if result.Source != "" {
		logger.Debug("loaded config", "path", result.Source)
	}
	return result, nil
}

// newFormatter applies the --format and --output flags over the config.
func newFormatter(c *cli.Context, cfg *config.Config) (*output.Formatter, error) {
	format := cfg.Output.Format
	if c.IsSet("format") {
		format = c.String("format")
	}
	colored := cfg.Output.Color && !color.NoColor
	return output.NewFormatter(output.ParseFormat(format), c.String("output"), colored)
}
