package main

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused // set via ldflags at build time
	date    = "unknown" //nolint:unused // set via ldflags at build time
)

var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

func newApp() *cli.App {
	return &cli.App{
		Name:    "mood",
		Usage:   "MOOD metrics and inheritance statistics for Java codebases",
		Version: version,
		Description: `mood parses the Java sources under a directory, builds the class
inheritance tree and reports the MOOD design metrics:

  MHF  Method Hiding Factor
  AHF  Attribute Hiding Factor
  MIF  Method Inheritance Factor
  AIF  Attribute Inheritance Factor
  POF  Polymorphism Factor

together with NOC (number of children) and DIT (depth of inheritance tree)
for every class.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"MOOD_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				logger.SetLevel(charmlog.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			analyzeCmd(),
			configCmd(),
			initCmd(),
			schemaCmd(),
			mcpCmd(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
