package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/panbanda/mood/internal/progress"
	"github.com/panbanda/mood/internal/service/analysis"
	outputSvc "github.com/panbanda/mood/internal/service/output"
	scannerSvc "github.com/panbanda/mood/internal/service/scanner"
	"github.com/panbanda/mood/pkg/analyzer/mood"
	"github.com/urfave/cli/v2"
)

// errUsage is returned when analyze is not given exactly one directory.
var errUsage = errors.New("analyze requires exactly one directory argument")

func analyzeCmd() *cli.Command {
	flags := append(outputFlags(),
		&cli.BoolFlag{
			Name:  "include-tests",
			Usage: "Include test sources (*Test.java, *IT.java, src/test/)",
		},
		&cli.IntFlag{
			Name:  "top",
			Usage: "Show the first N classes in sort order (0 = all; default from config)",
		},
		&cli.StringFlag{
			Name:  "sort",
			Value: string(mood.SortDescendants),
			Usage: "Order of the class hierarchy: descendants, dit, noc, name",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Parallel parse workers (0 = 2x NumCPU; default from config)",
		},
		&cli.BoolFlag{
			Name:  "no-progress",
			Usage: "Do not draw the progress bar",
		},
	)

	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"a"},
		Usage:     "Compute MOOD metrics for the Java sources under a directory",
		ArgsUsage: "<dir>",
		Flags:     flags,
		Action:    runAnalyzeCmd,
	}
}

func runAnalyzeCmd(c *cli.Context) error {
	if c.Args().Len() != 1 {
		_ = cli.ShowSubcommandHelp(c)
		return errUsage
	}
	root := c.Args().First()

	order, err := mood.ParseSortOrder(c.String("sort"))
	if err != nil {
		return err
	}

	loaded, err := loadConfig(c, root)
	if err != nil {
		return err
	}
	cfg := loaded.Config
	if c.IsSet("workers") {
		cfg.Analysis.Workers = c.Int("workers")
	}

	scanResult, err := scannerSvc.New(scannerSvc.WithConfig(cfg)).ScanPath(root)
	if err != nil {
		return err
	}
	if scanResult.Oversized > 0 {
		logger.Warn("skipped oversized files", "count", scanResult.Oversized, "max_file_size", cfg.Analysis.MaxFileSize)
	}
	// An empty corpus still goes through the aggregator, which rejects it.
	if len(scanResult.Files) == 0 {
		logger.Warn("no Java source files found", "root", scanResult.Root)
	}
	logger.Debug("scanned sources", "root", scanResult.Root, "files", len(scanResult.Files))

	opts := analysis.MoodOptions{IncludeTests: c.Bool("include-tests"), Sort: order}
	var tracker *progress.Tracker
	if !c.Bool("no-progress") && len(scanResult.Files) > 0 {
		tracker = progress.NewTracker("Parsing Java sources...", len(scanResult.Files))
		opts.OnProgress = tracker.Update
	}

	svc := analysis.New(analysis.WithConfig(cfg), analysis.WithLogger(logger))
	result, err := svc.AnalyzeMood(context.Background(), scanResult.Files, opts)
	if tracker != nil {
		if err != nil {
			tracker.FinishError(err)
		} else {
			tracker.FinishSuccess()
		}
	}
	if err != nil {
		return classifyError(err)
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	top := cfg.Output.Top
	if c.IsSet("top") {
		top = c.Int("top")
	}

	report := outputSvc.NewReport(result, outputSvc.ReportOptions{
		Top:        top,
		Sort:       order,
		Thresholds: cfg.Thresholds,
		Colored:    formatter.Colored(),
	})
	return formatter.Output(report)
}

// classifyError turns the fatal analysis errors into user-facing messages.
func classifyError(err error) error {
	var compErr *mood.ComputationError
	var cycleErr *mood.CycleError
	switch {
	case errors.As(err, &compErr):
		return fmt.Errorf("cannot compute MOOD metrics: %w", compErr)
	case errors.As(err, &cycleErr):
		return fmt.Errorf("invalid class hierarchy: %w", cycleErr)
	default:
		return err
	}
}
