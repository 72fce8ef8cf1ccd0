package mcpserver

import (
	"bytes"
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/panbanda/mood/internal/output"
	"github.com/panbanda/mood/internal/service/analysis"
	outputSvc "github.com/panbanda/mood/internal/service/output"
	scannerSvc "github.com/panbanda/mood/internal/service/scanner"
	"github.com/panbanda/mood/pkg/analyzer/mood"
	"github.com/panbanda/mood/pkg/config"
)

// MoodInput is the input of the analyze_mood tool.
type MoodInput struct {
	Path         string `json:"path,omitempty" jsonschema:"Directory containing the Java sources. Defaults to the current directory."`
	Format       string `json:"format,omitempty" jsonschema:"Output format: toon (default), json, or markdown."`
	IncludeTests bool   `json:"include_tests,omitempty" jsonschema:"Include test sources (*Test.java, src/test/) in the analysis."`
	Top          int    `json:"top,omitempty" jsonschema:"Classes listed in the markdown hierarchy table. Defaults to the configured value."`
	Sort         string `json:"sort,omitempty" jsonschema:"Class order: descendants (default), dit, noc, or name."`
}

func getPath(input MoodInput) string {
	if input.Path == "" {
		return "."
	}
	return input.Path
}

func getFormat(format string) output.Format {
	switch format {
	case "json":
		return output.FormatJSON
	case "markdown", "md":
		return output.FormatMarkdown
	default:
		return output.FormatTOON
	}
}

// formatOutput renders data with the shared formatter. Renderable reports
// become tables in markdown and their underlying data otherwise.
func formatOutput(data any, format output.Format) (string, error) {
	var buf bytes.Buffer
	if err := output.NewWriterFormatter(format, &buf, false).Output(data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toolResult(data any, format output.Format) (*mcp.CallToolResult, any, error) {
	text, err := formatOutput(data, format)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}

// Tool handlers

func (s *Server) handleAnalyzeMood(ctx context.Context, req *mcp.CallToolRequest, input MoodInput) (*mcp.CallToolResult, any, error) {
	root := getPath(input)
	format := getFormat(input.Format)
	order, err := mood.ParseSortOrder(input.Sort)
	if err != nil {
		return toolError(err.Error())
	}

	loaded, err := config.LoadConfig(config.WithRoot(root))
	if err != nil {
		return toolError(err.Error())
	}
	cfg := loaded.Config

	scanResult, err := scannerSvc.New(scannerSvc.WithConfig(cfg)).ScanPath(root)
	if err != nil {
		return toolError(err.Error())
	}
	if len(scanResult.Files) == 0 {
		return toolError("no Java source files found")
	}

	svc := analysis.New(analysis.WithConfig(cfg), analysis.WithLogger(s.logger))
	result, err := svc.AnalyzeMood(ctx, scanResult.Files, analysis.MoodOptions{
		IncludeTests: input.IncludeTests,
		Sort:         order,
	})
	if err != nil {
		var compErr *mood.ComputationError
		var cycleErr *mood.CycleError
		switch {
		case errors.As(err, &compErr):
			return toolError(compErr.Error())
		case errors.As(err, &cycleErr):
			return toolError(cycleErr.Error())
		default:
			return toolError(err.Error())
		}
	}

	top := cfg.Output.Top
	if input.Top > 0 {
		top = input.Top
	}
	return toolResult(outputSvc.NewReport(result, outputSvc.ReportOptions{
		Top:        top,
		Sort:       order,
		Thresholds: cfg.Thresholds,
	}), format)
}
