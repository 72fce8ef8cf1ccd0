package analyzer

import "context"

// FileAnalyzer is implemented by analyzers that consume a set of source files.
// Results are only meaningful over the whole set, so files are passed together.
type FileAnalyzer[T any] interface {
	// Analyze reads files and returns one result for all of them. A Tracker on
	// ctx receives per-file progress.
	Analyze(ctx context.Context, files []string) (T, error)

	Close()
}
