package analyzer

import (
	"context"
	"runtime"

	"github.com/panbanda/mood/pkg/parser"
	"github.com/sourcegraph/conc/pool"
)

// FileResult pairs an input path with the value or error produced for it.
type FileResult[T any] struct {
	Path  string
	Value T
	Err   error
}

// DefaultWorkers is 2x NumCPU, which suits the mix of file I/O and CGO parsing.
func DefaultWorkers() int {
	return runtime.NumCPU() * 2
}

// MapFiles processes files in parallel, calling fn for each file with a
// dedicated parser. Results are returned in input order, one per file, with
// per-file errors preserved so the caller can report them.
// If maxWorkers is <= 0, DefaultWorkers is used. A Tracker carried by ctx is
// ticked once per file. Files not yet started when ctx is cancelled get
// ctx.Err() as their error.
func MapFiles[T any](ctx context.Context, files []string, maxWorkers int, fn func(*parser.Parser, string) (T, error)) []FileResult[T] {
	if len(files) == 0 {
		return nil
	}
	if maxWorkers <= 0 {
		maxWorkers = DefaultWorkers()
	}

	tracker := TrackerFromContext(ctx)
	results := make([]FileResult[T], len(files))

	p := pool.New().WithMaxGoroutines(maxWorkers)
	for i, path := range files {
		p.Go(func() {
			results[i].Path = path
			defer func() {
				switch {
				case tracker == nil:
				case results[i].Err != nil:
					tracker.Fail(path)
				default:
					tracker.Tick(path)
				}
			}()

			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}

			psr := parser.New()
			defer psr.Close()

			results[i].Value, results[i].Err = fn(psr, path)
		})
	}
	p.Wait()

	return results
}
