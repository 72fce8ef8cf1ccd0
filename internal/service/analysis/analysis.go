package analysis

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/panbanda/mood/pkg/analyzer"
	"github.com/panbanda/mood/pkg/analyzer/mood"
	"github.com/panbanda/mood/pkg/config"
)

// Service orchestrates code analysis operations.
type Service struct {
	config *config.Config
	logger *log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithConfig sets the configuration.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// WithLogger sets the logger handed to the analyzers.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a new analysis service.
func New(opts ...Option) *Service {
	s := &Service{
		config: config.DefaultConfig(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MoodOptions configures MOOD analysis.
type MoodOptions struct {
	// IncludeTests analyzes test sources even when the config excludes them.
	IncludeTests bool
	// Sort orders the classes of the result; empty means by descendants.
	Sort       mood.SortOrder
	OnProgress analyzer.ProgressFunc
}

// AnalyzeMood computes MOOD metrics and the inheritance statistics for files.
// Classes in the result are ordered by opts.Sort.
func (s *Service) AnalyzeMood(ctx context.Context, files []string, opts MoodOptions) (*mood.Analysis, error) {
	cfg := s.config.Analysis

	moodOpts := []mood.Option{
		mood.WithLogger(s.logger),
		mood.WithWorkers(cfg.Workers),
		mood.WithMaxFileSize(cfg.MaxFileSize),
		mood.WithOverrideAnnotations(cfg.OverrideAnnotations),
	}
	if opts.IncludeTests || cfg.IncludeTests {
		moodOpts = append(moodOpts, mood.WithIncludeTestFiles())
	}

	if opts.OnProgress != nil {
		ctx = analyzer.WithTracker(ctx, analyzer.NewTracker(opts.OnProgress))
	}

	a := mood.New(moodOpts...)
	defer a.Close()

	result, err := a.Analyze(ctx, files)
	if err != nil {
		return nil, fmt.Errorf("mood analysis failed: %w", err)
	}
	result.Sort(opts.Sort)
	return result, nil
}
