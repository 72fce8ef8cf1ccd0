package scanner

import (
	"os"
	"path/filepath"

	"github.com/panbanda/mood/internal/scanner"
	"github.com/panbanda/mood/pkg/config"
)

// ScanResult contains the result of a file scan.
type ScanResult struct {
	Root      string
	Files     []string
	Oversized int
}

// Service provides file scanning functionality.
type Service struct {
	config *config.Config
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

// New creates a new scanner service.
func New(opts ...Option) *Service {
	s := &Service{config: config.DefaultConfig()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanPath scans one root directory for Java sources. Files larger than
// the configured maximum are dropped and counted in Oversized.
func (s *Service) ScanPath(path string) (*ScanResult, error) {
	if path == "" {
		path = "."
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, &PathError{Path: path, Err: err}
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, &PathError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return nil, &PathError{Path: path, Err: ErrNotDirectory}
	}

	found, err := scanner.NewScanner(s.config).ScanDir(absPath)
	if err != nil {
		return nil, &ScanError{Path: path, Err: err}
	}

	files, oversized := scanner.FilterBySize(found, s.config.Analysis.MaxFileSize)
	return &ScanResult{Root: absPath, Files: files, Oversized: oversized}, nil
}
