package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for mood.
type Config struct {
	// Analysis settings
	Analysis AnalysisConfig `koanf:"analysis" toml:"analysis"`

	// Thresholds for inheritance metrics
	Thresholds ThresholdConfig `koanf:"thresholds" toml:"thresholds"`

	// File exclusion patterns
	Exclude ExcludeConfig `koanf:"exclude" toml:"exclude"`

	// Output settings
	Output OutputConfig `koanf:"output" toml:"output"`
}

// AnalysisConfig controls how sources are ingested and measured.
type AnalysisConfig struct {
	IncludeTests        bool     `koanf:"include_tests" toml:"include_tests" comment:"Analyze test sources (*Test.java, src/test/...)"`
	MaxFileSize         int64    `koanf:"max_file_size" toml:"max_file_size" comment:"Skip files larger than this many bytes (0 = no limit)"`
	Workers             int      `koanf:"workers" toml:"workers" comment:"Parallel parse workers (0 = 2x CPU count)"`
	OverrideAnnotations []string `koanf:"override_annotations" toml:"override_annotations" comment:"Annotations that keep a member from being passed to subclasses"`
}

// ThresholdConfig defines when inheritance metrics are highlighted.
type ThresholdConfig struct {
	DITWarn     int `koanf:"dit_warn" toml:"dit_warn"`
	DITCritical int `koanf:"dit_critical" toml:"dit_critical"`
	NOCWarn     int `koanf:"noc_warn" toml:"noc_warn"`
	NOCCritical int `koanf:"noc_critical" toml:"noc_critical"`
}

// ExcludeConfig defines file exclusion patterns.
type ExcludeConfig struct {
	Patterns  []string `koanf:"patterns" toml:"patterns" comment:"Gitignore-style patterns"`
	Dirs      []string `koanf:"dirs" toml:"dirs"`
	Gitignore bool     `koanf:"gitignore" toml:"gitignore" comment:"Respect .gitignore files"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format" toml:"format" comment:"text, markdown, json, yaml or toon"`
	Color   bool   `koanf:"color" toml:"color"`
	Verbose bool   `koanf:"verbose" toml:"verbose"`
	Top     int    `koanf:"top" toml:"top" comment:"Classes listed in the hierarchy table (0 = all)"`
}

// Formats lists the accepted output formats.
var Formats = []string{"text", "markdown", "json", "yaml", "toon"}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			IncludeTests:        false,
			MaxFileSize:         1 << 20,
			Workers:             0,
			OverrideAnnotations: []string{"Override", "java.lang.Override"},
		},
		Thresholds: ThresholdConfig{
			DITWarn:     4,
			DITCritical: 5,
			NOCWarn:     4,
			NOCCritical: 6,
		},
		Exclude: ExcludeConfig{
			Patterns: []string{
				"*.class",
				"generated-sources/",
			},
			Dirs: []string{
				".git",
				".mood",
				".idea",
				".gradle",
				"target",
				"build",
				"out",
				"node_modules",
			},
			Gitignore: true,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
			Top:     20,
		},
	}
}

// Load loads configuration from a file on top of the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	// Determine parser based on extension
	var parser koanf.Parser
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return cfg, nil
}

// configNames are the file names searched for, in order.
var configNames = []string{
	"mood.toml",
	"mood.yaml",
	"mood.yml",
	"mood.json",
	".mood.toml",
	".mood.yaml",
	".mood.yml",
	".mood.json",
}

// searchDirs are the directories searched, in order, relative to the
// working directory.
var searchDirs = []string{".", ".mood"}

// Find returns the first config file present in the standard locations
// under root, or "" if there is none.
func Find(root string) string {
	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(root, dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

// LoadResult is a validated configuration and the file it came from.
type LoadResult struct {
	Config *Config
	// Source is the config file path, or "" when defaults were used.
	Source string
}

type loadOptions struct {
	path string
	root string
}

// LoadOption configures LoadConfig.
type LoadOption func(*loadOptions)

// WithPath loads the given file instead of searching the standard locations.
func WithPath(path string) LoadOption {
	return func(o *loadOptions) {
		o.path = path
	}
}

// WithRoot searches the standard locations under root instead of the
// working directory.
func WithRoot(root string) LoadOption {
	return func(o *loadOptions) {
		o.root = root
	}
}

// LoadConfig loads and validates configuration. An explicit path must exist;
// otherwise the standard locations are searched and defaults are used when
// nothing is found.
func LoadConfig(opts ...LoadOption) (*LoadResult, error) {
	o := loadOptions{root: "."}
	for _, opt := range opts {
		opt(&o)
	}

	path := o.path
	if path == "" {
		path = Find(o.root)
	}
	if path == "" {
		return &LoadResult{Config: DefaultConfig()}, nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &LoadResult{Config: cfg, Source: path}, nil
}

// LoadOrDefault tries to load config from standard locations or returns defaults.
func LoadOrDefault() *Config {
	result, err := LoadConfig()
	if err != nil {
		return DefaultConfig()
	}
	return result.Config
}

// Validate checks that every setting is in range. All problems are reported
// together.
func (c *Config) Validate() error {
	var errs []error

	if c.Analysis.MaxFileSize < 0 {
		errs = append(errs, fmt.Errorf("analysis.max_file_size must be >= 0, got %d", c.Analysis.MaxFileSize))
	}
	if c.Analysis.Workers < 0 {
		errs = append(errs, fmt.Errorf("analysis.workers must be >= 0, got %d", c.Analysis.Workers))
	}
	for _, name := range c.Analysis.OverrideAnnotations {
		if strings.TrimSpace(name) == "" || strings.HasPrefix(name, "@") {
			errs = append(errs, fmt.Errorf("analysis.override_annotations: invalid name %q (use the bare annotation name)", name))
		}
	}

	t := c.Thresholds
	if t.DITWarn < 1 || t.DITCritical < 1 {
		errs = append(errs, errors.New("thresholds.dit_warn and thresholds.dit_critical must be >= 1"))
	} else if t.DITWarn > t.DITCritical {
		errs = append(errs, fmt.Errorf("thresholds.dit_warn (%d) must not exceed thresholds.dit_critical (%d)", t.DITWarn, t.DITCritical))
	}
	if t.NOCWarn < 1 || t.NOCCritical < 1 {
		errs = append(errs, errors.New("thresholds.noc_warn and thresholds.noc_critical must be >= 1"))
	} else if t.NOCWarn > t.NOCCritical {
		errs = append(errs, fmt.Errorf("thresholds.noc_warn (%d) must not exceed thresholds.noc_critical (%d)", t.NOCWarn, t.NOCCritical))
	}

	if !slices.Contains(Formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of %s, got %q", strings.Join(Formats, ", "), c.Output.Format))
	}
	if c.Output.Top < 0 {
		errs = append(errs, fmt.Errorf("output.top must be >= 0, got %d", c.Output.Top))
	}

	return errors.Join(errs...)
}

// ShouldExclude checks if a path should be excluded by directory name.
// Gitignore-style patterns are applied by the scanner.
func (c *Config) ShouldExclude(path string) bool {
	slashed := filepath.ToSlash(path)
	for _, dir := range c.Exclude.Dirs {
		if strings.Contains(slashed, "/"+dir+"/") || strings.HasPrefix(slashed, dir+"/") {
			return true
		}
	}
	return false
}
