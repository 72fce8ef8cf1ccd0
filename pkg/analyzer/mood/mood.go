package mood

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/panbanda/mood/pkg/analyzer"
	"github.com/panbanda/mood/pkg/models"
	"github.com/panbanda/mood/pkg/parser"
	"github.com/panbanda/mood/pkg/source"
	"github.com/zeebo/blake3"
)

// Ensure Analyzer implements analyzer.FileAnalyzer.
var _ analyzer.FileAnalyzer[*Analysis] = (*Analyzer)(nil)

// Analyzer computes MOOD metrics over a set of Java source files.
type Analyzer struct {
	logger              *log.Logger
	src                 source.ContentSource
	workers             int
	maxFileSize         int64
	skipTestFile        bool
	overrideAnnotations []string
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for per-file and resolution diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithContentSource reads files from src instead of the filesystem.
func WithContentSource(src source.ContentSource) Option {
	return func(a *Analyzer) {
		if src != nil {
			a.src = src
		}
	}
}

// WithWorkers sets the number of parallel parse workers (<= 0 = 2x NumCPU).
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		a.workers = n
	}
}

// WithMaxFileSize sets the maximum file size to analyze (0 = no limit).
func WithMaxFileSize(maxSize int64) Option {
	return func(a *Analyzer) {
		a.maxFileSize = maxSize
	}
}

// WithIncludeTestFiles includes test sources in analysis.
// By default, test files are skipped.
func WithIncludeTestFiles() Option {
	return func(a *Analyzer) {
		a.skipTestFile = false
	}
}

// WithOverrideAnnotations replaces the annotation names that stop a member
// from being propagated to subclasses.
func WithOverrideAnnotations(names []string) Option {
	return func(a *Analyzer) {
		if len(names) > 0 {
			a.overrideAnnotations = names
		}
	}
}

// New creates a new MOOD analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		logger:              log.New(io.Discard),
		src:                 source.NewFilesystem(),
		skipTestFile:        true,
		overrideAnnotations: DefaultOverrideAnnotations,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Close implements analyzer.FileAnalyzer.
func (a *Analyzer) Close() {}

// IsTestFile reports whether path looks like a Java test source.
func IsTestFile(path string) bool {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(slashed)
	return strings.HasSuffix(base, "Test.java") ||
		strings.HasSuffix(base, "Tests.java") ||
		strings.HasSuffix(base, "IT.java") ||
		strings.Contains(slashed, "/src/test/") ||
		strings.HasPrefix(slashed, "src/test/")
}

// parsedFile is the per-file output of the parallel ingestion stage.
type parsedFile struct {
	decl   *models.FileDeclaration
	digest [32]byte
}

// Analyze ingests files, builds the class registry and computes the metrics.
// Files that cannot be read or parsed are skipped and listed in the result.
// A *ComputationError or *CycleError aborts the analysis.
func (a *Analyzer) Analyze(ctx context.Context, files []string) (*Analysis, error) {
	analysis := &Analysis{
		GeneratedAt: time.Now().UTC(),
		Classes:     make([]ClassStats, 0),
	}

	var inputs []string
	for _, path := range files {
		if a.skipTestFile && IsTestFile(path) {
			continue
		}
		inputs = append(inputs, path)
	}
	analysis.Summary.TotalFiles = len(inputs)

	if tracker := analyzer.TrackerFromContext(ctx); tracker != nil {
		tracker.Add(len(inputs))
	}

	results := analyzer.MapFiles(ctx, inputs, a.workers, a.ingestFile)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reg := NewRegistry()
	fingerprint := blake3.New()

	// Registration is single-writer and follows input order, so duplicate
	// class names resolve deterministically to the last file listed.
	for _, r := range results {
		if r.Err != nil {
			a.logger.Warn("skipping file", "err", &IngestionError{Path: r.Path, Err: r.Err})
			analysis.Skipped = append(analysis.Skipped, SkippedFile{Path: r.Path, Reason: r.Err.Error()})
			continue
		}
		analysis.Summary.ParsedFiles++
		_, _ = fingerprint.Write(r.Value.digest[:])

		if a.register(reg, r.Value.decl) > 0 {
			analysis.Summary.DuplicateClasses++
		}
	}
	analysis.Summary.SkippedFiles = len(analysis.Skipped)
	analysis.Summary.Fingerprint = hex.EncodeToString(fingerprint.Sum(nil)[:16])

	a.logger.Debug("registry built", "classes", reg.Len(), "files", analysis.Summary.ParsedFiles)

	metrics, err := Compute(reg, a.overrideAnnotations)
	if err != nil {
		return nil, err
	}
	analysis.Metrics = *metrics

	for _, c := range reg.Classes() {
		analysis.Classes = append(analysis.Classes, classStats(reg, c))
	}
	analysis.CalculateSummary()

	return analysis, nil
}

// ingestFile reads and parses one file into declarations.
func (a *Analyzer) ingestFile(psr *parser.Parser, path string) (parsedFile, error) {
	content, err := a.src.Read(path)
	if err != nil {
		return parsedFile{}, fmt.Errorf("read: %w", err)
	}
	if a.maxFileSize > 0 && int64(len(content)) > a.maxFileSize {
		return parsedFile{}, fmt.Errorf("file size %d exceeds limit %d", len(content), a.maxFileSize)
	}

	lang := parser.DetectLanguage(path)
	if lang == parser.LangUnknown {
		return parsedFile{}, fmt.Errorf("unsupported language")
	}

	result, err := psr.Parse(content, lang, path)
	if err != nil {
		return parsedFile{}, err
	}
	defer result.Tree.Close()

	decl, err := parser.ExtractJavaDeclarations(result)
	if err != nil {
		return parsedFile{}, err
	}

	return parsedFile{decl: decl, digest: blake3.Sum256(content)}, nil
}

// register adds every class of a file to reg, qualifying parent references
// against the file's imports first. It returns how many classes replaced an
// earlier registration.
func (a *Analyzer) register(reg *Registry, decl *models.FileDeclaration) int {
	replaced := 0
	for _, cls := range decl.Classes {
		q := QualifyParent(cls.Parent, decl.Types, decl.Imports)
		switch q.Outcome {
		case QualifyAmbiguous:
			a.logger.Debug("ambiguous parent import", "class", cls.Name, "parent", cls.Parent, "candidates", q.Candidates)
		case QualifyImported:
			a.logger.Debug("parent qualified from import", "class", cls.Name, "parent", q.Name)
		}
		declared := cls.Parent
		cls.Parent = q.Name

		c := NewClassData(decl.Package, decl.Path, cls)
		c.DeclaredParent = declared
		if reg.Register(c) {
			replaced++
			a.logger.Warn("duplicate class, keeping last definition", "class", c.FQN, "path", decl.Path)
		}
	}
	return replaced
}

func classStats(reg *Registry, c *ClassData) ClassStats {
	counts := ClassCounts(c)
	_, resolved := reg.ParentOf(c)
	return ClassStats{
		FQN:               c.FQN,
		Name:              c.Name,
		Package:           c.Package,
		Path:              c.Path,
		DeclaredParent:    c.DeclaredParent,
		Parent:            c.Parent,
		ParentResolved:    resolved,
		NOC:               len(c.Children),
		Children:          c.Children,
		Descendants:       int(c.Descendants.GetCardinality()),
		DescendantNames:   reg.DescendantNames(c),
		DIT:               c.Depth,
		OwnMethods:        len(c.Methods),
		OwnFields:         len(c.Fields),
		InheritedMethods:  counts.InheritedMethods,
		InheritedFields:   counts.InheritedFields,
		OverriddenMethods: counts.OverriddenMethods,
	}
}
