package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/panbanda/mood/pkg/config"
	"github.com/panbanda/mood/pkg/parser"
)

// Scanner finds Java source files in a directory.
type Scanner struct {
	config   *config.Config
	matchers []scopedMatcher
}

// scopedMatcher pairs a matcher with the path of the scan root inside the
// tree its patterns were written for. Scan-relative paths are prefixed with
// it before matching.
type scopedMatcher struct {
	matcher gitignore.Matcher
	prefix  []string
}

func (m scopedMatcher) match(parts []string, isDir bool) bool {
	if len(m.prefix) > 0 {
		parts = append(slices.Clone(m.prefix), parts...)
	}
	return m.matcher.Match(parts, isDir)
}

// NewScanner creates a new file scanner.
func NewScanner(cfg *config.Config) *Scanner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Scanner{config: cfg}
}

// findGitRoot finds the root of the git repository by looking for .git directory.
// Returns empty string if not in a git repository.
func findGitRoot(start string) string {
	dir := start
	for {
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadExcludePatterns builds the matchers for one scan from the config
// patterns and, when enabled, every .gitignore file that applies to root.
func (s *Scanner) loadExcludePatterns(root string) {
	s.matchers = nil
	var patterns []gitignore.Pattern

	// Config patterns are always applied, parsed as gitignore syntax.
	for _, pattern := range s.config.Exclude.Patterns {
		patterns = append(patterns, gitignore.ParsePattern(pattern, nil))
	}
	if len(patterns) > 0 {
		s.matchers = append(s.matchers, scopedMatcher{matcher: gitignore.NewMatcher(patterns)})
	}

	if !s.config.Exclude.Gitignore {
		return
	}

	// ReadPatterns walks the tree and scopes each .gitignore to its own
	// directory, relative to the scan root.
	if gitPatterns, err := gitignore.ReadPatterns(osfs.New(root), nil); err == nil && len(gitPatterns) > 0 {
		s.matchers = append(s.matchers, scopedMatcher{matcher: gitignore.NewMatcher(gitPatterns)})
	}

	// .gitignore files from the repository root down to the parent of the
	// scan root are written against repository paths.
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return
	}
	gitRoot := findGitRoot(absRoot)
	if gitRoot == "" || gitRoot == absRoot {
		return
	}
	rel, err := filepath.Rel(gitRoot, absRoot)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return
	}
	prefix := strings.Split(filepath.ToSlash(rel), "/")

	var repoPatterns []gitignore.Pattern
	for i := range prefix {
		domain := prefix[:i]
		dir := filepath.Join(gitRoot, filepath.FromSlash(strings.Join(domain, "/")))
		repoPatterns = append(repoPatterns, readGitignore(filepath.Join(dir, ".gitignore"), domain)...)
	}
	if len(repoPatterns) > 0 {
		s.matchers = append(s.matchers, scopedMatcher{matcher: gitignore.NewMatcher(repoPatterns), prefix: prefix})
	}
}

// readGitignore parses a single .gitignore file whose directory is domain,
// ignoring blank lines and comments. A missing file yields no patterns.
func readGitignore(path string, domain []string) []gitignore.Pattern {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}
	return patterns
}

// isExcluded checks if a path relative to the scan root matches any
// exclusion pattern or lies under an excluded directory name.
func (s *Scanner) isExcluded(path string, isDir bool) bool {
	pathParts := strings.Split(filepath.ToSlash(path), "/")
	if isDir && slices.Contains(s.config.Exclude.Dirs, pathParts[len(pathParts)-1]) {
		return true
	}
	for _, m := range s.matchers {
		if m.match(pathParts, isDir) {
			return true
		}
	}
	return false
}

// ScanDir recursively scans a directory for Java source files and returns
// them sorted, so that registration order is the same on every run.
// Symlinks that resolve outside the root are skipped.
func (s *Scanner) ScanDir(root string) ([]string, error) {
	files := make([]string, 0, 1024)

	// Resolve root to absolute path for security validation
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	// Resolve any symlinks in the root path
	absRoot, err = filepath.EvalSymlinks(absRoot)
	if err != nil {
		return nil, err
	}

	s.loadExcludePatterns(root)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, _ := filepath.Rel(root, path)
		if relPath == "." {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			resolved, err := filepath.EvalSymlinks(path)
			if err != nil || !isWithinRoot(resolved, absRoot) {
				return nil
			}
		}

		if d.IsDir() {
			if s.isExcluded(relPath, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if s.isExcluded(relPath, false) {
			return nil
		}
		if parser.DetectLanguage(path) != parser.LangUnknown {
			files = append(files, path)
		}

		return nil
	})

	slices.Sort(files)
	return files, walkErr
}

// isWithinRoot checks if a path is contained within the root directory.
// Returns false if the path escapes via symlinks or relative paths.
func isWithinRoot(path, root string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	absPath = filepath.Clean(absPath)
	root = filepath.Clean(root)

	// Add separator to prevent "/root2" matching "/root"
	return absPath == root || strings.HasPrefix(absPath, root+string(filepath.Separator))
}

// ScanFile checks if a single file should be analyzed.
func (s *Scanner) ScanFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	if info.IsDir() {
		return false, nil
	}

	if s.matchers == nil {
		s.loadExcludePatterns(filepath.Dir(path))
	}

	if s.isExcluded(filepath.Base(path), false) {
		return false, nil
	}

	return parser.DetectLanguage(path) != parser.LangUnknown, nil
}

// FilterBySize filters files that exceed the configured maximum size.
// Returns the filtered list and the count of files that were skipped.
// If maxSize is 0, returns the original list unchanged.
func FilterBySize(files []string, maxSize int64) ([]string, int) {
	if maxSize <= 0 {
		return files, 0
	}

	filtered := make([]string, 0, len(files))
	skipped := 0

	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			skipped++
			continue
		}
		if info.Size() > maxSize {
			skipped++
			continue
		}
		filtered = append(filtered, f)
	}

	return filtered, skipped
}
