package analyzer

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// sourceWalker enumerates Java source files under a directory, applying
// source and ignore glob patterns to slash-normalized relative paths.
type sourceWalker struct {
	sourcePatterns []compiledPattern
	ignorePatterns []compiledPattern
}

func newSourceWalker(sourcePatterns, ignorePatterns []string) (*sourceWalker, error) {
	w := &sourceWalker{}

	for _, pattern := range sourcePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		w.sourcePatterns = append(w.sourcePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		w.ignorePatterns = append(w.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return w, nil
}

// walkTree walks the full directory tree under root and returns every source
// file path. Entries that error during traversal (permissions, broken
// symlinks) are skipped rather than aborting the walk.
func (w *sourceWalker) walkTree(root string) []string {
	files := []string{}

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if w.shouldIgnore(relPath) && relPath != "." {
				return filepath.SkipDir
			}
			return nil
		}

		if w.shouldIgnore(relPath) {
			return nil
		}
		if w.matchesAnyPattern(relPath, w.sourcePatterns) {
			files = append(files, path)
		}
		return nil
	})

	return files
}

// listDir returns the source files directly inside dir, without descending
// into subdirectories. The directory itself must be readable.
func (w *sourceWalker) listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if w.shouldIgnore(name) {
			continue
		}
		if w.matchesAnyPattern(name, w.sourcePatterns) {
			files = append(files, filepath.Join(dir, name))
		}
	}
	return files, nil
}

// shouldIgnore checks a relative path against the ignore patterns, including
// the directory-as-prefix form ("target" matching "target/**").
func (w *sourceWalker) shouldIgnore(relPath string) bool {
	if w.matchesAnyPattern(relPath, w.ignorePatterns) {
		return true
	}
	return w.matchesAnyPattern(relPath+"/**", w.ignorePatterns)
}

// matchesAnyPattern checks if a path matches any of the given patterns.
// Root-level paths additionally match against patterns with a leading "**/"
// removed, so "**/*.java" covers both "Main.java" and "src/Main.java".
func (w *sourceWalker) matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	if !strings.Contains(path, "/") {
		for _, cp := range patterns {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if g, err := glob.Compile(simplified, '/'); err == nil && g.Match(path) {
					return true
				}
			}
		}
	}

	return false
}
