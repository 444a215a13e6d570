package analyzer

import (
	"context"
	"os"
)

// ProcessFile reads one Java source file and returns the report tree of every
// top-level class it declares. Read failures and parse failures come back as
// *FileError; a malformed tree shape comes back as *StructuralError.
func (a *Analyzer) ProcessFile(ctx context.Context, path string) ([]ClassDepsReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Kind: FileErrorIo, Err: err}
	}

	return a.extractFromSource(path, source)
}

// extractFromSource parses source text and extracts class reports from the
// whole-file root node.
func (a *Analyzer) extractFromSource(path string, source []byte) ([]ClassDepsReport, error) {
	tree, err := parseSource(a.language, source)
	if err != nil {
		return nil, &FileError{Path: path, Kind: FileErrorParse, Err: err}
	}
	defer tree.Close()

	root := tree.RootNode()
	imports := collectFileImports(root, source)

	return extractClasses(root, source, imports)
}
