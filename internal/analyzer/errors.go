package analyzer

import (
	"errors"
	"fmt"
)

// ErrGrammar indicates that the Java grammar could not be loaded. This is a
// configuration-level failure: nothing can be analyzed without the grammar,
// so callers should abort the whole run.
var ErrGrammar = errors.New("failed to load Java grammar")

// FileErrorKind classifies per-file failures.
type FileErrorKind string

const (
	FileErrorIo    FileErrorKind = "io"
	FileErrorParse FileErrorKind = "parse"
)

// FileError is a recoverable per-file failure. Aggregate operations collect
// these and keep going; the offending file simply contributes nothing to the
// report.
type FileError struct {
	Path string
	Kind FileErrorKind
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// StructuralError reports a syntax tree that does not match the shape the
// extractor expects, such as a class declaration without a name field. It
// points at a grammar/extractor mismatch rather than bad user input.
type StructuralError struct {
	NodeKind string
	Missing  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s node missing %q field", e.NodeKind, e.Missing)
}
