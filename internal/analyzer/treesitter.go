package analyzer

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// loadJavaLanguage loads the compiled Java grammar. The returned language is
// immutable and shared across every parse; each parse still gets its own
// sitter.Parser.
func loadJavaLanguage() (*sitter.Language, error) {
	lang := sitter.NewLanguage(java.Language())
	if lang == nil {
		return nil, ErrGrammar
	}
	return lang, nil
}

// parseSource parses Java source text into a concrete syntax tree. The caller
// owns the returned tree and must Close it.
func parseSource(language *sitter.Language, source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parser produced no tree")
	}
	return tree, nil
}

// nodeText extracts the source text span backing a node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// fieldText returns the text of the named grammar field, or "" if absent.
func fieldText(node *sitter.Node, field string, source []byte) string {
	return nodeText(node.ChildByFieldName(field), source)
}
