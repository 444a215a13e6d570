package analyzer

import "strings"

// excludedTokens holds primitive type names and keywords that a field-based
// scan can pick up in type position. None of them ever names a real
// dependency.
var excludedTokens = map[string]struct{}{
	// primitives
	"byte": {}, "short": {}, "int": {}, "long": {},
	"float": {}, "double": {}, "boolean": {}, "char": {}, "void": {},
	// keywords
	"new": {}, "return": {},
	"public": {}, "protected": {}, "private": {},
	"static": {}, "final": {}, "abstract": {},
	// control flow
	"if": {}, "else": {}, "for": {}, "while": {},
	"switch": {}, "case": {}, "default": {}, "break": {}, "continue": {},
	"try": {}, "catch": {}, "finally": {}, "throw": {}, "throws": {},
	"synchronized": {},
}

// primitiveTypes is the subset of excludedTokens applied as a second filter
// on assembled dependency lists. Declarator-chain lookups can reintroduce a
// primitive after the first normalization pass.
var primitiveTypes = map[string]struct{}{
	"byte": {}, "short": {}, "int": {}, "long": {},
	"float": {}, "double": {}, "boolean": {}, "char": {}, "void": {},
}

// NormalizeType turns a raw type token into a canonical dependency name.
// Generic parameters and array markers are stripped, surrounding whitespace
// trimmed. Returns false when the token is empty or an excluded keyword.
func NormalizeType(raw string) (string, bool) {
	name := raw
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSuffix(name, "[]")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	if _, excluded := excludedTokens[name]; excluded {
		return "", false
	}
	return name, true
}

// filterPrimitives removes primitive type names from an assembled list.
func filterPrimitives(deps []string) []string {
	out := deps[:0]
	for _, dep := range deps {
		if _, primitive := primitiveTypes[dep]; !primitive {
			out = append(out, dep)
		}
	}
	return out
}
