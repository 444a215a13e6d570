package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for NormalizeType:
// - Strips generic parameter suffixes (Foo<Bar> -> Foo)
// - Strips array markers, including stacked ones (Foo[][] -> Foo)
// - Trims surrounding whitespace
// - Rejects empty strings and whitespace-only strings
// - Rejects primitive type names
// - Rejects keywords that a token scan can mistake for a type

func TestNormalizeType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"Foo", "Foo", true},
		{"Foo<Bar>", "Foo", true},
		{"Foo<Bar<Baz>>", "Foo", true},
		{"Foo[]", "Foo", true},
		{"Foo[][]", "Foo", true},
		{"List<String>[]", "List", true},
		{"  Foo  ", "Foo", true},
		{"java.util.List", "java.util.List", true},
		{"", "", false},
		{"   ", "", false},
		{"int", "", false},
		{"boolean", "", false},
		{"void", "", false},
		{"int[]", "", false},
		{"new", "", false},
		{"return", "", false},
		{"public", "", false},
		{"synchronized", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeType(tt.raw)
		assert.Equal(t, tt.ok, ok, "NormalizeType(%q) ok", tt.raw)
		if tt.ok {
			assert.Equal(t, tt.want, got, "NormalizeType(%q)", tt.raw)
		}
	}
}

// Test: the same canonical name comes out of every surface form
func TestNormalizeType_Canonical(t *testing.T) {
	t.Parallel()

	forms := []string{"Foo<Bar>", "Foo[]", "Foo", "  Foo  "}
	for _, form := range forms {
		got, ok := NormalizeType(form)
		assert.True(t, ok, "NormalizeType(%q)", form)
		assert.Equal(t, "Foo", got, "NormalizeType(%q)", form)
	}
}

func TestFilterPrimitives(t *testing.T) {
	t.Parallel()

	got := filterPrimitives([]string{"Foo", "int", "Bar", "void", "boolean"})
	assert.Equal(t, []string{"Foo", "Bar"}, got)
}
