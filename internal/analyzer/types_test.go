package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for ClassDepsReport:
// - Flatten on a flat report yields its own deps, sorted and deduplicated
// - Flatten is idempotent
// - Flatten is independent of nested-class discovery order
// - String renders an indented tree

func TestFlatten_FlatReport(t *testing.T) {
	t.Parallel()

	report := ClassDepsReport{
		ClassName: "A",
		ClassDeps: []string{"Foo", "Bar", "Foo"},
	}

	assert.Equal(t, []string{"Bar", "Foo"}, report.Flatten())
}

func TestFlatten_Idempotent(t *testing.T) {
	t.Parallel()

	report := ClassDepsReport{
		ClassName: "A",
		ClassDeps: []string{"Bar", "Foo"},
	}

	once := report.Flatten()
	flat := ClassDepsReport{ClassName: "A", ClassDeps: once}
	assert.Equal(t, once, flat.Flatten())
}

func TestFlatten_Nested(t *testing.T) {
	t.Parallel()

	report := ClassDepsReport{
		ClassName: "Outer",
		ClassDeps: []string{"Inner", "Foo"},
		NestedClasses: []ClassDepsReport{
			{
				ClassName: "Inner",
				ClassDeps: []string{"String", "Foo"},
				NestedClasses: []ClassDepsReport{
					{ClassName: "Deep", ClassDeps: []string{"Bar"}},
				},
			},
		},
	}

	assert.Equal(t, []string{"Bar", "Foo", "Inner", "String"}, report.Flatten())
}

func TestFlatten_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := ClassDepsReport{ClassName: "A", ClassDeps: []string{"Foo"}}
	b := ClassDepsReport{ClassName: "B", ClassDeps: []string{"Bar"}}

	forward := ClassDepsReport{ClassName: "Outer", NestedClasses: []ClassDepsReport{a, b}}
	backward := ClassDepsReport{ClassName: "Outer", NestedClasses: []ClassDepsReport{b, a}}

	assert.Equal(t, forward.Flatten(), backward.Flatten())
}

func TestClassDepsReport_String(t *testing.T) {
	t.Parallel()

	report := ClassDepsReport{
		ClassName: "Outer",
		ClassDeps: []string{"Inner"},
		NestedClasses: []ClassDepsReport{
			{ClassName: "Inner", ClassDeps: []string{"String"}},
		},
	}

	out := report.String()
	assert.Contains(t, out, "|Outer\n")
	assert.Contains(t, out, "|    Inner\n")
	assert.Contains(t, out, "|    |Inner\n")
	assert.Contains(t, out, "|    |    String\n")
	assert.Contains(t, out, "|==========\n")
}

func TestSortUnique(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"A", "B", "C"}, sortUnique([]string{"C", "A", "B", "A", "C"}))
	assert.Empty(t, sortUnique([]string{}))
}
