package analyzer

import (
	"fmt"
	"sort"
	"strings"
)

// ClassDepsReport describes one class declaration and the named types it
// references. Nested class declarations form a tree below it, following the
// lexical nesting of the source.
type ClassDepsReport struct {
	ClassName     string            `json:"class_name"`
	ClassDeps     []string          `json:"class_deps"`
	NestedClasses []ClassDepsReport `json:"nested_classes"`
}

// PackageDepsReport is the union of the dependencies of every class declared
// directly inside one directory. Nested classes are not included.
type PackageDepsReport struct {
	PackageName string   `json:"package_name"`
	PackageDeps []string `json:"package_deps"`
}

// ProjectDepsReport is the union of all class dependencies across a whole
// directory subtree, nested classes included.
type ProjectDepsReport struct {
	ProjectFolder string   `json:"project_folder"`
	ProjectDeps   []string `json:"project_deps"`
}

// Flatten returns the class's own dependencies unioned with those of every
// nested class, recursively, sorted and deduplicated. The result does not
// depend on the order in which nested classes were discovered.
func (r ClassDepsReport) Flatten() []string {
	deps := append([]string{}, r.ClassDeps...)
	for _, nested := range r.NestedClasses {
		deps = append(deps, nested.Flatten()...)
	}
	return sortUnique(deps)
}

// String renders the report as an indented tree, one class per block.
func (r ClassDepsReport) String() string {
	var sb strings.Builder
	r.render(&sb, 0)
	return sb.String()
}

func (r ClassDepsReport) render(sb *strings.Builder, level int) {
	tab := strings.Repeat("|    ", level)
	fmt.Fprintf(sb, "%s|%s\n", tab, r.ClassName)
	fmt.Fprintf(sb, "%s|  dependencies:\n", tab)
	for _, dep := range r.ClassDeps {
		fmt.Fprintf(sb, "%s|    %s\n", tab, dep)
	}
	fmt.Fprintf(sb, "%s|  nested classes:\n", tab)
	for _, nested := range r.NestedClasses {
		nested.render(sb, level+1)
	}
	fmt.Fprintf(sb, "%s|==========\n", tab)
}

// sortUnique sorts the given names and removes duplicates in place.
func sortUnique(names []string) []string {
	sort.Strings(names)
	out := names[:0]
	for i, name := range names {
		if i == 0 || name != names[i-1] {
			out = append(out, name)
		}
	}
	return out
}
