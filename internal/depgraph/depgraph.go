// Package depgraph turns class dependency reports into a directed graph for
// export, e.g. as Graphviz DOT for rendering.
package depgraph

import (
	"errors"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/depscope/depscope/internal/analyzer"
)

// Build constructs a directed graph with one vertex per class and per
// dependency name, and one edge per class -> dependency reference. Nested
// classes contribute their own vertices and edges.
func Build(reports []analyzer.ClassDepsReport) (graph.Graph[string, string], error) {
	g := graph.New(graph.StringHash, graph.Directed())

	for _, report := range reports {
		if err := addClass(g, report); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// WriteDOT renders the graph in Graphviz DOT format.
func WriteDOT(g graph.Graph[string, string], w io.Writer) error {
	return draw.DOT(g, w)
}

func addClass(g graph.Graph[string, string], report analyzer.ClassDepsReport) error {
	if err := addVertex(g, report.ClassName); err != nil {
		return err
	}

	for _, dep := range report.ClassDeps {
		if err := addVertex(g, dep); err != nil {
			return err
		}
		if err := g.AddEdge(report.ClassName, dep); err != nil &&
			!errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return err
		}
	}

	for _, nested := range report.NestedClasses {
		if err := addClass(g, nested); err != nil {
			return err
		}
	}

	return nil
}

func addVertex(g graph.Graph[string, string], name string) error {
	err := g.AddVertex(name)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return err
	}
	return nil
}
