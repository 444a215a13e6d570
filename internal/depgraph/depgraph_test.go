package depgraph

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscope/depscope/internal/analyzer"
)

// Test Plan for depgraph:
// - One vertex per class and per dependency, one edge per reference
// - Nested classes contribute their own vertices and edges
// - Duplicate references across classes do not error
// - DOT output names every vertex

func sampleReports() []analyzer.ClassDepsReport {
	return []analyzer.ClassDepsReport{
		{
			ClassName: "OrderService",
			ClassDeps: []string{"Order", "OrderRepository"},
			NestedClasses: []analyzer.ClassDepsReport{
				{ClassName: "Builder", ClassDeps: []string{"Order"}},
			},
		},
		{
			ClassName: "Order",
			ClassDeps: []string{"OrderRepository"},
		},
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	g, err := Build(sampleReports())
	require.NoError(t, err)

	adjacency, err := g.AdjacencyMap()
	require.NoError(t, err)

	require.Contains(t, adjacency, "OrderService")
	require.Contains(t, adjacency, "Order")
	require.Contains(t, adjacency, "OrderRepository")
	require.Contains(t, adjacency, "Builder")

	assert.Contains(t, adjacency["OrderService"], "Order")
	assert.Contains(t, adjacency["OrderService"], "OrderRepository")
	assert.Contains(t, adjacency["Builder"], "Order")
	assert.Contains(t, adjacency["Order"], "OrderRepository")
}

func TestWriteDOT(t *testing.T) {
	t.Parallel()

	g, err := Build(sampleReports())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDOT(g, &buf))

	out := buf.String()
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "OrderService")
	assert.Contains(t, out, "OrderRepository")
	assert.Contains(t, out, "Builder")
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	g, err := Build(nil)
	require.NoError(t, err)

	adjacency, err := g.AdjacencyMap()
	require.NoError(t, err)
	assert.Empty(t, adjacency)
}
