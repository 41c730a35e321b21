// SPDX-License-Identifier: MIT
package traverse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A -> {A1 -> {A11, A12}, A2}, B -> {B1}
var testGraph = map[string][]string{
	"A":  {"A1", "A2"},
	"A1": {"A11", "A12"},
	"B":  {"B1"},
}

func children(node string) []string { return testGraph[node] }

func TestFlattenGraph(t *testing.T) {
	tests := []struct {
		name  string
		roots []string
		opts  []Option
		want  []string
	}{
		{
			name:  "breadth-first",
			roots: []string{"A"},
			want:  []string{"A", "A1", "A2", "A11", "A12"},
		},
		{
			name:  "breadth-first reversed",
			roots: []string{"A"},
			opts:  []Option{WithReverse(true)},
			want:  []string{"A", "A2", "A1", "A12", "A11"},
		},
		{
			name:  "depth-first",
			roots: []string{"A"},
			opts:  []Option{WithOrder(DepthFirst)},
			want:  []string{"A", "A1", "A11", "A12", "A2"},
		},
		{
			name:  "depth-first reversed",
			roots: []string{"A"},
			opts:  []Option{WithOrder(DepthFirst), WithReverse(true)},
			want:  []string{"A", "A2", "A1", "A12", "A11"},
		},
		{
			name:  "multiple roots",
			roots: []string{"A", "B"},
			want:  []string{"A", "B", "A1", "A2", "B1", "A11", "A12"},
		},
		{
			name:  "excluding self",
			roots: []string{"A"},
			opts:  []Option{WithIncludeSelf(false)},
			want:  []string{"A1", "A2", "A11", "A12"},
		},
		{
			name:  "no roots",
			roots: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlattenGraph(tt.roots, children, tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FlattenGraph() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlattenDescendants(t *testing.T) {
	got := FlattenDescendants([]string{"A"}, children)
	want := []string{"A1", "A2", "A11", "A12"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FlattenDescendants() mismatch (-want +got):\n%s", diff)
	}

	got = FlattenDescendants([]string{"A"}, children, WithIncludeSelf(true), WithOrder(DepthFirst))
	want = []string{"A", "A1", "A11", "A12", "A2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FlattenDescendants(includeSelf) mismatch (-want +got):\n%s", diff)
	}
}

func TestReverseIsMirrorImage(t *testing.T) {
	for _, order := range []Order{BreadthFirst, DepthFirst} {
		t.Run(order.String(), func(t *testing.T) {
			mirror := func(node string) []string {
				kids := testGraph[node]
				reversed := make([]string, len(kids))
				for index := range kids {
					reversed[len(kids)-1-index] = kids[index]
				}
				return reversed
			}

			got := FlattenGraph([]string{"A", "B"}, children, WithOrder(order), WithReverse(true))
			want := FlattenGraph([]string{"B", "A"}, mirror, WithOrder(order))
			assert.Equal(t, want, got)
		})
	}
}

func TestIterator_Depth(t *testing.T) {
	for _, order := range []Order{BreadthFirst, DepthFirst} {
		t.Run(order.String(), func(t *testing.T) {
			it := Graph([]string{"A", "B"}, children, WithOrder(order))
			visited := 0
			for node, depth := range it.All() {
				// Ids gain a character per level.
				assert.Equal(t, len(node)-1, depth, "depth of (%s)", node)
				visited++
			}
			require.NoError(t, it.Err())
			assert.Equal(t, 7, visited)
		})
	}
}

func TestIterator_Lazy(t *testing.T) {
	calls := 0
	next := func(node string) []string {
		calls++
		return testGraph[node]
	}

	it := Graph([]string{"A"}, next)
	require.True(t, it.Next())
	assert.Equal(t, "A", it.Value())
	assert.Equal(t, 1, calls, "only the yielded node should be expanded")

	for it.Next() {
	}
	assert.False(t, it.Next(), "an exhausted iterator stays exhausted")
}

func TestCycleDetection(t *testing.T) {
	// A -> B -> C -> D -> A
	cyclic := map[string][]string{"A": {"B"}, "B": {"C", "D"}, "C": {"D"}, "D": {"A"}}
	next := func(node string) []string { return cyclic[node] }

	for _, order := range []Order{BreadthFirst, DepthFirst} {
		t.Run(order.String(), func(t *testing.T) {
			got := FlattenGraph([]string{"A"}, next, WithOrder(order), WithCycleDetection(true))
			assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, got)
		})
	}
}

func TestSearchGraph(t *testing.T) {
	visited := []string{}
	next := func(node string) []string {
		visited = append(visited, node)
		return testGraph[node]
	}

	node, ok := SearchGraph([]string{"A"}, next, func(n string) bool { return n == "A1" })
	require.True(t, ok)
	assert.Equal(t, "A1", node)
	assert.Equal(t, []string{"A", "A1"}, visited, "search should stop at the first match")

	_, ok = SearchGraph([]string{"A"}, children, func(n string) bool { return n == "missing" })
	assert.False(t, ok)

	all := SearchGraphAll([]string{"A", "B"}, children, func(n string) bool { return len(n) == 2 })
	assert.Equal(t, []string{"A1", "A2", "B1"}, all)

	descendant, ok := SearchDescendants([]string{"A"}, children, func(n string) bool { return n[0] == 'A' })
	require.True(t, ok)
	assert.Equal(t, "A1", descendant)

	assert.Equal(t, []string{"A11", "A12"},
		SearchDescendantsAll([]string{"A"}, children, func(n string) bool { return len(n) == 3 }))
}

func BenchmarkFlattenGraph(b *testing.B) {
	wide := map[int][]int{}
	for parent := 0; parent < 1000; parent++ {
		wide[parent] = []int{parent*4 + 1, parent*4 + 2, parent*4 + 3, parent*4 + 4}
	}
	next := func(node int) []int { return wide[node] }

	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_ = FlattenGraph([]int{0}, next, WithCycleDetection(true))
	}
}
