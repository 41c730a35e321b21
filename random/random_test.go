// SPDX-License-Identifier: MIT
package random

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/hierarchy/v4/childmap"
	"gitlab.com/fisherprime/hierarchy/v4/traverse"
)

func TestGenerate(t *testing.T) {
	m, err := Generate(WithSeed(7), WithRoots(3), WithDepth(4))
	require.NoError(t, err)

	require.NoError(t, childmap.Validate(m))
	assert.Equal(t, []string{"1", "2", "3"}, m.RootIDs())

	for _, id := range m.IDs() {
		assert.LessOrEqual(t, len(id)-1, 4)
	}
	for parent, children := range m.All() {
		assert.True(t, len(children) > 0 || len(parent) == 1, "(%s) is an empty entry", parent)
	}

	again, err := Generate(WithSeed(7), WithRoots(3), WithDepth(4))
	require.NoError(t, err)
	if diff := cmp.Diff(m, again); diff != "" {
		t.Errorf("Generate() is not deterministic (-first +second):\n%s", diff)
	}
}

func TestGenerate_Full(t *testing.T) {
	m, err := Generate(WithFull(true), WithRoots(1), WithDepth(2), WithMaxChildren(2))
	require.NoError(t, err)

	want := childmap.New[string]()
	want.Add("1", "11", "12")
	want.Add("11", "111", "112")
	want.Add("12", "121", "122")

	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_ChildlessRoots(t *testing.T) {
	m, err := Generate(WithRoots(2), WithDepth(0))
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, m.Keys())
	assert.Equal(t, []string{"1", "2"}, m.RootIDs())
}

func TestGenerate_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "no roots", opts: []Option{WithRoots(0)}},
		{name: "too many roots", opts: []Option{WithRoots(10)}},
		{name: "too many children", opts: []Option{WithMaxChildren(10)}},
		{name: "negative depth", opts: []Option{WithDepth(-1)}},
		{name: "no workers", opts: []Option{WithWorkers(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.opts...)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestGenerateBatch(t *testing.T) {
	got, err := GenerateBatch(context.Background(), 16, WithSeed(100), WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, got, 16)

	for index, m := range got {
		want, err := Generate(WithSeed(100 + uint64(index)))
		require.NoError(t, err)

		if diff := cmp.Diff(want, m); diff != "" {
			t.Errorf("map %d mismatch (-want +got):\n%s", index, diff)
		}
	}
}

func TestGenerateBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateBatch(ctx, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTraversalDepth(t *testing.T) {
	batch, err := GenerateBatch(context.Background(), 8, WithSeed(1), WithDepth(5), WithMaxChildren(4))
	require.NoError(t, err)

	for _, order := range []traverse.Order{traverse.BreadthFirst, traverse.DepthFirst} {
		t.Run(order.String(), func(t *testing.T) {
			for _, m := range batch {
				visited := 0
				_, err := traverse.FlattenGraphSignal(m.RootIDs(), func(s *traverse.Signal[string]) {
					visited++
					assert.Equal(t, len(s.Node())-1, s.Depth(), "depth of (%s)", s.Node())

					children, _ := m.Children(s.Node())
					_ = s.Next(children...)
				}, traverse.WithOrder(order))

				require.NoError(t, err)
				assert.Equal(t, len(m.IDs()), visited)
			}
		})
	}
}

func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()

	for n := 0; n < b.N; n++ {
		_, _ = Generate(WithSeed(uint64(n)), WithDepth(6), WithMaxChildren(4))
	}
}
