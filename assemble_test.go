// SPDX-License-Identifier: MIT
package hierarchy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/hierarchy/v4/childmap"
)

func TestAssembleIDs_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "tree", src: testSource},
		{name: "unrecorded leaves", src: "A:A1,A2,A3\n"},
		{name: "isolated root", src: "A:A1\nB\n"},
		{name: "forest", src: "A:A1\nB\nC:C1,C2\n"},
		{name: "isolated roots", src: "A\nB\n"},
		{name: "empty", src: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := parse(t, tt.src)

			roots, err := AssembleIDs(m)
			require.NoError(t, err)
			assert.Equal(t, m.RootIDs(), items(roots))

			if diff := cmp.Diff(m, ForestChildMap(roots, identity[string])); diff != "" {
				t.Errorf("ForestChildMap() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(m, childmap.FromRelations(childmap.ToRelations(m))); diff != "" {
				t.Errorf("relations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAssembleIDs_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{name: "shared child", src: "A:C\nB:C\n", wantErr: ErrNotRoot},
		{name: "self link", src: "A:A\n", wantErr: ErrSelfLink},
		{name: "cycle", src: "R\nA:B\nB:A\n", wantErr: ErrUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AssembleIDs(parse(t, tt.src))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAssemble(t *testing.T) {
	type employee struct {
		ID    int
		Title string
	}

	staff := []employee{{1, "chief"}, {2, "lead"}, {3, "engineer"}, {4, "contractor"}}
	identify := func(e employee) int { return e.ID }

	m := childmap.New[int]()
	m.Add(1, 2)
	m.Add(2, 3)
	m.Add(3)

	roots, err := Assemble(staff, identify, m)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "chief", roots[0].Item().Title)

	h, err := AssembleHierarchy(staff, identify, m)
	require.NoError(t, err)
	assert.False(t, h.Has(4), "items missing from the map are dropped")

	got, err := h.AncestorItems([]int{3}, false)
	require.NoError(t, err)
	assert.Equal(t, []employee{{2, "lead"}, {1, "chief"}}, got)

	m.Add(3, 5)
	_, err = Assemble(staff, identify, m)
	assert.ErrorIs(t, err, ErrMissingItem)
}
