package synth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colinchilds/giftorio/blueprint"
)

func TestAlloc_MonotonicFromOne(t *testing.T) {
	a := newAlloc()
	require.Equal(t, 1, a.take())
	require.Equal(t, 2, a.take())
	require.Equal(t, 3, a.take())
}

func TestBus_NoWiresBelowTwoTaps(t *testing.T) {
	b := &bus{}
	require.Nil(t, b.wires())
	b.attach(7, ConnRedIn)
	require.Nil(t, b.wires())
}

// TestBus_PairwiseOlderFirst verifies wires follow attachment order,
// one per consecutive pair, older entity first.
func TestBus_PairwiseOlderFirst(t *testing.T) {
	b := &bus{}
	b.attach(2, ConnGreenOut)
	b.attach(6, ConnGreenIn)
	b.attach(12, ConnGreenIn)

	require.Equal(t, []blueprint.Wire{
		{2, ConnGreenOut, 6, ConnGreenIn},
		{6, ConnGreenIn, 12, ConnGreenIn},
	}, b.wires())
}

func TestPlanGroups_Tiling(t *testing.T) {
	cases := []struct {
		name           string
		width, height  int
		palette        int
		wantGroups     int
		wantFirstWidth int
		wantLastWidth  int
	}{
		{"SingleGroup", 2, 1, 3, 1, 2, 2},
		{"ExactSplit", 4, 1, 2, 2, 2, 2},
		{"RaggedTail", 5, 2, 4, 3, 2, 1},
		{"OneColumnGroups", 3, 3, 3, 3, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spans, err := planGroups(tc.width, tc.height, tc.palette)
			require.NoError(t, err)
			require.Len(t, spans, tc.wantGroups)
			require.Equal(t, tc.wantFirstWidth, spans[0].width())
			require.Equal(t, tc.wantLastWidth, spans[len(spans)-1].width())

			// Stripes tile [0, width) exactly, in order, no overlap.
			next := 0
			for _, s := range spans {
				require.Equal(t, next, s.Left)
				require.Greater(t, s.Right, s.Left)
				next = s.Right
			}
			require.Equal(t, tc.width, next)
		})
	}
}

func TestPlanGroups_ZeroColumnsFit(t *testing.T) {
	_, err := planGroups(4, 5, 3)
	require.ErrorIs(t, err, ErrCapacity)
}

func TestLatticeCount_Formula(t *testing.T) {
	// ceil((30 - (18-2)/2) / 18) + 1 = ceil(22/18) + 1 = 3.
	require.Equal(t, 3, latticeCount(30, 18))
	// Tiny footprints still get one node.
	require.Equal(t, 1, latticeCount(2, 18))
	// Wider spacing shrinks the count: ceil((30-13)/28)+1 = 2.
	require.Equal(t, 2, latticeCount(30, 28))
}
