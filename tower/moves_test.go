package tower_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanoi/tower"
)

func TestMoves_InitialState(t *testing.T) {
	s := tower.MustState([][]int{{3, 2, 1}, {}, {}})

	assert.Equal(t, []tower.Move{
		{From: 0, To: 1, Disk: 1},
		{From: 0, To: 2, Disk: 1},
	}, s.Moves())
}

func TestMoves_OneDiskPerPeg(t *testing.T) {
	s := tower.MustState([][]int{{3}, {2}, {1}})

	// src ascending, then dst ascending; disk 3 cannot move anywhere
	assert.Equal(t, []tower.Move{
		{From: 1, To: 0, Disk: 2},
		{From: 2, To: 0, Disk: 1},
		{From: 2, To: 1, Disk: 1},
	}, s.Moves())
}

func TestSuccessors_DoNotMutateInput(t *testing.T) {
	s := tower.MustState([][]int{{3, 2}, {1}, {}})
	before := s.Key()

	succ := s.Successors()
	require.NotEmpty(t, succ)
	assert.Equal(t, before, s.Key())

	// mutating a successor's copy never leaks back
	p := succ[0].Pegs()
	p[0] = append(p[0], 99)
	assert.Equal(t, before, s.Key())
}

func TestSuccessors_SinglePegHasNone(t *testing.T) {
	s := tower.MustState([][]int{{2, 1}})

	succ := s.Successors()
	assert.NotNil(t, succ)
	assert.Empty(t, succ)
}

func TestSuccessors_MatchMoves(t *testing.T) {
	s := tower.MustState([][]int{{4}, {3, 2}, {1}})
	moves := s.Moves()
	succ := s.Successors()
	require.Len(t, succ, len(moves))

	for i, m := range moves {
		next, err := s.Apply(m)
		require.NoError(t, err)
		assert.True(t, next.Equal(succ[i]), "successor %d must equal Apply(%v)", i, m)

		got, ok := tower.Diff(s, succ[i])
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
}

func TestApply_Errors(t *testing.T) {
	s := tower.MustState([][]int{{3, 2}, {1}, {}})
	cases := []struct {
		name string
		move tower.Move
		want error
	}{
		{"from out of range", tower.Move{From: 3, To: 0, Disk: 1}, tower.ErrPegIndex},
		{"to out of range", tower.Move{From: 0, To: -1, Disk: 2}, tower.ErrPegIndex},
		{"same peg", tower.Move{From: 0, To: 0, Disk: 2}, tower.ErrIllegalMove},
		{"empty source", tower.Move{From: 2, To: 0, Disk: 1}, tower.ErrIllegalMove},
		{"not the top disk", tower.Move{From: 0, To: 2, Disk: 3}, tower.ErrIllegalMove},
		{"onto smaller", tower.Move{From: 0, To: 1, Disk: 2}, tower.ErrIllegalMove},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Apply(tc.move)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDiff_NotAdjacent(t *testing.T) {
	a := tower.MustState([][]int{{3, 2, 1}, {}, {}})
	b := tower.MustState([][]int{{}, {}, {3, 2, 1}})

	_, ok := tower.Diff(a, b)
	assert.False(t, ok)

	_, ok = tower.Diff(a, a)
	assert.False(t, ok, "a state is not one move from itself")
}

func TestMove_String(t *testing.T) {
	m := tower.Move{From: 0, To: 2, Disk: 1}
	assert.Equal(t, "move disk 1 from peg 1 to peg 3", m.String())
}

// TestSuccessors_Invariants walks the whole reachable space of a 4-disk,
// 3-peg puzzle and checks every generated state.
func TestSuccessors_Invariants(t *testing.T) {
	const disks = 4
	p, err := tower.Canonical(disks, 3, 0, 2)
	require.NoError(t, err)

	seen := map[string]bool{p.Root().Key(): true}
	queue := []tower.State{p.Root()}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		moves := cur.Moves()
		succ := cur.Successors()
		require.Len(t, succ, len(moves))

		keys := make(map[string]bool, len(succ))
		for _, next := range succ {
			// revalidating through NewState checks conservation and ordering
			_, err := tower.NewState(next.Pegs())
			require.NoError(t, err, "invalid successor %q of %q", next.Key(), cur.Key())

			_, ok := tower.Diff(cur, next)
			require.True(t, ok, "%q is not one move from %q", next.Key(), cur.Key())

			keys[next.Key()] = true
			if !seen[next.Key()] {
				seen[next.Key()] = true
				queue = append(queue, next)
			}
		}
		require.Len(t, keys, len(succ), "successors of %q must be distinct", cur.Key())
	}

	assert.Len(t, seen, 81, "3^4 reachable states")
}
