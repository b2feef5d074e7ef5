package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(f frontier[int]) []int {
	var out []int
	for f.len() > 0 {
		out = append(out, f.pop().State)
	}

	return out
}

func TestFrontier_Disciplines(t *testing.T) {
	nodes := []*Node[int]{
		{State: 1, Depth: 2, Heuristic: 1, seq: 0}, // priority 3
		{State: 2, Depth: 1, Heuristic: 0, seq: 1}, // priority 1
		{State: 3, Depth: 1, Heuristic: 2, seq: 2}, // priority 3
		{State: 4, Depth: 0, Heuristic: 1, seq: 3}, // priority 1
	}

	cases := []struct {
		strategy Strategy
		want     []int
	}{
		{DepthFirst, []int{4, 3, 2, 1}},
		{BreadthFirst, []int{1, 2, 3, 4}},
		{BestFirst, []int{2, 4, 1, 3}}, // priority, then seq
	}
	for _, tc := range cases {
		t.Run(tc.strategy.String(), func(t *testing.T) {
			f, err := newFrontier[int](tc.strategy)
			require.NoError(t, err)
			for _, n := range nodes {
				f.push(n)
			}
			assert.Equal(t, len(nodes), f.len())
			assert.Equal(t, tc.want, drain(f))
			assert.Equal(t, 0, f.len())
		})
	}

	_, err := newFrontier[int](Strategy(-1))
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

// TestQueueFrontier_Compaction interleaves pushes and pops across the
// compaction threshold and checks FIFO order survives.
func TestQueueFrontier_Compaction(t *testing.T) {
	q := &queueFrontier[int]{}
	next, want := 0, 0
	for round := 0; round < 10; round++ {
		for i := 0; i < 50; i++ {
			q.push(&Node[int]{State: next})
			next++
		}
		for i := 0; i < 40; i++ {
			require.Equal(t, want, q.pop().State)
			want++
		}
	}
	assert.Equal(t, next-want, q.len())
	for q.len() > 0 {
		require.Equal(t, want, q.pop().State)
		want++
	}
	assert.Equal(t, next, want)
}
