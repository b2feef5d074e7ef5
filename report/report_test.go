package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanoi/report"
	"github.com/katalvlaran/hanoi/search"
	"github.com/katalvlaran/hanoi/tower"
)

func solveTwo(t *testing.T) (*tower.Puzzle, *search.Result[tower.State]) {
	t.Helper()
	p, err := tower.Canonical(2, 3, 0, 2)
	require.NoError(t, err)
	res, err := search.BreadthFirstSearch[tower.State](p)
	require.NoError(t, err)
	require.Equal(t, 3, res.Moves())

	return p, res
}

func TestText_Solution(t *testing.T) {
	p, res := solveTwo(t)

	var buf bytes.Buffer
	pr := report.NewText(&buf)
	require.NoError(t, pr.Start(p))
	require.NoError(t, pr.Result(res))
	require.NoError(t, pr.Finish())
	out := buf.String()

	assert.NotContains(t, out, "\x1b[", "plain output carries no escape codes")
	assert.True(t, strings.HasPrefix(out, "Welcome to the Hanoi Tower Solver!"))
	assert.Contains(t, out, "Initial State:\nPeg 1: 2, 1\nPeg 2:\nPeg 3:\n")
	assert.Contains(t, out, "Goal State:\nPeg 1:\nPeg 2:\nPeg 3: 2, 1\n")
	assert.Contains(t, out, "Finding Solution (BFS):")
	assert.Contains(t, out, "Step 1:\nPeg 1: 2, 1")
	assert.Contains(t, out, "Step 2: move disk 1 from peg 1 to peg 2")
	assert.Contains(t, out, "Step 4: move disk 1 from peg 2 to peg 3")
	assert.NotContains(t, out, "Step 5:")
	assert.Contains(t, out, "the number of steps required: 3")
	assert.Contains(t, out, "Time Taken:")
	assert.True(t, strings.HasSuffix(out, "Have a great day!\n"))
}

func TestText_NoPath(t *testing.T) {
	p, res := solveTwo(t)

	var buf bytes.Buffer
	pr := report.NewText(&buf, report.WithPath(false))
	require.NoError(t, pr.Start(p))
	require.NoError(t, pr.Result(res))
	out := buf.String()

	assert.NotContains(t, out, "Step 1:")
	assert.Contains(t, out, "the number of steps required: 3")
}

func TestText_NoSolution(t *testing.T) {
	p, _ := solveTwo(t)
	failed := &search.Result[tower.State]{Strategy: search.DepthFirst, Expanded: 4, Limited: true}

	var buf bytes.Buffer
	pr := report.NewText(&buf)
	require.NoError(t, pr.Start(p))
	require.NoError(t, pr.Result(failed))
	out := buf.String()

	assert.Contains(t, out, "Finding Solution (DFS):")
	assert.Contains(t, out, "unable to find a way to solve the problem")
	assert.Contains(t, out, "stopped after 4 expanded states")
	assert.NotContains(t, out, "steps required")
}

func TestText_AlreadySolved(t *testing.T) {
	p, err := tower.Canonical(3, 3, 1, 1)
	require.NoError(t, err)
	res, err := search.BestFirstSearch[tower.State](p)
	require.NoError(t, err)

	var buf bytes.Buffer
	pr := report.NewText(&buf)
	require.NoError(t, pr.Start(p))
	require.NoError(t, pr.Result(res))
	out := buf.String()

	assert.Contains(t, out, "Finding Solution (A*):")
	assert.Contains(t, out, "no moves are required")
	assert.Contains(t, out, "the number of steps required: 0")
}

func TestText_Color(t *testing.T) {
	p, res := solveTwo(t)

	var buf bytes.Buffer
	pr := report.NewText(&buf, report.WithColor(true))
	require.NoError(t, pr.Start(p))
	require.NoError(t, pr.Result(res))

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Welcome to the Hanoi Tower Solver!")
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestText_WriteErrorStopsOutput(t *testing.T) {
	p, res := solveTwo(t)

	w := &failingWriter{}
	pr := report.NewText(w)
	assert.EqualError(t, pr.Start(p), "disk full")
	assert.EqualError(t, pr.Result(res), "disk full")
	assert.EqualError(t, pr.Finish(), "disk full")
	assert.Equal(t, 1, w.n, "nothing is written after the first failure")
}

func TestJSON_Document(t *testing.T) {
	p, res := solveTwo(t)
	res.Elapsed = 1500 * time.Microsecond
	failed := &search.Result[tower.State]{Strategy: search.DepthFirst, RunID: "r2", Limited: true}

	var buf bytes.Buffer
	pr := report.NewJSON(&buf)
	require.NoError(t, pr.Start(p))
	require.NoError(t, pr.Result(res))
	require.NoError(t, pr.Result(failed))
	require.NoError(t, pr.Finish())

	var doc report.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 2, doc.Disks)
	assert.Equal(t, 3, doc.Pegs)
	assert.Equal(t, [][]int{{2, 1}, {}, {}}, doc.Initial)
	assert.Equal(t, [][]int{{}, {}, {2, 1}}, doc.Goal)
	require.Len(t, doc.Runs, 2)

	ok := doc.Runs[0]
	assert.Equal(t, "bfs", ok.Strategy)
	assert.Equal(t, res.RunID, ok.RunID)
	assert.True(t, ok.Found)
	assert.Equal(t, 3, ok.Moves)
	assert.InDelta(t, 1.5, ok.ElapsedMS, 1e-9)
	require.Len(t, ok.Steps, 4)
	assert.Nil(t, ok.Steps[0].Move)
	assert.Equal(t, &report.StepMove{Disk: 2, From: 1, To: 3}, ok.Steps[2].Move)
	assert.Equal(t, [][]int{{}, {}, {2, 1}}, ok.Steps[3].Pegs)

	bad := doc.Runs[1]
	assert.False(t, bad.Found)
	assert.Equal(t, -1, bad.Moves)
	assert.True(t, bad.Limited)
	assert.Empty(t, bad.Steps)
}

func TestJSON_NotStarted(t *testing.T) {
	pr := report.NewJSON(&bytes.Buffer{})
	assert.ErrorIs(t, pr.Result(&search.Result[tower.State]{}), report.ErrNotStarted)
	assert.ErrorIs(t, pr.Finish(), report.ErrNotStarted)
}
