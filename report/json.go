package report

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/katalvlaran/hanoi/search"
	"github.com/katalvlaran/hanoi/tower"
)

// ErrNotStarted is returned when Result or Finish is called before Start.
var ErrNotStarted = errors.New("report: printer not started")

// Document is the JSON form of one solver invocation.
type Document struct {
	Disks   int     `json:"disks"`
	Pegs    int     `json:"pegs"`
	Initial [][]int `json:"initial"`
	Goal    [][]int `json:"goal"`
	Runs    []Run   `json:"runs"`
}

// Run is the JSON form of one strategy run. Moves is -1 when no solution
// was found.
type Run struct {
	Strategy    string  `json:"strategy"`
	RunID       string  `json:"run_id"`
	Found       bool    `json:"found"`
	Moves       int     `json:"moves"`
	Limited     bool    `json:"limited,omitempty"`
	Expanded    int     `json:"expanded"`
	Generated   int     `json:"generated"`
	MaxFrontier int     `json:"max_frontier"`
	ElapsedMS   float64 `json:"elapsed_ms"`
	Steps       []Step  `json:"steps,omitempty"`
}

// Step is one state on a solution path. Move is nil for the initial state.
type Step struct {
	Move *StepMove `json:"move,omitempty"`
	Pegs [][]int   `json:"pegs"`
}

// StepMove names a move with 1-based peg numbers, as printed to users.
type StepMove struct {
	Disk int `json:"disk"`
	From int `json:"from"`
	To   int `json:"to"`
}

// JSON collects runs and writes a single indented Document on Finish.
type JSON struct {
	w    io.Writer
	opts options
	doc  *Document
}

// NewJSON returns a JSON printer writing to w. WithColor has no effect.
func NewJSON(w io.Writer, opts ...Option) *JSON {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &JSON{w: w, opts: o}
}

// Start records the puzzle.
func (j *JSON) Start(p *tower.Puzzle) error {
	j.doc = &Document{
		Disks:   p.Disks(),
		Pegs:    p.Pegs(),
		Initial: p.Initial().Pegs(),
		Goal:    p.Goal().Pegs(),
		Runs:    []Run{},
	}

	return nil
}

// Result appends one run to the document.
func (j *JSON) Result(res *search.Result[tower.State]) error {
	if j.doc == nil {
		return ErrNotStarted
	}

	run := Run{
		Strategy:    res.Strategy.String(),
		RunID:       res.RunID,
		Found:       res.Found(),
		Moves:       res.Moves(),
		Limited:     res.Limited,
		Expanded:    res.Expanded,
		Generated:   res.Generated,
		MaxFrontier: res.MaxFrontier,
		ElapsedMS:   float64(res.Elapsed.Microseconds()) / 1000,
	}
	if j.opts.showPath && res.Found() {
		run.Steps = steps(res.Path())
	}
	j.doc.Runs = append(j.doc.Runs, run)

	return nil
}

// Finish encodes the document.
func (j *JSON) Finish() error {
	if j.doc == nil {
		return ErrNotStarted
	}
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")

	return enc.Encode(j.doc)
}

func steps(path []tower.State) []Step {
	out := make([]Step, len(path))
	for i, s := range path {
		out[i].Pegs = s.Pegs()
		if i == 0 {
			continue
		}
		if m, ok := tower.Diff(path[i-1], s); ok {
			out[i].Move = &StepMove{Disk: m.Disk, From: m.From + 1, To: m.To + 1}
		}
	}

	return out
}
