// Package report renders solver runs for people (styled text) and for
// machines (JSON).
package report

import (
	"github.com/katalvlaran/hanoi/search"
	"github.com/katalvlaran/hanoi/tower"
)

// Printer receives one puzzle and the result of every strategy run on it.
// Calls arrive in the order Start, Result..., Finish.
type Printer interface {
	Start(p *tower.Puzzle) error
	Result(res *search.Result[tower.State]) error
	Finish() error
}

// Option configures a Printer.
type Option func(*options)

type options struct {
	color    bool
	showPath bool
}

func defaultOptions() options {
	return options{color: false, showPath: true}
}

// WithColor enables ANSI styling. Without it the text printer emits plain text.
func WithColor(on bool) Option {
	return func(o *options) { o.color = on }
}

// WithPath controls whether every state of a solution is printed.
func WithPath(on bool) Option {
	return func(o *options) { o.showPath = on }
}

// label returns the short strategy tag used in headings.
func label(s search.Strategy) string {
	switch s {
	case search.DepthFirst:
		return "DFS"
	case search.BestFirst:
		return "A*"
	case search.BreadthFirst:
		return "BFS"
	default:
		return s.String()
	}
}

var (
	_ Printer = (*Text)(nil)
	_ Printer = (*JSON)(nil)
)
