// Package search defines the problem contract, strategies, options and
// sentinel errors for graph search over implicit state spaces.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil Problem is passed to Search.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrUnknownStrategy is returned for a Strategy value or name Search does not know.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions is reached before a goal.
	// The accompanying Result holds the statistics gathered so far.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Problem describes an implicit state graph of states S.
//
// Key must return equal strings exactly for structurally equal states; it
// drives the visited set. Heuristic must be non-negative and is consulted
// only by BestFirst.
type Problem[S any] interface {
	Root() S
	IsGoal(s S) bool
	Successors(s S) []S
	Heuristic(s S) int
	Key(s S) string
}

// Strategy selects the frontier discipline of the shared search skeleton.
type Strategy int

const (
	// DepthFirst expands the most recently generated node first (LIFO).
	DepthFirst Strategy = iota
	// BestFirst expands the node with the lowest depth+heuristic first.
	// Ties pop in insertion order.
	BestFirst
	// BreadthFirst expands nodes in generation order (FIFO); its first goal
	// is a minimum-move solution.
	BreadthFirst
)

// String returns the canonical name used in configuration and reports.
func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "dfs"
	case BestFirst:
		return "best-first"
	case BreadthFirst:
		return "bfs"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Title returns a human-readable label.
func (s Strategy) Title() string {
	switch s {
	case DepthFirst:
		return "depth-first search"
	case BestFirst:
		return "A* (best-first) search"
	case BreadthFirst:
		return "breadth-first search"
	default:
		return s.String()
	}
}

// ParseStrategy maps a name to a Strategy. Matching ignores case; aliases
// "depth-first", "astar", "a*" and "breadth-first" are accepted.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "best-first", "astar", "a*":
		return BestFirst, nil
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// Ctx allows cancellation; checked once per frontier pop.
	Ctx context.Context

	// MaxExpansions, if > 0, caps the number of expanded states.
	// 0 means no limit.
	MaxExpansions int

	// OnExpand is called with the state key and depth right after a state is
	// marked visited and before its successors are generated. Returning an
	// error aborts the search with that error.
	OnExpand func(key string, depth int) error

	// Logger receives debug records about the run. Defaults to a discarding logger.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion limit
//   - no-op OnExpand
//   - a logger that discards everything
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnExpand:      func(string, int) error { return nil },
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions stops the search after n expansions.
//
//	n > 0:  limit to n expanded states
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(key string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger routes run diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
