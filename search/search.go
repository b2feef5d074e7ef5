// Package search implements graph search over implicit state spaces:
// depth-first, best-first ("A*" ordering on depth+heuristic) and
// breadth-first, all sharing one expansion skeleton.
//
// The skeleton pops a node from the frontier, returns it if it satisfies the
// goal test, and otherwise expands it once: the state is marked visited, its
// successors are wrapped as children (Depth+1, Parent = current) and every
// child whose state is not yet visited is pushed. Visited is populated on
// expansion, not on push, so a state may sit on the frontier more than once;
// stale copies are skipped when popped.
package search

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Result holds the outcome of one search run.
//
// Goal is nil when the frontier was exhausted (or the run aborted) without
// reaching a goal; that absence, not an error, signals "no solution".
type Result[S any] struct {
	Strategy    Strategy
	RunID       string        // unique per run, also attached to log records
	Goal        *Node[S]      // nil if no solution was found
	Expanded    int           // states expanded (successors generated)
	Generated   int           // child nodes pushed onto the frontier
	MaxFrontier int           // peak frontier size
	Elapsed     time.Duration // wall-clock time spent inside Search
	Limited     bool          // true when MaxExpansions stopped the run
}

// Found reports whether a goal node was reached.
func (r *Result[S]) Found() bool { return r != nil && r.Goal != nil }

// Moves returns the solution length in moves, or -1 when nothing was found.
func (r *Result[S]) Moves() int {
	if !r.Found() {
		return -1
	}

	return r.Goal.Depth
}

// Path returns the solution states root-first, or an empty slice.
func (r *Result[S]) Path() []S {
	if r == nil {
		return []S{}
	}

	return ReconstructPath(r.Goal)
}

// runner holds the mutable state for a single search execution.
type runner[S any] struct {
	problem  Problem[S]
	strategy Strategy
	opts     Options
	front    frontier[S]
	visited  map[string]struct{}
	seq      uint64
	log      *slog.Logger
	res      *Result[S]
}

// Search explores p from p.Root() using strategy.
//
// Returns:
//   - a Result whose Goal is the first goal node popped, or nil if the
//     reachable space was exhausted;
//   - ErrNilProblem, ErrUnknownStrategy or ErrOptionViolation for bad input
//     (Result is nil);
//   - ErrExpansionLimit, the context error, or a wrapped OnExpand error when
//     the run is aborted (Result holds partial statistics, Goal nil).
//
// Complexity: O(V + E) pushes/pops for DepthFirst and BreadthFirst,
// O((V + E) log E) for BestFirst, where V are reachable states and E the
// generated edges; the visited set holds O(V) keys.
func Search[S any](p Problem[S], strategy Strategy, opts ...Option) (*Result[S], error) {
	// 1) Validate problem
	if p == nil {
		return nil, ErrNilProblem
	}

	// 2) Apply options and catch any invalid ones
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3) Pick frontier discipline
	front, err := newFrontier[S](strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", err, int(strategy))
	}

	// 4) Prepare runner
	runID := uuid.NewString()
	r := &runner[S]{
		problem:  p,
		strategy: strategy,
		opts:     o,
		front:    front,
		visited:  make(map[string]struct{}),
		log:      o.Logger.With(slog.String("strategy", strategy.String()), slog.String("run_id", runID)),
		res:      &Result[S]{Strategy: strategy, RunID: runID},
	}

	// 5) Seed with the root and run
	start := time.Now()
	r.push(&Node[S]{State: p.Root()}, true)
	err = r.loop()
	r.res.Elapsed = time.Since(start)

	r.log.Debug("search finished",
		slog.Bool("found", r.res.Found()),
		slog.Int("moves", r.res.Moves()),
		slog.Int("expanded", r.res.Expanded),
		slog.Int("generated", r.res.Generated),
		slog.Int("max_frontier", r.res.MaxFrontier),
		slog.Duration("elapsed", r.res.Elapsed),
	)

	return r.res, err
}

// DepthFirstSearch is Search(p, DepthFirst, opts...).
func DepthFirstSearch[S any](p Problem[S], opts ...Option) (*Result[S], error) {
	return Search(p, DepthFirst, opts...)
}

// BestFirstSearch is Search(p, BestFirst, opts...).
func BestFirstSearch[S any](p Problem[S], opts ...Option) (*Result[S], error) {
	return Search(p, BestFirst, opts...)
}

// BreadthFirstSearch is Search(p, BreadthFirst, opts...).
func BreadthFirstSearch[S any](p Problem[S], opts ...Option) (*Result[S], error) {
	return Search(p, BreadthFirst, opts...)
}

// loop pops until a goal is found, the frontier empties, or the run aborts.
func (r *runner[S]) loop() error {
	for r.front.len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		cur := r.front.pop()
		if r.problem.IsGoal(cur.State) {
			r.res.Goal = cur
			return nil
		}

		key := r.problem.Key(cur.State)
		if _, seen := r.visited[key]; seen {
			continue // stale duplicate
		}

		if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
			r.res.Limited = true
			return fmt.Errorf("%w: %d", ErrExpansionLimit, r.opts.MaxExpansions)
		}

		if err := r.expand(cur, key); err != nil {
			return err
		}
	}

	return nil
}

// expand marks cur visited and pushes its unvisited children.
func (r *runner[S]) expand(cur *Node[S], key string) error {
	r.visited[key] = struct{}{}
	r.res.Expanded++

	if err := r.opts.OnExpand(key, cur.Depth); err != nil {
		return fmt.Errorf("search: OnExpand hook for %q: %w", key, err)
	}

	for _, next := range r.problem.Successors(cur.State) {
		if _, seen := r.visited[r.problem.Key(next)]; seen {
			continue
		}
		r.push(&Node[S]{State: next, Depth: cur.Depth + 1, Parent: cur}, false)
	}

	return nil
}

// push stamps n with its sequence number (and heuristic, for BestFirst),
// adds it to the frontier and updates statistics.
func (r *runner[S]) push(n *Node[S], root bool) {
	if r.strategy == BestFirst {
		n.Heuristic = r.problem.Heuristic(n.State)
	}
	n.seq = r.seq
	r.seq++
	r.front.push(n)

	if !root {
		r.res.Generated++
	}
	if l := r.front.len(); l > r.res.MaxFrontier {
		r.res.MaxFrontier = l
	}
}
