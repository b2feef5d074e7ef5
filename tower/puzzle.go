package tower

import "fmt"

// Puzzle pairs an initial State with the goal State the search must reach.
// The goal is owned by the Puzzle, so independent puzzles with different
// disk or peg counts can coexist.
//
// Puzzle satisfies search.Problem[State].
type Puzzle struct {
	initial State
	goal    State
}

// NewPuzzle validates that initial and goal describe the same game.
//
// Errors:
//   - ErrTooFewPegs    if the states have fewer than MinPegs pegs.
//   - ErrPegMismatch   if peg counts differ.
//   - ErrDiskMismatch  if disk counts differ.
func NewPuzzle(initial, goal State) (*Puzzle, error) {
	if initial.NumPegs() != goal.NumPegs() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrPegMismatch, initial.NumPegs(), goal.NumPegs())
	}
	if initial.NumPegs() < MinPegs {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPegs, initial.NumPegs())
	}
	if initial.NumDisks() != goal.NumDisks() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrDiskMismatch, initial.NumDisks(), goal.NumDisks())
	}

	return &Puzzle{initial: initial, goal: goal}, nil
}

// Canonical builds the classic puzzle: all disks stacked largest-first on
// peg from, to be moved onto peg to. Peg indices are zero-based.
func Canonical(disks, pegs, from, to int) (*Puzzle, error) {
	if disks < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDiskCount, disks)
	}
	if pegs < MinPegs {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPegs, pegs)
	}
	if from < 0 || from >= pegs || to < 0 || to >= pegs {
		return nil, fmt.Errorf("%w: from=%d to=%d with %d pegs", ErrPegIndex, from+1, to+1, pegs)
	}

	initial, err := NewState(stacked(disks, pegs, from))
	if err != nil {
		return nil, err
	}
	goal, err := NewState(stacked(disks, pegs, to))
	if err != nil {
		return nil, err
	}

	return NewPuzzle(initial, goal)
}

// Initial returns the starting configuration.
func (p *Puzzle) Initial() State { return p.initial }

// Goal returns the target configuration.
func (p *Puzzle) Goal() State { return p.goal }

// Disks returns the number of disks in play.
func (p *Puzzle) Disks() int { return p.initial.NumDisks() }

// Pegs returns the number of pegs.
func (p *Puzzle) Pegs() int { return p.initial.NumPegs() }

// Root returns the initial state; it seeds every search.
func (p *Puzzle) Root() State { return p.initial }

// IsGoal reports whether s equals the goal peg-for-peg, disk-for-disk.
func (p *Puzzle) IsGoal(s State) bool { return s.Equal(p.goal) }

// Successors returns s.Successors().
func (p *Puzzle) Successors(s State) []State { return s.Successors() }

// Key returns s.Key().
func (p *Puzzle) Key(s State) string { return s.Key() }

// OptimalMoves returns 2^disks − 1, the minimum number of moves for the
// three-peg puzzle. Returns 0 for disks < 1.
func OptimalMoves(disks int) int {
	if disks < 1 {
		return 0
	}

	return 1<<disks - 1
}

// stacked returns pegs with all disks on peg at, largest at the bottom.
func stacked(disks, pegs, at int) [][]int {
	out := make([][]int, pegs)
	for i := range out {
		out[i] = []int{}
	}
	for d := disks; d >= 1; d-- {
		out[at] = append(out[at], d)
	}

	return out
}
