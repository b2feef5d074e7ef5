package tower

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// State is a snapshot of disk placement across pegs.
//
// Each peg lists its disks bottom-to-top: the last element is the topmost,
// movable disk. Larger ids denote larger disks. A State built by NewState
// always satisfies two invariants:
//
//   - every disk id 1..D appears exactly once across all pegs;
//   - on every peg, ids strictly decrease from bottom to top.
//
// State values are never mutated after construction; every operation that
// "changes" a State returns a fresh deep copy.
type State struct {
	pegs [][]int
}

// NewState validates pegs and returns a State holding a deep copy of them.
//
// Errors:
//   - ErrNoPegs         if pegs is empty.
//   - ErrInvalidDisk    if an id is outside 1..D (D = total disks).
//   - ErrDuplicateDisk  if an id appears twice.
//   - ErrStackOrder     if a disk rests on a smaller one.
func NewState(pegs [][]int) (State, error) {
	// 1) Peg list must be non-empty.
	if len(pegs) == 0 {
		return State{}, ErrNoPegs
	}

	// 2) Count disks to learn D.
	total := 0
	for _, peg := range pegs {
		total += len(peg)
	}

	// 3) Conservation and ordering in a single pass.
	seen := make([]bool, total+1)
	for i, peg := range pegs {
		for j, disk := range peg {
			if disk < 1 || disk > total {
				return State{}, fmt.Errorf("%w: disk %d on peg %d (want 1..%d)", ErrInvalidDisk, disk, i+1, total)
			}
			if seen[disk] {
				return State{}, fmt.Errorf("%w: disk %d", ErrDuplicateDisk, disk)
			}
			seen[disk] = true
			if j > 0 && peg[j-1] <= disk {
				return State{}, fmt.Errorf("%w: disk %d above disk %d on peg %d", ErrStackOrder, disk, peg[j-1], i+1)
			}
		}
	}

	return State{pegs: clonePegs(pegs)}, nil
}

// MustState is like NewState but panics on invalid input.
// Intended for literals in tests and examples.
func MustState(pegs [][]int) State {
	s, err := NewState(pegs)
	if err != nil {
		panic(err)
	}

	return s
}

// NumPegs returns the number of pegs.
func (s State) NumPegs() int { return len(s.pegs) }

// NumDisks returns the total number of disks across all pegs.
func (s State) NumDisks() int {
	n := 0
	for _, peg := range s.pegs {
		n += len(peg)
	}

	return n
}

// Peg returns a copy of peg i, bottom-to-top, or nil if i is out of range.
func (s State) Peg(i int) []int {
	if i < 0 || i >= len(s.pegs) {
		return nil
	}

	return slices.Clone(s.pegs[i])
}

// Pegs returns a deep copy of all pegs.
func (s State) Pegs() [][]int { return clonePegs(s.pegs) }

// Top returns the topmost disk of peg i and true, or 0 and false when the
// peg is empty or i is out of range.
func (s State) Top(i int) (int, bool) {
	if i < 0 || i >= len(s.pegs) || len(s.pegs[i]) == 0 {
		return 0, false
	}
	peg := s.pegs[i]

	return peg[len(peg)-1], true
}

// Equal reports whether s and o hold identical disks on identical pegs.
// Peg position matters: the same stack on peg 2 and peg 3 is not equal.
func (s State) Equal(o State) bool {
	if len(s.pegs) != len(o.pegs) {
		return false
	}
	for i := range s.pegs {
		if !slices.Equal(s.pegs[i], o.pegs[i]) {
			return false
		}
	}

	return true
}

// Key returns a canonical string for s, suitable as a visited-set key.
// Pegs are separated by '|', disks by ','; two states share a key iff Equal.
func (s State) Key() string {
	var b strings.Builder
	for i, peg := range s.pegs {
		if i > 0 {
			b.WriteByte('|')
		}
		for j, disk := range peg {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(disk))
		}
	}

	return b.String()
}

// PegLine renders peg i as "Peg <i+1>: d1, d2, ..." listing disks bottom-to-top.
func (s State) PegLine(i int) string {
	if i < 0 || i >= len(s.pegs) {
		return ""
	}
	parts := make([]string, len(s.pegs[i]))
	for j, disk := range s.pegs[i] {
		parts[j] = strconv.Itoa(disk)
	}
	line := "Peg " + strconv.Itoa(i+1) + ":"
	if len(parts) > 0 {
		line += " " + strings.Join(parts, ", ")
	}

	return line
}

// String renders one PegLine per peg, newline separated.
func (s State) String() string {
	lines := make([]string, len(s.pegs))
	for i := range s.pegs {
		lines[i] = s.PegLine(i)
	}

	return strings.Join(lines, "\n")
}

func clonePegs(pegs [][]int) [][]int {
	out := make([][]int, len(pegs))
	for i, peg := range pegs {
		out[i] = make([]int, len(peg), len(peg)+1) // +1: room for an incoming disk
		copy(out[i], peg)
	}

	return out
}
