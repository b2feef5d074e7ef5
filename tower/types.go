// Package tower defines the sentinel errors and small value types shared by
// the Tower of Hanoi state model: moves between pegs and validation failures.
package tower

import (
	"errors"
	"fmt"
)

// MinPegs is the smallest peg count a Puzzle accepts.
const MinPegs = 3

// Sentinel errors returned by state and puzzle construction.
var (
	// ErrNoPegs is returned when a State is built from an empty peg list.
	ErrNoPegs = errors.New("tower: state has no pegs")

	// ErrTooFewPegs is returned when a Puzzle is built with fewer than MinPegs pegs.
	ErrTooFewPegs = errors.New("tower: puzzle needs at least 3 pegs")

	// ErrBadDiskCount is returned when a canonical puzzle is requested with
	// a non-positive number of disks.
	ErrBadDiskCount = errors.New("tower: disk count must be positive")

	// ErrInvalidDisk indicates a disk id outside 1..D, where D is the total
	// number of disks in the state.
	ErrInvalidDisk = errors.New("tower: disk id out of range")

	// ErrDuplicateDisk indicates that the same disk id sits on more than one slot.
	ErrDuplicateDisk = errors.New("tower: duplicate disk id")

	// ErrStackOrder indicates a larger disk resting on top of a smaller one.
	ErrStackOrder = errors.New("tower: larger disk placed on a smaller disk")

	// ErrPegIndex indicates a peg index outside 0..P-1.
	ErrPegIndex = errors.New("tower: peg index out of range")

	// ErrIllegalMove is returned by State.Apply for a move the stacking rule forbids.
	ErrIllegalMove = errors.New("tower: illegal move")

	// ErrPegMismatch is returned when initial and goal states disagree on peg count.
	ErrPegMismatch = errors.New("tower: initial and goal peg counts differ")

	// ErrDiskMismatch is returned when initial and goal states disagree on disk count.
	ErrDiskMismatch = errors.New("tower: initial and goal disk counts differ")
)

// Move relocates the topmost disk of peg From onto peg To.
// Peg indices are zero-based; Disk is the id of the disk being moved.
type Move struct {
	From int
	To   int
	Disk int
}

// String renders the move with one-based peg numbers, as shown to users.
func (m Move) String() string {
	return fmt.Sprintf("move disk %d from peg %d to peg %d", m.Disk, m.From+1, m.To+1)
}
