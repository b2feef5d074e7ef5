// Package tower models the Tower of Hanoi as a state space: peg
// configurations, legal single-disk moves between them, the goal test and the
// misplaced-slot heuristic.
//
// What:
//
//   - State: an immutable snapshot of disks on pegs (bottom-to-top).
//     NewState validates disk conservation and the stacking rule.
//   - Move / State.Moves / State.Successors: legal single-disk moves.
//   - Puzzle: an initial State plus the goal State; implements
//     search.Problem[State] (Root, IsGoal, Successors, Heuristic, Key).
//   - Diff: recovers the move between two adjacent states.
//
// Rules:
//
//   - A move lifts the topmost disk of a non-empty peg and drops it on another
//     peg that is empty or whose top disk is larger.
//   - Disks are numbered 1..D; a larger number is a larger disk.
//
// Complexity:
//
//   - Moves / Successors:  O(P² + P·D) per state (copying dominates).
//   - Heuristic, Equal, Key: O(P + D).
//   - Reachable states with 3 pegs: 3^D.
//
// Errors:
//
//   - ErrNoPegs, ErrInvalidDisk, ErrDuplicateDisk, ErrStackOrder  from NewState.
//   - ErrTooFewPegs, ErrPegMismatch, ErrDiskMismatch              from NewPuzzle.
//   - ErrBadDiskCount, ErrPegIndex                                from Canonical.
//   - ErrPegIndex, ErrIllegalMove                                 from State.Apply.
package tower
