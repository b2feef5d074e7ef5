package tower

import "fmt"

// Moves lists every legal move from s.
//
// For each ordered pair of distinct pegs (src, dst) with src non-empty, the
// move is legal when dst is empty or its top disk is larger than src's top
// disk. Pairs are enumerated src ascending, then dst ascending. A state with
// no legal moves yields an empty, non-nil slice.
//
// Complexity: O(P²) for P pegs.
func (s State) Moves() []Move {
	out := make([]Move, 0, len(s.pegs)*(len(s.pegs)-1))
	for src := range s.pegs {
		disk, ok := s.Top(src)
		if !ok {
			continue // nothing to lift
		}
		for dst := range s.pegs {
			if dst == src {
				continue
			}
			if top, occupied := s.Top(dst); occupied && top < disk {
				continue
			}
			out = append(out, Move{From: src, To: dst, Disk: disk})
		}
	}

	return out
}

// Successors returns the states reachable from s by exactly one legal move,
// in the order produced by Moves. s itself is left untouched.
func (s State) Successors() []State {
	moves := s.Moves()
	out := make([]State, 0, len(moves))
	for _, m := range moves {
		out = append(out, s.move(m))
	}

	return out
}

// Apply returns the state that results from performing m on s.
//
// Errors:
//   - ErrPegIndex     if m.From or m.To is out of range.
//   - ErrIllegalMove  if From == To, From is empty, m.Disk is not the top of
//     From, or the destination top disk is smaller.
func (s State) Apply(m Move) (State, error) {
	if m.From < 0 || m.From >= len(s.pegs) || m.To < 0 || m.To >= len(s.pegs) {
		return State{}, fmt.Errorf("%w: %d→%d with %d pegs", ErrPegIndex, m.From+1, m.To+1, len(s.pegs))
	}
	if m.From == m.To {
		return State{}, fmt.Errorf("%w: source and destination are both peg %d", ErrIllegalMove, m.From+1)
	}
	disk, ok := s.Top(m.From)
	if !ok {
		return State{}, fmt.Errorf("%w: peg %d is empty", ErrIllegalMove, m.From+1)
	}
	if disk != m.Disk {
		return State{}, fmt.Errorf("%w: top of peg %d is disk %d, not %d", ErrIllegalMove, m.From+1, disk, m.Disk)
	}
	if top, occupied := s.Top(m.To); occupied && top < disk {
		return State{}, fmt.Errorf("%w: disk %d onto disk %d", ErrIllegalMove, disk, top)
	}

	return s.move(m), nil
}

// Diff finds the single legal move that turns a into b.
// It returns false if a and b are not exactly one legal move apart.
func Diff(a, b State) (Move, bool) {
	for _, m := range a.Moves() {
		if a.move(m).Equal(b) {
			return m, true
		}
	}

	return Move{}, false
}

// move performs an already-validated move on a deep copy of s.
func (s State) move(m Move) State {
	pegs := clonePegs(s.pegs)
	src := pegs[m.From]
	disk := src[len(src)-1]
	pegs[m.From] = src[:len(src)-1]
	pegs[m.To] = append(pegs[m.To], disk)

	return State{pegs: pegs}
}
