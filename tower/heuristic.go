package tower

// Heuristic estimates the distance from s to the goal as the number of
// misplaced slots.
//
// Pegs are compared position by position, bottom-up, for positions that exist
// on s's peg. A slot counts when the goal holds a different disk there or
// holds no disk at all. Slots beyond the length of s's peg are never counted,
// even if the goal peg is taller.
//
// The value is only a priority signal for best-first search; it is not a
// lower bound on the remaining moves.
func (p *Puzzle) Heuristic(s State) int {
	misplaced := 0
	for i, peg := range s.pegs {
		var want []int
		if i < len(p.goal.pegs) {
			want = p.goal.pegs[i]
		}
		for j, disk := range peg {
			if j >= len(want) || want[j] != disk {
				misplaced++
			}
		}
	}

	return misplaced
}
