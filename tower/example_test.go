package tower_test

import (
	"fmt"

	"github.com/katalvlaran/hanoi/tower"
)

// ExampleState_Moves lists the legal moves of a mid-game position.
//
//	Peg 1: 3
//	Peg 2: 2
//	Peg 3: 1
func ExampleState_Moves() {
	s := tower.MustState([][]int{{3}, {2}, {1}})
	for _, m := range s.Moves() {
		fmt.Println(m)
	}

	// Output:
	// move disk 2 from peg 2 to peg 1
	// move disk 1 from peg 3 to peg 1
	// move disk 1 from peg 3 to peg 2
}

// ExampleCanonical builds the classic three-disk puzzle and scores its start.
func ExampleCanonical() {
	p, err := tower.Canonical(3, 3, 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(p.Initial())
	fmt.Println("heuristic:", p.Heuristic(p.Initial()))
	fmt.Println("optimal moves:", tower.OptimalMoves(p.Disks()))

	// Output:
	// Peg 1: 3, 2, 1
	// Peg 2:
	// Peg 3:
	// heuristic: 3
	// optimal moves: 7
}
