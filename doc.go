// Package hanoi solves the Tower of Hanoi as a state-space search problem:
// every arrangement of disks is a state, every legal move an edge, and a
// solution is a path from the starting arrangement to the goal.
//
// 🚀 What is inside?
//
//	• Puzzle model: immutable states, legal-move generation, goal test
//	• Heuristic: count of misplaced disk slots against the goal
//	• Search: depth-first, best-first and breadth-first over one skeleton
//	• Paths: parent-linked nodes turned into ordered state sequences
//	• CLI: YAML config, flags, styled text or JSON reports
//
// ✨ Why this layout?
//
//   - The search package is generic: it knows nothing about disks and works
//     for any Problem[S] (root, goal test, successors, heuristic, key).
//   - States never change once built, so nodes can share them freely.
//   - Every run reports its own statistics and carries a run ID into logs.
//
// Under the hood, the module is organized into:
//
//	tower/     — State, Move, Puzzle, successor generation and heuristic
//	search/    — Node, frontiers (stack, queue, priority), Search, ReconstructPath
//	config/    — Config with defaults, YAML loading and validation
//	report/    — text (lipgloss) and JSON printers for runs
//	cmd/hanoi/ — cobra entry point wiring everything together
//
// Quick ASCII example (two disks, three pegs):
//
//	  1            |            |
//	  2            |            |
//	─────────────────────────────────
//	Peg 1        Peg 2        Peg 3
//
//	three moves later every disk sits on Peg 3.
//
//	go run github.com/katalvlaran/hanoi/cmd/hanoi --disks 3 --strategy bfs
package hanoi
