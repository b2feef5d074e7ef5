package search

// Node wraps a state with the bookkeeping search needs.
//
// Parent points toward the root (nil for the root itself) and is never
// reassigned, so the nodes of one run form a tree. Nodes are created by
// Search and must not be modified by callers.
type Node[S any] struct {
	State     S
	Depth     int      // moves from the root
	Heuristic int      // estimate to the goal; 0 unless the strategy uses it
	Parent    *Node[S] // nil for the root

	seq uint64 // insertion order within one run, used to break priority ties
}

// Priority returns Depth + Heuristic, the best-first ordering key.
func (n *Node[S]) Priority() int { return n.Depth + n.Heuristic }
