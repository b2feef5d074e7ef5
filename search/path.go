package search

// ReconstructPath follows Parent links from goal back to the root and
// returns the states root-first, goal-last.
//
// A nil goal (no solution) yields an empty, non-nil slice; callers must treat
// it as "no solution" rather than as a path to display. A path of length 1
// means the root already satisfied the goal (zero moves).
//
// Complexity: O(depth).
func ReconstructPath[S any](goal *Node[S]) []S {
	if goal == nil {
		return []S{}
	}

	// build reversed path
	path := make([]S, 0, goal.Depth+1)
	for cur := goal; cur != nil; cur = cur.Parent {
		path = append(path, cur.State)
	}
	// reverse to get root → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
