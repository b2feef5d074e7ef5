// Package search runs uninformed and heuristic graph search over any state
// space described by a Problem[S].
//
// What:
//
//   - Search(p, strategy, opts...): one skeleton, three frontier disciplines
//   - DepthFirst:   LIFO stack; finds *a* path, not necessarily the shortest
//   - BreadthFirst: FIFO queue; first goal popped has the minimum depth
//   - BestFirst:    min-heap on Depth+Heuristic, ties popped in insertion
//     order; optimal only if the heuristic never overestimates
//   - ReconstructPath(goal): parent walk + reverse, root-first
//
// Why:
//
//   - Puzzles and planners (Tower of Hanoi, sliding tiles, sokoban) whose
//     graphs are generated on the fly instead of stored as adjacency lists.
//   - Comparing strategies on the same problem: identical expansion, goal test
//     and visited tracking, only the frontier differs.
//
// Visited semantics:
//
//   - A state joins the visited set when it is expanded, not when it is
//     pushed. Children already visited are not pushed; children merely
//     waiting on the frontier may be pushed again. A popped node whose state
//     was expanded in the meantime is skipped.
//   - The goal test runs on pop, before the visited check, so the root is
//     returned immediately when it already satisfies the goal.
//
// Options:
//
//   - WithContext(ctx)        cancellation, probed once per pop.
//   - WithMaxExpansions(n)    stop after n expansions (ErrExpansionLimit).
//   - WithOnExpand(fn)        hook per expansion; error aborts.
//   - WithLogger(l)           slog debug record per finished run.
//
// Complexity:
//
//   - DepthFirst, BreadthFirst: Time O(V+E), Memory O(V+E)
//   - BestFirst:                Time O((V+E) log E), Memory O(V+E)
//
// Errors:
//
//   - ErrNilProblem           problem is nil
//   - ErrUnknownStrategy      strategy value or name not recognized
//   - ErrOptionViolation      negative MaxExpansions
//   - ErrExpansionLimit       MaxExpansions reached (partial Result returned)
//   - context.Canceled        run canceled via context
//   - hook errors             propagated from OnExpand
//
// A search that exhausts the frontier is not an error: Result.Goal is nil,
// Result.Found() is false and Result.Path() is empty.
package search
