package search

import "container/heap"

// frontier holds generated but not yet expanded nodes.
// Implementations differ only in which node pop returns next.
type frontier[S any] interface {
	push(n *Node[S])
	pop() *Node[S]
	len() int
}

// newFrontier returns the frontier that implements strategy.
func newFrontier[S any](strategy Strategy) (frontier[S], error) {
	switch strategy {
	case DepthFirst:
		return &stackFrontier[S]{}, nil
	case BreadthFirst:
		return &queueFrontier[S]{}, nil
	case BestFirst:
		pq := &priorityFrontier[S]{}
		heap.Init(&pq.items)
		return pq, nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// stackFrontier is last-in-first-out.
type stackFrontier[S any] struct {
	items []*Node[S]
}

func (f *stackFrontier[S]) push(n *Node[S]) { f.items = append(f.items, n) }

func (f *stackFrontier[S]) pop() *Node[S] {
	last := len(f.items) - 1
	n := f.items[last]
	f.items[last] = nil // release for GC
	f.items = f.items[:last]

	return n
}

func (f *stackFrontier[S]) len() int { return len(f.items) }

// queueFrontier is first-in-first-out.
type queueFrontier[S any] struct {
	items []*Node[S]
	head  int
}

func (f *queueFrontier[S]) push(n *Node[S]) { f.items = append(f.items, n) }

func (f *queueFrontier[S]) pop() *Node[S] {
	n := f.items[f.head]
	f.items[f.head] = nil
	f.head++
	// compact once the consumed prefix dominates the backing array
	if f.head > 64 && f.head*2 >= len(f.items) {
		f.items = append(f.items[:0], f.items[f.head:]...)
		f.head = 0
	}

	return n
}

func (f *queueFrontier[S]) len() int { return len(f.items) - f.head }

// priorityFrontier pops the node with the smallest Priority; equal
// priorities pop in insertion (seq) order.
type priorityFrontier[S any] struct {
	items nodePQ[S]
}

func (f *priorityFrontier[S]) push(n *Node[S]) { heap.Push(&f.items, n) }

func (f *priorityFrontier[S]) pop() *Node[S] { return heap.Pop(&f.items).(*Node[S]) }

func (f *priorityFrontier[S]) len() int { return f.items.Len() }

// nodePQ is a min-heap of *Node ordered by (Priority, seq) ascending.
type nodePQ[S any] []*Node[S]

// Len returns the number of items in the heap.
func (pq nodePQ[S]) Len() int { return len(pq) }

// Less orders by priority, then by insertion sequence.
func (pq nodePQ[S]) Less(i, j int) bool {
	pi, pj := pq[i].Priority(), pq[j].Priority()
	if pi != pj {
		return pi < pj
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *Node[S].
func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*Node[S])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
