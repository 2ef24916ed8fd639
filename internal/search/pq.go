package search

import "github.com/vovakirdan/freckers/internal/core"

// frontierItem is a position waiting in the A* frontier.
type frontierItem struct {
	pos core.Coord
	f   int
	seq uint64 // insertion order, breaks ties on f
}

// frontier is a min-heap of items ordered by (f, seq).
// Several items may exist for the same position; stale ones are skipped
// when popped.
type frontier []frontierItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) {
	*q = append(*q, x.(frontierItem))
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
