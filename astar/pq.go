package astar

// frontierItem is one entry of the A* open set. A vertex may have several
// entries; only the one whose cost matches best[id] is live.
type frontierItem struct {
	id   string
	f    float64 // cost + heuristic estimate
	cost float64 // cost from start when pushed
	seq  uint64  // insertion order
}

// frontier is a min-heap of *frontierItem ordered by f, then vertex ID,
// then insertion order.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by priority; equal priorities fall back to the smaller vertex
// ID and then to the earlier push.
func (pq frontier) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.id != b.id {
		return a.id < b.id
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *frontierItem. Called by heap.Push.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
