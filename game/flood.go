package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/sweeper/util/collections"
)

type NeighborGetter func(idx int) []int

// Visitor is called once for each cell reached by a flood. Returning true
// continues the flood outward from that cell.
type Visitor func(idx int) (expand bool)

// flood performs a breadth-first walk outward from start, which is treated
// as already visited. The pending cells are held in an explicit work-list,
// so the depth of the walk never touches the call stack.
func flood(start int, visit Visitor, getNeighbors NeighborGetter) {
	visited := collections.Set[int]{}
	visited.Add(start)

	var pending deque.Deque[int]
	pending.PushBack(start)

	for pending.Len() > 0 {
		idx := pending.PopFront()

		for _, neighbor := range getNeighbors(idx) {
			if visited.Contains(neighbor) {
				continue
			}
			visited.Add(neighbor)

			if visit(neighbor) {
				pending.PushBack(neighbor)
			}
		}
	}
}
