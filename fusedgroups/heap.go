package fusedgroups

import "container/heap"

// boundaryEntry is one entry of the merge heap: the id of the boundary
// (the head index of its left group) and the λ at which its two
// currently-adjacent groups would cross.
type boundaryEntry struct {
	leftHead int
	lambda   float64
}

// mergeHeap is a binary min-heap keyed by next-merge-λ, with an id→index
// side table so decrease-key/increase-key and delete-by-id run in
// O(log m). It implements container/heap.Interface directly.
type mergeHeap struct {
	entries []boundaryEntry
	pos     []int // pos[leftHead] = index into entries, or -1 if absent
}

func newMergeHeap(m int) *mergeHeap {
	pos := make([]int, m)
	for i := range pos {
		pos[i] = -1
	}
	return &mergeHeap{pos: pos}
}

// Len, Less, Swap, Push, Pop implement heap.Interface.

func (h *mergeHeap) Len() int { return len(h.entries) }

// Less breaks ties on lambda by leftHead so that repeated solves over
// identical input pop merges in the same order every time.
func (h *mergeHeap) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.lambda != b.lambda {
		return a.lambda < b.lambda
	}
	return a.leftHead < b.leftHead
}

func (h *mergeHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.pos[h.entries[i].leftHead] = i
	h.pos[h.entries[j].leftHead] = j
}

func (h *mergeHeap) Push(x any) {
	e := x.(boundaryEntry)
	h.pos[e.leftHead] = len(h.entries)
	h.entries = append(h.entries, e)
}

func (h *mergeHeap) Pop() any {
	old := h.entries
	n := len(old)
	e := old[n-1]
	h.entries = old[:n-1]
	h.pos[e.leftHead] = -1
	return e
}

// insert adds a fresh boundary entry for leftHead.
func (h *mergeHeap) insert(leftHead int, lambda float64) {
	heap.Push(h, boundaryEntry{leftHead: leftHead, lambda: lambda})
}

// update sets the λ for the boundary keyed by leftHead, inserting it if
// absent — decrease-key or increase-key, whichever the new lambda calls
// for.
func (h *mergeHeap) update(leftHead int, lambda float64) {
	if idx := h.pos[leftHead]; idx >= 0 {
		h.entries[idx].lambda = lambda
		heap.Fix(h, idx)
		return
	}
	h.insert(leftHead, lambda)
}

// remove deletes the boundary keyed by leftHead if present; a no-op
// otherwise (the boundary may never have existed, e.g. the last group
// has no right neighbor).
func (h *mergeHeap) remove(leftHead int) {
	if idx := h.pos[leftHead]; idx >= 0 {
		heap.Remove(h, idx)
	}
}

// peekMin returns the smallest-λ entry without removing it.
func (h *mergeHeap) peekMin() (boundaryEntry, bool) {
	if len(h.entries) == 0 {
		return boundaryEntry{}, false
	}
	return h.entries[0], true
}

// popMin removes and returns the smallest-λ entry.
func (h *mergeHeap) popMin() boundaryEntry {
	return heap.Pop(h).(boundaryEntry)
}
