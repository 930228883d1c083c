package trie

// worklist is a LIFO stack of pending nodes with an optional capacity.
type worklist struct {
	items []NodeID
	limit int
}

// newWorklist returns false when limit says no worklist can be obtained.
func newWorklist(limit int) (*worklist, bool) {
	if limit < 0 {
		return nil, false
	}
	return &worklist{limit: limit}, true
}

func (w *worklist) empty() bool {
	return len(w.items) == 0
}

// push reports false when the worklist is full.
func (w *worklist) push(id NodeID) bool {
	if w.limit > 0 && len(w.items) >= w.limit {
		return false
	}
	w.items = append(w.items, id)
	return true
}

func (w *worklist) pop() NodeID {
	id := w.items[len(w.items)-1]
	w.items = w.items[:len(w.items)-1]
	return id
}
