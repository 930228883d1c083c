package trie

// ReleaseFunc is called exactly once for every destroyed node, after the node
// has been unlinked from its parent and before its slot is reused. It is the
// place to detach anything the payload refers to.
type ReleaseFunc[P any] func(id NodeID, payload *P)

// Destroy releases the detached subtree rooted at id, typically the result of
// Cut. Nodes are discovered with an explicit worklist; any subtree that does
// not fit on the worklist is destroyed with the constant-memory strategy
// instead, so Destroy never fails. release may be nil.
func (t *Trie[P]) Destroy(id NodeID, release ReleaseFunc[P]) {
	if id == Nil || id == Root {
		return
	}
	w, ok := newWorklist(t.cfg.Worklist)
	if !ok || !w.push(id) {
		t.destroyInPlace(id, release)
		return
	}
	for !w.empty() {
		n := w.pop()
		for _, c := range t.nodes[n].children {
			if c != Nil && !w.push(c) {
				t.destroyInPlace(c, release)
			}
		}
		t.free(n, release)
	}
}

// destroyInPlace repeatedly descends from root to a deepest leaf, unlinks and
// releases it, and starts over. It uses no memory beyond a few locals and
// runs in O(n²) for a subtree of n nodes.
func (t *Trie[P]) destroyInPlace(root NodeID, release ReleaseFunc[P]) {
	for {
		parent, slot, leaf := Nil, 0, root
		for descended := true; descended; {
			descended = false
			for i, c := range t.nodes[leaf].children {
				if c != Nil {
					parent, slot, leaf = leaf, i, c
					descended = true
					break
				}
			}
		}
		if parent != Nil {
			t.nodes[parent].children[slot] = Nil
		}
		t.free(leaf, release)
		if leaf == root {
			return
		}
	}
}

// Clear destroys every node below the root and resets the root payload.
func (t *Trie[P]) Clear(release ReleaseFunc[P]) {
	for slot, c := range t.nodes[Root].children {
		if c == Nil {
			continue
		}
		t.nodes[Root].children[slot] = Nil
		t.Destroy(c, release)
	}
	var zero P
	t.nodes[Root].payload = zero
}

func (t *Trie[P]) free(id NodeID, release ReleaseFunc[P]) {
	if release != nil {
		release(id, &t.nodes[id].payload)
	}
	t.release(id)
}
