package trie

import "github.com/kumarlokesh/sysd/exercises/phone-forward/internal/phnum"

// Walk visits the root and then every existing node along key, in order of
// increasing depth. It stops when the path ends, when key contains a symbol
// outside the alphabet, or when fn returns false. It returns the depth of the
// last visited node.
func (t *Trie[P]) Walk(key string, fn func(depth int, id NodeID) bool) int {
	id := Root
	if !fn(0, id) {
		return 0
	}
	for depth := 0; depth < len(key); depth++ {
		id = t.Child(id, key[depth])
		if id == Nil {
			return depth
		}
		if !fn(depth+1, id) {
			return depth + 1
		}
	}
	return len(key)
}

// deepest returns the deepest existing node along key and its depth.
func (t *Trie[P]) deepest(key string) (NodeID, int) {
	id := Root
	depth := t.Walk(key, func(_ int, n NodeID) bool {
		id = n
		return true
	})
	return id, depth
}

// Find returns the node spelling exactly key, or Nil.
func (t *Trie[P]) Find(key string) NodeID {
	id, depth := t.deepest(key)
	if depth != len(key) {
		return Nil
	}
	return id
}

// Cut unlinks the node spelling exactly key from its parent and returns it as
// the root of a detached subtree, ready for Destroy. It returns Nil when key
// is empty or its path does not fully exist.
func (t *Trie[P]) Cut(key string) NodeID {
	if len(key) == 0 {
		return Nil
	}
	parent, depth := t.deepest(key[:len(key)-1])
	if depth != len(key)-1 {
		return Nil
	}
	slot, ok := phnum.Slot(key[len(key)-1])
	if !ok {
		return Nil
	}
	id := t.nodes[parent].children[slot]
	t.nodes[parent].children[slot] = Nil
	return id
}

// Stage holds the nodes created to extend a path before they become
// reachable from the root. Until Commit, the trie's visible shape is
// unchanged and Discard releases everything the stage created.
type Stage struct {
	parent NodeID
	slot   int
	nodes  []NodeID
	leaf   NodeID
}

// Leaf returns the node spelling the staged key.
func (s *Stage) Leaf() NodeID {
	return s.leaf
}

// Fresh reports whether the stage created new nodes.
func (s *Stage) Fresh() bool {
	return len(s.nodes) > 0
}

// Stage prepares the path for key, reusing existing nodes and creating the
// missing ones off-tree. On ErrNodeLimit every node created so far is
// released and the trie is left exactly as it was. key must be a valid phone
// number.
func (t *Trie[P]) Stage(key string) (Stage, error) {
	id, depth := t.deepest(key)
	s := Stage{parent: id, leaf: id}
	if depth == len(key) {
		return s, nil
	}
	s.slot, _ = phnum.Slot(key[depth])

	prev := Nil
	for i := depth; i < len(key); i++ {
		n, err := t.alloc()
		if err != nil {
			t.Discard(&s)
			return Stage{}, err
		}
		if prev != Nil {
			slot, _ := phnum.Slot(key[i])
			t.nodes[prev].children[slot] = n
		}
		s.nodes = append(s.nodes, n)
		prev = n
	}
	s.leaf = prev
	return s, nil
}

// Commit links the staged nodes under their parent.
func (t *Trie[P]) Commit(s *Stage) {
	if len(s.nodes) > 0 {
		t.nodes[s.parent].children[s.slot] = s.nodes[0]
	}
	s.nodes = nil
}

// Discard releases the staged nodes. It must not be called after Commit.
func (t *Trie[P]) Discard(s *Stage) {
	for i := len(s.nodes) - 1; i >= 0; i-- {
		t.release(s.nodes[i])
	}
	s.nodes = nil
	s.leaf = Nil
}
