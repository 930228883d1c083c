// Package trie implements an arena-backed trie over the phone-number alphabet.
//
// Nodes live in a slice and are addressed by NodeID, so other structures can
// refer to a node without holding a pointer into the tree. Every operation is
// iterative: walks, traversals and subtree destruction use explicit worklists,
// and destruction falls back to a constant-memory strategy when no worklist is
// available, so it always completes.
package trie

import (
	"errors"

	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/phnum"
)

// NodeID addresses a node inside a Trie. The zero value means "no node".
type NodeID uint32

const (
	// Nil is the absent node.
	Nil NodeID = 0
	// Root is the root of every trie. It always exists and spells the empty key.
	Root NodeID = 1
)

// ErrNodeLimit is returned when extending a path would exceed Config.MaxNodes.
var ErrNodeLimit = errors.New("trie: node limit reached")

// node is one arena slot. A released slot keeps the next free slot in children[0].
type node[P any] struct {
	// children maps a symbol slot to the child node
	children [phnum.Radix]NodeID

	// payload is owned by the caller; the trie only zeroes it on release
	payload P
}

// Config bounds the memory a Trie may use.
type Config struct {
	// MaxNodes caps the number of live nodes, root included. Zero means unlimited.
	MaxNodes int

	// Worklist caps the number of pending nodes during Destroy. Zero means
	// unbounded; a negative value means no worklist can be obtained, so every
	// destruction takes the constant-memory path.
	Worklist int
}

// Trie is a 12-ary trie whose nodes carry a payload of type P.
type Trie[P any] struct {
	nodes    []node[P]
	freeHead NodeID
	live     int
	cfg      Config
}

// New creates a trie holding only the root node.
func New[P any](cfg Config) *Trie[P] {
	return &Trie[P]{
		nodes: make([]node[P], 2),
		live:  1,
		cfg:   cfg,
	}
}

// Len returns the number of live nodes, root included.
func (t *Trie[P]) Len() int {
	return t.live
}

// Payload returns the payload of id for reading or in-place update.
func (t *Trie[P]) Payload(id NodeID) *P {
	return &t.nodes[id].payload
}

// Child returns the child of id reached through symbol c, or Nil.
func (t *Trie[P]) Child(id NodeID, c byte) NodeID {
	slot, ok := phnum.Slot(c)
	if !ok {
		return Nil
	}
	return t.nodes[id].children[slot]
}

// IsLeaf reports whether id has no children.
func (t *Trie[P]) IsLeaf(id NodeID) bool {
	for _, c := range t.nodes[id].children {
		if c != Nil {
			return false
		}
	}
	return true
}

// alloc takes a slot from the free list, or grows the arena.
func (t *Trie[P]) alloc() (NodeID, error) {
	if t.cfg.MaxNodes > 0 && t.live >= t.cfg.MaxNodes {
		return Nil, ErrNodeLimit
	}
	t.live++
	if id := t.freeHead; id != Nil {
		t.freeHead = t.nodes[id].children[0]
		t.nodes[id] = node[P]{}
		return id, nil
	}
	t.nodes = append(t.nodes, node[P]{})
	return NodeID(len(t.nodes) - 1), nil
}

// release returns id to the free list. It never allocates.
func (t *Trie[P]) release(id NodeID) {
	t.nodes[id] = node[P]{}
	t.nodes[id].children[0] = t.freeHead
	t.freeHead = id
	t.live--
}
