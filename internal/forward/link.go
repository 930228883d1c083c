package forward

import "github.com/kumarlokesh/sysd/exercises/phone-forward/internal/trie"

// entryID addresses an origin entry. The zero value means "no entry".
type entryID uint32

const noEntry entryID = 0

// prefixLink is the forward-trie payload. entry is set iff a rule is defined
// for exactly the node's prefix.
type prefixLink struct {
	entry entryID
}

// origins is the reverse-trie payload: the source prefixes rewritten to the
// node's key. target is set iff the list is non-empty.
type origins struct {
	target     string
	head, tail entryID
	size       int
}

// origin is one source prefix in an origin list.
type origin struct {
	source string
	// owner is the forward node whose rule this entry represents. The entry
	// does not own it.
	owner trie.NodeID
	// node is the reverse node whose list holds this entry.
	node       trie.NodeID
	prev, next entryID
}

// originTable is an arena of origin entries with a free list through next.
type originTable struct {
	entries []origin
	free    entryID
}

func newOriginTable() originTable {
	return originTable{entries: make([]origin, 1)}
}

func (t *originTable) at(e entryID) *origin {
	return &t.entries[e]
}

func (t *originTable) alloc() entryID {
	if e := t.free; e != noEntry {
		t.free = t.entries[e].next
		t.entries[e] = origin{}
		return e
	}
	t.entries = append(t.entries, origin{})
	return entryID(len(t.entries) - 1)
}

func (t *originTable) release(e entryID) {
	t.entries[e] = origin{next: t.free}
	t.free = e
}

// install appends source to the origin list of the reverse node rev, setting
// the node's target on first use, and links the new entry from the forward
// node owner. owner must not carry a link.
func (r *Registry) install(owner, rev trie.NodeID, source, target string) {
	e := r.origins.alloc()
	list := r.rev.Payload(rev)
	*r.origins.at(e) = origin{
		source: source,
		owner:  owner,
		node:   rev,
		prev:   list.tail,
	}
	if list.tail != noEntry {
		r.origins.at(list.tail).next = e
	} else {
		list.head = e
	}
	list.tail = e
	if list.size == 0 {
		list.target = target
	}
	list.size++
	r.fwd.Payload(owner).entry = e
}

// detach removes entry e from its origin list and clears the link held by
// its owner. The successor's predecessor becomes e's predecessor. When the
// list empties the reverse node loses its target but stays in the trie.
func (r *Registry) detach(e entryID) {
	o := *r.origins.at(e)
	list := r.rev.Payload(o.node)
	if o.prev != noEntry {
		r.origins.at(o.prev).next = o.next
	} else {
		list.head = o.next
	}
	if o.next != noEntry {
		r.origins.at(o.next).prev = o.prev
	} else {
		list.tail = o.prev
	}
	list.size--
	if list.size == 0 {
		list.target = ""
	}
	r.fwd.Payload(o.owner).entry = noEntry
	r.origins.release(e)
}

// unlink is the release hook for destroyed forward nodes.
func (r *Registry) unlink(_ trie.NodeID, link *prefixLink) {
	if link.entry == noEntry {
		return
	}
	r.detach(link.entry)
	r.rules--
}

// target returns the replacement of the rule behind e.
func (r *Registry) target(e entryID) string {
	return r.rev.Payload(r.origins.at(e).node).target
}
