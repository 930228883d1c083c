package trie

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/phnum"
)

// VisitFunc is the type of the function called for each node by Each.
// If the function returns false, the traversal stops.
type VisitFunc[P any] func(key string, id NodeID, payload *P) bool

type frame struct {
	id  NodeID
	key string
}

// Each visits every node in pre-order with children in alphabet order, so
// keys arrive sorted by phnum.Compare. The root is visited first with the
// empty key.
func (t *Trie[P]) Each(fn VisitFunc[P]) {
	stack := []frame{{id: Root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.key, f.id, &t.nodes[f.id].payload) {
			return
		}
		// push in reverse so the smallest symbol is popped first
		children := t.nodes[f.id].children
		for slot := phnum.Radix - 1; slot >= 0; slot-- {
			if c := children[slot]; c != Nil {
				stack = append(stack, frame{id: c, key: f.key + string(phnum.Symbol(slot))})
			}
		}
	}
}

// Dump writes one line per node, indented by depth, in the order of Each.
// label renders the payload; an empty label prints only the symbol.
func (t *Trie[P]) Dump(w io.Writer, label func(*P) string) error {
	bw := bufio.NewWriter(w)
	var err error
	t.Each(func(key string, _ NodeID, p *P) bool {
		sym := "."
		if len(key) > 0 {
			sym = key[len(key)-1:]
		}
		line := strings.Repeat("  ", len(key)) + sym
		if l := label(p); l != "" {
			line += " " + l
		}
		_, err = fmt.Fprintln(bw, line)
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("failed to dump trie: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to dump trie: %w", err)
	}
	return nil
}
