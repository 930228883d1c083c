// Package forward implements a registry of phone-number prefix rewrite rules.
//
// A rule maps a source prefix to a replacement. Get rewrites a number with
// the rule of its longest matching prefix; Reverse and GetReverse answer the
// inverse question of which numbers could have been rewritten to a given one.
//
// The registry keeps two tries: a forward trie keyed by source prefixes and a
// reverse trie keyed by replacements. Each reverse node holds the list of
// source prefixes rewritten to its key, and each forward node with a rule
// links to its entry in that list. Add, Remove and Clear keep both sides
// consistent; Add either applies completely or not at all.
//
// A Registry is not safe for concurrent use.
package forward

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/phnum"
	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/trie"
)

// State describes whether a registry holds any rule.
type State string

const (
	// StateEmpty means no rule is defined.
	StateEmpty State = "empty"
	// StatePopulated means at least one rule is defined.
	StatePopulated State = "populated"
)

// Rule is a single prefix rewrite.
type Rule struct {
	Source      string
	Replacement string
}

// String renders the rule in script syntax.
func (r Rule) String() string {
	return r.Source + " > " + r.Replacement
}

// Registry stores prefix rewrite rules.
type Registry struct {
	fwd     *trie.Trie[prefixLink]
	rev     *trie.Trie[origins]
	origins originTable
	rules   int

	limits Limits
	log    zerolog.Logger
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	cfg := trie.Config{
		MaxNodes: r.limits.MaxNodes,
		Worklist: r.limits.Worklist,
	}
	r.fwd = trie.New[prefixLink](cfg)
	r.rev = trie.New[origins](cfg)
	r.origins = newOriginTable()
	return r
}

// State reports whether any rule is defined.
func (r *Registry) State() State {
	if r.rules == 0 {
		return StateEmpty
	}
	return StatePopulated
}

// Len returns the number of rules.
func (r *Registry) Len() int {
	return r.rules
}

// Add defines the rule source -> replacement, replacing any rule previously
// defined for exactly source. It returns ErrInvalidArgument when either
// number is malformed or both are equal, and ErrOutOfMemory when the node
// limit would be exceeded; in both cases the registry is unchanged.
func (r *Registry) Add(source, replacement string) error {
	if !phnum.Valid(source) || !phnum.Valid(replacement) || source == replacement {
		return fmt.Errorf("%w: cannot forward %q to %q", ErrInvalidArgument, source, replacement)
	}

	rs, err := r.rev.Stage(replacement)
	if err != nil {
		r.log.Warn().Err(err).Str("replacement", replacement).Msg("Reverse path not created")
		return fmt.Errorf("%w: forwarding %q to %q: %w", ErrOutOfMemory, source, replacement, err)
	}
	fs, err := r.fwd.Stage(source)
	if err != nil {
		r.rev.Discard(&rs)
		r.log.Warn().Err(err).Str("source", source).Msg("Forward path not created")
		return fmt.Errorf("%w: forwarding %q to %q: %w", ErrOutOfMemory, source, replacement, err)
	}

	// Nothing below can fail.
	r.rev.Commit(&rs)
	r.fwd.Commit(&fs)

	leaf := fs.Leaf()
	overwrite := r.fwd.Payload(leaf).entry != noEntry
	if overwrite {
		r.detach(r.fwd.Payload(leaf).entry)
	} else {
		r.rules++
	}
	r.install(leaf, rs.Leaf(), source, replacement)

	r.log.Debug().
		Str("source", source).
		Str("replacement", replacement).
		Bool("overwrite", overwrite).
		Msg("Rule added")
	return nil
}

// Remove drops every rule whose source starts with prefix. Malformed or
// unknown prefixes are ignored.
func (r *Registry) Remove(prefix string) {
	if !phnum.Valid(prefix) {
		return
	}
	sub := r.fwd.Cut(prefix)
	if sub == trie.Nil {
		return
	}
	before := r.rules
	r.fwd.Destroy(sub, r.unlink)

	r.log.Debug().
		Str("prefix", prefix).
		Int("removed", before-r.rules).
		Msg("Prefix removed")
}

// Clear drops every rule and releases both tries. It never fails and the
// registry remains usable.
func (r *Registry) Clear() {
	removed := r.rules
	r.fwd.Clear(r.unlink)
	r.rev.Clear(nil)
	r.origins = newOriginTable()
	r.rules = 0

	r.log.Debug().Int("removed", removed).Msg("Registry cleared")
}

// Get rewrites number with the rule of its longest matching prefix. The
// result holds exactly one number: the rewrite, or number itself when no
// rule applies or number is malformed.
func (r *Registry) Get(number string) *phnum.Numbers {
	res := phnum.NewNumbers(1)
	res.Append(r.lookup(number))
	return res
}

func (r *Registry) lookup(number string) string {
	if !phnum.Valid(number) {
		return number
	}
	matched, entry := 0, noEntry
	r.fwd.Walk(number, func(depth int, id trie.NodeID) bool {
		if e := r.fwd.Payload(id).entry; e != noEntry {
			matched, entry = depth, e
		}
		return true
	})
	if entry == noEntry {
		return number
	}
	return r.target(entry) + number[matched:]
}

// Rules returns every rule ordered by source.
func (r *Registry) Rules() []Rule {
	rules := make([]Rule, 0, r.rules)
	r.fwd.Each(func(key string, _ trie.NodeID, link *prefixLink) bool {
		if link.entry != noEntry {
			rules = append(rules, Rule{Source: key, Replacement: r.target(link.entry)})
		}
		return true
	})
	return rules
}

// Dump writes both tries in a human-readable form.
func (r *Registry) Dump(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "forward:"); err != nil {
		return err
	}
	err := r.fwd.Dump(w, func(link *prefixLink) string {
		if link.entry == noEntry {
			return ""
		}
		return "> " + r.target(link.entry)
	})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "reverse:"); err != nil {
		return err
	}
	return r.rev.Dump(w, func(list *origins) string {
		if list.size == 0 {
			return ""
		}
		label := "<"
		for e := list.head; e != noEntry; e = r.origins.at(e).next {
			label += " " + r.origins.at(e).source
		}
		return label
	})
}
