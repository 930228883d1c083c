package forward

import (
	"fmt"

	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/phnum"
	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/trie"
)

// Reverse returns every number that some rule could have rewritten to
// number, plus number itself, sorted and without duplicates. A malformed
// number yields an empty set. When MaxResults would be exceeded it returns
// ErrOutOfMemory and no set.
func (r *Registry) Reverse(number string) (*phnum.Numbers, error) {
	if !phnum.Valid(number) {
		return phnum.NewNumbers(0), nil
	}

	res := phnum.NewNumbers(1)
	var overflow bool
	emit := func(num string) bool {
		if r.limits.MaxResults > 0 && res.Count() >= r.limits.MaxResults {
			overflow = true
			return false
		}
		res.Append(num)
		return true
	}

	r.rev.Walk(number, func(depth int, id trie.NodeID) bool {
		list := r.rev.Payload(id)
		if list.size == 0 || list.target != number[:depth] {
			return true
		}
		for e := list.head; e != noEntry; e = r.origins.at(e).next {
			if !emit(r.origins.at(e).source + number[depth:]) {
				return false
			}
		}
		return true
	})
	if !overflow {
		emit(number)
	}
	if overflow {
		res.Release()
		r.log.Warn().
			Str("number", number).
			Int("max_results", r.limits.MaxResults).
			Msg("Reverse result limit reached")
		return nil, fmt.Errorf("%w: reverse of %q exceeds %d results", ErrOutOfMemory, number, r.limits.MaxResults)
	}

	res.SortUnique()
	return res, nil
}

// GetReverse is Reverse restricted to the numbers that Get actually rewrites
// to number.
func (r *Registry) GetReverse(number string) (*phnum.Numbers, error) {
	res, err := r.Reverse(number)
	if err != nil {
		return nil, err
	}
	res.Filter(func(c string) bool {
		return r.lookup(c) == number
	})
	return res, nil
}
