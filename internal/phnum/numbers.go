package phnum

import "slices"

// Numbers is an ordered, growable collection of phone numbers produced by a
// single query. It is owned by the caller and independent of the registry
// that produced it. A nil *Numbers behaves like an empty set.
type Numbers struct {
	nums []string
}

// NewNumbers creates an empty set with room for capacity numbers.
func NewNumbers(capacity int) *Numbers {
	if capacity < 0 {
		capacity = 0
	}
	return &Numbers{nums: make([]string, 0, capacity)}
}

// Append adds num at the end. The backing array doubles when full.
func (n *Numbers) Append(num string) {
	if len(n.nums) == cap(n.nums) {
		grown := make([]string, len(n.nums), max(1, 2*cap(n.nums)))
		copy(grown, n.nums)
		n.nums = grown
	}
	n.nums = append(n.nums, num)
}

// Count returns the number of stored numbers.
func (n *Numbers) Count() int {
	if n == nil {
		return 0
	}
	return len(n.nums)
}

// At returns the number at idx. ok is false when idx is out of range.
func (n *Numbers) At(idx int) (num string, ok bool) {
	if n == nil || idx < 0 || idx >= len(n.nums) {
		return "", false
	}
	return n.nums[idx], true
}

// Values returns a copy of the stored numbers in order.
func (n *Numbers) Values() []string {
	if n == nil {
		return []string{}
	}
	return slices.Clone(n.nums)
}

// Release drops every stored number. The set is empty afterwards.
func (n *Numbers) Release() {
	if n == nil {
		return
	}
	clear(n.nums)
	n.nums = nil
}

// SortUnique sorts the numbers with Compare and removes duplicates.
func (n *Numbers) SortUnique() {
	if n == nil {
		return
	}
	slices.SortFunc(n.nums, Compare)
	n.nums = slices.Compact(n.nums)
}

// Filter keeps only the numbers for which keep returns true, preserving order.
func (n *Numbers) Filter(keep func(num string) bool) {
	if n == nil {
		return
	}
	n.nums = slices.DeleteFunc(n.nums, func(num string) bool { return !keep(num) })
}
