// Package phnum defines the phone-number alphabet shared by the registry tries
// and the result set returned by registry queries.
package phnum

// Radix is the number of distinct symbols a phone number may contain:
// the digits 0-9, '*' and '#'.
const Radix = 12

// Slot returns the child slot of symbol c. Digits map to 0-9, '*' to 10 and
// '#' to 11; ok is false for any other byte.
func Slot(c byte) (slot int, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case c == '*':
		return 10, true
	case c == '#':
		return 11, true
	}
	return 0, false
}

// Symbol is the inverse of Slot.
func Symbol(slot int) byte {
	switch slot {
	case 10:
		return '*'
	case 11:
		return '#'
	}
	return byte('0' + slot)
}

// Valid reports whether s is a phone number: a non-empty string over the alphabet.
func Valid(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := Slot(s[i]); !ok {
			return false
		}
	}
	return true
}

// Compare orders two phone numbers symbol by symbol using 0 < 1 < ... < 9 < * < #.
// When one number is a proper prefix of the other, the shorter one sorts first.
// The result is -1, 0 or +1.
func Compare(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			continue
		}
		if rank(a[i]) < rank(b[i]) {
			return -1
		}
		return 1
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// rank places bytes outside the alphabet after every phone symbol, in byte order.
func rank(c byte) int {
	if s, ok := Slot(c); ok {
		return s
	}
	return Radix + int(c)
}
