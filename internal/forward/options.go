package forward

import "github.com/rs/zerolog"

// Limits bounds the memory a Registry may use. The zero value means unlimited.
type Limits struct {
	// MaxNodes caps the live nodes of each trie, roots included.
	MaxNodes int

	// Worklist caps the pending nodes while a subtree is destroyed.
	// A negative value forces the constant-memory destruction path.
	Worklist int

	// MaxResults caps the candidates collected by Reverse and GetReverse.
	MaxResults int
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for mutation events.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = logger
	}
}

// WithLimits sets memory limits.
func WithLimits(limits Limits) Option {
	return func(r *Registry) {
		r.limits = limits
	}
}
