// Package scope implements persistent lexical environments.
//
// A Scope is an immutable chain of bindings. Adding a binding returns a
// new frame linked to the old chain; the old chain is left untouched and
// remains valid, so sibling branches of a tree walk can extend the same
// parent independently. A nil *Scope is the empty scope.
package scope

// Scope is one frame of a binding chain.
type Scope[K comparable, V any] struct {
	key   K
	value V
	prev  *Scope[K, V]
}

// Add returns a scope in which key is bound to value,
// shadowing any earlier binding of key in s.
func (s *Scope[K, V]) Add(key K, value V) *Scope[K, V] {
	return &Scope[K, V]{key: key, value: value, prev: s}
}

// Lookup returns the innermost value bound to key.
func (s *Scope[K, V]) Lookup(key K) (V, bool) {
	for f := s; f != nil; f = f.prev {
		if f.key == key {
			return f.value, true
		}
	}
	var zero V
	return zero, false
}

// Len returns the number of frames in the chain,
// counting shadowed bindings.
func (s *Scope[K, V]) Len() int {
	n := 0
	for f := s; f != nil; f = f.prev {
		n++
	}
	return n
}

// Each calls fn for every visible binding, innermost first.
// Shadowed bindings are skipped.
func (s *Scope[K, V]) Each(fn func(K, V)) {
	seen := make(map[K]bool)
	for f := s; f != nil; f = f.prev {
		if seen[f.key] {
			continue
		}
		seen[f.key] = true
		fn(f.key, f.value)
	}
}

// FromMap returns a scope containing the bindings in m,
// added on top of parent.
func FromMap[K comparable, V any](parent *Scope[K, V], m map[K]V) *Scope[K, V] {
	s := parent
	for k, v := range m {
		s = s.Add(k, v)
	}
	return s
}
