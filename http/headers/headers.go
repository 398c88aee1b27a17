package headers

import (
	"iter"
	"maps"
	"slices"

	"github.com/indigo-web/utils/strcomp"
)

// Headers maps header names onto their values. Names are stored exactly as
// given, without any normalization, and each name holds a single value: setting
// an already present name overrides it.
type Headers map[string]string

// New returns an empty headers map.
func New() Headers {
	return make(Headers)
}

// FromMap copies the map into a new instance. A nil map results in empty headers.
func FromMap(m map[string]string) Headers {
	h := make(Headers, len(m))
	maps.Copy(h, m)

	return h
}

// Set stores the value under the exact key, overriding the previous one.
func (h Headers) Set(key, value string) Headers {
	h[key] = value
	return h
}

// Get returns the value stored under the exact key.
func (h Headers) Get(key string) (value string, found bool) {
	value, found = h[key]
	return value, found
}

// Value returns the value stored under the exact key or an empty string.
func (h Headers) Value(key string) string {
	return h[key]
}

// Lookup looks the key up exactly first and, if it's absent, falls back to
// a case-insensitive comparison. When several keys differ only in case, the
// lexicographically smallest of them wins, so the result is deterministic.
func (h Headers) Lookup(key string) (value string, found bool) {
	if value, found = h[key]; found {
		return value, true
	}

	for _, k := range h.Keys() {
		if strcomp.EqualFold(k, key) {
			return h[k], true
		}
	}

	return "", false
}

// Has reports whether the exact key is presented.
func (h Headers) Has(key string) bool {
	_, found := h[key]
	return found
}

// Delete removes every key equal to the passed one regardless of case.
func (h Headers) Delete(key string) Headers {
	for k := range h {
		if strcomp.EqualFold(k, key) {
			delete(h, k)
		}
	}

	return h
}

// Keys returns all the keys sorted.
func (h Headers) Keys() []string {
	return slices.Sorted(maps.Keys(h))
}

// Iter walks over the pairs in key order.
func (h Headers) Iter() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, key := range h.Keys() {
			if !yield(key, h[key]) {
				return
			}
		}
	}
}

// Len returns a number of stored pairs.
func (h Headers) Len() int {
	return len(h)
}

// Clone creates a copy which can be modified independently.
func (h Headers) Clone() Headers {
	return FromMap(h)
}
