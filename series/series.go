// SPDX-License-Identifier: MIT
package series

import (
	"fmt"
	"math"
	"sort"
)

// Series is an insertion-ordered mapping from string keys to float64 values.
// Keys are unique; values may be NaN (pending a fill policy).
// The zero value is not usable; construct with New, FromMap or Constant.
type Series struct {
	keys   []string
	values []float64
	index  map[string]int
}

// New builds a Series from parallel key/value slices, preserving order.
// Returns ErrLengthMismatch if the slices differ in length and
// ErrDuplicateKey if any key appears twice.
func New(keys []string, values []float64) (*Series, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("series: %d keys vs %d values: %w", len(keys), len(values), ErrLengthMismatch)
	}
	s := &Series{
		keys:   make([]string, len(keys)),
		values: make([]float64, len(values)),
		index:  make(map[string]int, len(keys)),
	}
	for i, k := range keys {
		if _, dup := s.index[k]; dup {
			return nil, fmt.Errorf("series: key %q: %w", k, ErrDuplicateKey)
		}
		s.keys[i] = k
		s.values[i] = values[i]
		s.index[k] = i
	}
	return s, nil
}

// FromMap builds a Series from a map, ordering keys lexicographically so
// the result is deterministic regardless of map iteration order.
func FromMap(m map[string]float64) *Series {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([]float64, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	s, _ := New(keys, values) // map keys are unique
	return s
}

// Constant builds a Series with the given keys all mapped to value v.
// Returns ErrDuplicateKey on repeated keys.
func Constant(keys []string, v float64) (*Series, error) {
	values := make([]float64, len(keys))
	for i := range values {
		values[i] = v
	}
	return New(keys, values)
}

// Len returns the number of entries.
func (s *Series) Len() int { return len(s.keys) }

// Keys returns a copy of the keys in insertion order.
func (s *Series) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Values returns a copy of the values in insertion order.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Get returns the value stored under key and whether the key exists.
func (s *Series) Get(key string) (float64, bool) {
	i, ok := s.index[key]
	if !ok {
		return 0, false
	}
	return s.values[i], true
}

// GetOr returns the value stored under key, or fallback when absent.
func (s *Series) GetOr(key string, fallback float64) float64 {
	if v, ok := s.Get(key); ok {
		return v
	}
	return fallback
}

// At returns the key/value pair at position i (insertion order).
// Panics on out-of-range i, matching slice indexing semantics.
func (s *Series) At(i int) (string, float64) {
	return s.keys[i], s.values[i]
}

// Set upserts key to value v, appending to the order when key is new.
func (s *Series) Set(key string, v float64) {
	if i, ok := s.index[key]; ok {
		s.values[i] = v
		return
	}
	s.index[key] = len(s.keys)
	s.keys = append(s.keys, key)
	s.values = append(s.values, v)
}

// Clone returns an independent deep copy.
func (s *Series) Clone() *Series {
	c, _ := New(s.keys, s.values) // keys already unique
	return c
}

// Div returns s[i]/other[s.key(i)] for every key of s, keeping s's order.
// The two series must hold exactly the same key set; a key of s missing in
// other (or a size mismatch) returns ErrKeyMismatch.
func (s *Series) Div(other *Series) (*Series, error) {
	if other == nil || s.Len() != other.Len() {
		return nil, ErrKeyMismatch
	}
	out := make([]float64, len(s.values))
	for i, k := range s.keys {
		ov, ok := other.Get(k)
		if !ok {
			return nil, fmt.Errorf("series: key %q absent from divisor: %w", k, ErrKeyMismatch)
		}
		out[i] = s.values[i] / ov
	}
	return New(s.keys, out)
}

// Sum returns the sum of all non-NaN values. An all-NaN or empty series
// sums to 0.
func (s *Series) Sum() float64 {
	var total float64
	for _, v := range s.values {
		if math.IsNaN(v) {
			continue
		}
		total += v
	}
	return total
}

// Mean returns the arithmetic mean of the non-NaN values, or NaN when no
// such value exists.
func (s *Series) Mean() float64 {
	var (
		total float64
		n     int
	)
	for _, v := range s.values {
		if math.IsNaN(v) {
			continue
		}
		total += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return total / float64(n)
}

// HasNaN reports whether any value is NaN.
func (s *Series) HasNaN() bool {
	for _, v := range s.values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
