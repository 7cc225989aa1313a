// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ranktree

import (
	"cmp"
	"fmt"
)

// BuildFromSorted builds a balanced tree in O(n) from keys that are strictly
// ascending, pairing keys[i] with values[i]. It fails with ErrInvalidInput
// when the slices differ in length or the keys are not strictly ascending.
func BuildFromSorted[K cmp.Ordered, V any](keys []K, values []V) (*Tree[K, V], error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys but %d values", ErrInvalidInput, len(keys), len(values))
	}
	for i := 1; i < len(keys); i++ {
		if !cmp.Less(keys[i-1], keys[i]) {
			return nil, fmt.Errorf("%w: key %v at position %d does not follow %v", ErrInvalidInput, keys[i], i, keys[i-1])
		}
	}
	return &Tree[K, V]{root: buildSorted(keys, values, nil), size: len(keys)}, nil
}

// FromEntries is BuildFromSorted for a slice of entries.
func FromEntries[K cmp.Ordered, V any](entries []Entry[K, V]) (*Tree[K, V], error) {
	keys := make([]K, len(entries))
	values := make([]V, len(entries))
	for i, e := range entries {
		keys[i], values[i] = e.Key, e.Value
	}
	return BuildFromSorted(keys, values)
}

// buildSorted roots each subtree at the midpoint len/2. Subtree sizes differ
// by at most one, so the result is balanced without rotations and recursion
// depth stays logarithmic.
func buildSorted[K cmp.Ordered, V any](keys []K, values []V, parent *node[K, V]) *node[K, V] {
	if len(keys) == 0 {
		return nil
	}
	pos := len(keys) / 2
	n := &node[K, V]{key: keys[pos], value: values[pos], parent: parent}
	n.left = buildSorted(keys[:pos], values[:pos], n)
	n.right = buildSorted(keys[pos+1:], values[pos+1:], n)
	n.refresh()
	return n
}

// Clone returns a new tree with the same entries. Values are copied by
// assignment.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	if t.IsEmpty() {
		return New[K, V]()
	}
	entries := t.Entries()
	keys := make([]K, len(entries))
	values := make([]V, len(entries))
	for i, e := range entries {
		keys[i], values[i] = e.Key, e.Value
	}
	return &Tree[K, V]{root: buildSorted(keys, values, nil), size: len(entries)}
}

// CombineFunc merges two values that share a key. It should be associative;
// Merge is commutative in content only when it is also commutative.
type CombineFunc[V any] func(a, b V) V

// Combiner is implemented by value types that know how to merge with
// another value of the same type.
type Combiner[V any] interface {
	Combine(other V) V
}

// Merge returns a fresh balanced tree holding the union of a and b. Values
// under a key present in both are merged with combine(aValue, bValue). Both
// inputs are left untouched. A nil or empty input yields a copy of the other.
// It runs in O(len(a) + len(b)).
func Merge[K cmp.Ordered, V any](a, b *Tree[K, V], combine CombineFunc[V]) *Tree[K, V] {
	switch {
	case a.IsEmpty() && b.IsEmpty():
		return New[K, V]()
	case a.IsEmpty():
		return b.Clone()
	case b.IsEmpty():
		return a.Clone()
	}

	left, right := a.Entries(), b.Entries()
	keys := make([]K, 0, len(left)+len(right))
	values := make([]V, 0, len(left)+len(right))

	i, j := 0, 0
	for i < len(left) && j < len(right) {
		switch c := cmp.Compare(left[i].Key, right[j].Key); {
		case c < 0:
			keys, values = append(keys, left[i].Key), append(values, left[i].Value)
			i++
		case c > 0:
			keys, values = append(keys, right[j].Key), append(values, right[j].Value)
			j++
		default:
			keys, values = append(keys, left[i].Key), append(values, combine(left[i].Value, right[j].Value))
			i++
			j++
		}
	}
	for ; i < len(left); i++ {
		keys, values = append(keys, left[i].Key), append(values, left[i].Value)
	}
	for ; j < len(right); j++ {
		keys, values = append(keys, right[j].Key), append(values, right[j].Value)
	}

	return &Tree[K, V]{root: buildSorted(keys, values, nil), size: len(keys)}
}

// MergeCombinable merges trees whose value type carries its own Combine.
func MergeCombinable[K cmp.Ordered, V Combiner[V]](a, b *Tree[K, V]) *Tree[K, V] {
	return Merge(a, b, func(x, y V) V { return x.Combine(y) })
}

// Number covers the value types the numeric combine helpers accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Sum[V Number](a, b V) V { return a + b }

func Max[V cmp.Ordered](a, b V) V { return max(a, b) }

func Min[V cmp.Ordered](a, b V) V { return min(a, b) }

// First keeps the value from the first tree.
func First[V any](a, _ V) V { return a }

// Last keeps the value from the second tree.
func Last[V any](_, b V) V { return b }
