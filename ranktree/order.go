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
	"iter"
)

// Entry is a key/value pair as exported by the traversal helpers.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Select returns the k-th smallest entry, counting from 1.
func (t *Tree[K, V]) Select(k int) (K, V, error) {
	var (
		zeroK K
		zeroV V
	)
	if t.IsEmpty() {
		return zeroK, zeroV, ErrEmptyTree
	}
	if k < 1 || k > t.size {
		return zeroK, zeroV, fmt.Errorf("%w: position %d outside [1, %d]", ErrInvalidInput, k, t.size)
	}

	n := t.root
	for n != nil {
		leftRank := rank(n.left)
		switch {
		case k <= leftRank:
			n = n.left
		case k == leftRank+1:
			return n.key, n.value, nil
		default:
			k -= leftRank + 1
			n = n.right
		}
	}
	panic("ranktree: rank field out of sync with tree shape")
}

// Rank returns how many keys are less than or equal to key. For a present
// key this is its 1-based position, so Select(Rank(k)) yields k.
func (t *Tree[K, V]) Rank(key K) int {
	if t == nil {
		return 0
	}
	count := 0
	n := t.root
	for n != nil {
		c := cmp.Compare(key, n.key)
		if c < 0 {
			n = n.left
			continue
		}
		count += rank(n.left) + 1
		if c == 0 {
			break
		}
		n = n.right
	}
	return count
}

// CountLess returns how many keys are strictly less than key.
func (t *Tree[K, V]) CountLess(key K) int {
	if t == nil {
		return 0
	}
	count := 0
	n := t.root
	for n != nil {
		if cmp.Compare(key, n.key) <= 0 {
			n = n.left
			continue
		}
		count += rank(n.left) + 1
		n = n.right
	}
	return count
}

// Min returns the entry with the smallest key.
func (t *Tree[K, V]) Min() (K, V, error) {
	if t.IsEmpty() {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, ErrEmptyTree
	}
	n := t.root.leftmost()
	return n.key, n.value, nil
}

// Max returns the entry with the largest key.
func (t *Tree[K, V]) Max() (K, V, error) {
	if t.IsEmpty() {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, ErrEmptyTree
	}
	n := t.root.rightmost()
	return n.key, n.value, nil
}

// All yields every entry in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil {
			return
		}
		walk(t.root, yield)
	}
}

func walk[K cmp.Ordered, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n.key, n.value) && walk(n.right, yield)
}

// Entries returns every entry in ascending key order.
func (t *Tree[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, t.Len())
	for k, v := range t.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

// Keys returns the keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Len())
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values ordered by ascending key.
func (t *Tree[K, V]) Values() []V {
	values := make([]V, 0, t.Len())
	for _, v := range t.All() {
		values = append(values, v)
	}
	return values
}

// Range returns, in ascending order, every entry whose key satisfies
// low <= key < high.
func (t *Tree[K, V]) Range(low, high K) []Entry[K, V] {
	var results []Entry[K, V]
	if t == nil || !cmp.Less(low, high) {
		return results
	}
	rangeSearch(t.root, low, high, &results)
	return results
}

func rangeSearch[K cmp.Ordered, V any](n *node[K, V], low, high K, results *[]Entry[K, V]) {
	if n == nil {
		return
	}

	// Keys below n can only be in range if n.key is above low.
	if cmp.Less(low, n.key) {
		rangeSearch(n.left, low, high, results)
	}

	if cmp.Compare(n.key, low) >= 0 && cmp.Less(n.key, high) {
		*results = append(*results, Entry[K, V]{Key: n.key, Value: n.value})
	}

	if cmp.Less(n.key, high) {
		rangeSearch(n.right, low, high, results)
	}
}
