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

// Package hashtable is a chained hash table over integer keys whose buckets
// are rank trees. A bloom filter in front of the buckets answers most misses
// without touching a bucket.
package hashtable

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cybrota/rankavl/ranktree"
	"github.com/willf/bloom"
)

const (
	// Tables at least this large shrink once they fall to a quarter full.
	minShrinkBuckets = 40

	DefaultBloomBits   = 1 << 16
	DefaultBloomHashes = 4
)

var (
	ErrKeyNotFound  = fmt.Errorf("hashtable: %w", ranktree.ErrKeyNotFound)
	ErrDuplicateKey = fmt.Errorf("hashtable: %w", ranktree.ErrDuplicateKey)
)

// Integer is the set of key types the table can hash.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Config struct {
	InitialSize int  // expected number of entries; 0 allocates lazily
	BloomBits   uint // bits in the membership filter
	BloomHashes uint // hash functions in the membership filter
}

// Table is a hash table from K to V. The buckets double when the table holds
// as many entries as buckets and halve when a large table is a quarter full.
type Table[K Integer, V any] struct {
	buckets []*ranktree.Tree[K, V]
	count   int
	filter  *bloom.BloomFilter
}

// New creates a table sized for config.InitialSize entries.
func New[K Integer, V any](config Config) *Table[K, V] {
	if config.BloomBits == 0 {
		config.BloomBits = DefaultBloomBits
	}
	if config.BloomHashes == 0 {
		config.BloomHashes = DefaultBloomHashes
	}

	table := &Table[K, V]{filter: bloom.New(config.BloomBits, config.BloomHashes)}
	if config.InitialSize > 0 {
		table.buckets = make([]*ranktree.Tree[K, V], config.InitialSize*2)
	}
	return table
}

func (t *Table[K, V]) Len() int {
	return t.count
}

func (t *Table[K, V]) IsEmpty() bool {
	return t.count == 0
}

// Buckets returns the current number of buckets.
func (t *Table[K, V]) Buckets() int {
	return len(t.buckets)
}

func slot[K Integer](key K, buckets int) int {
	return int(uint64(key) % uint64(buckets))
}

func filterKey[K Integer](key K) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(key))
	return buf[:]
}

func (t *Table[K, V]) bucket(key K) *ranktree.Tree[K, V] {
	if len(t.buckets) == 0 {
		return nil
	}
	return t.buckets[slot(key, len(t.buckets))]
}

// Contains reports whether key is stored in the table.
func (t *Table[K, V]) Contains(key K) bool {
	if t.count == 0 || !t.filter.Test(filterKey(key)) {
		return false
	}
	return t.bucket(key).Contains(key)
}

// Get returns the value stored under key.
func (t *Table[K, V]) Get(key K) (V, error) {
	if !t.Contains(key) {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return t.bucket(key).Get(key)
}

// Update replaces the value stored under an existing key.
func (t *Table[K, V]) Update(key K, value V) error {
	if !t.Contains(key) {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return t.bucket(key).Update(key, value)
}

// Insert stores value under key. It fails with ErrDuplicateKey, leaving the
// table unchanged, when key is already present.
func (t *Table[K, V]) Insert(key K, value V) error {
	if t.Contains(key) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}

	switch {
	case len(t.buckets) == 0:
		t.buckets = make([]*ranktree.Tree[K, V], 1)
	case t.count == len(t.buckets):
		t.resize(len(t.buckets) * 2)
	}

	t.place(t.buckets, key, value)
	t.count++
	return nil
}

// Remove deletes key and reports whether it was present.
func (t *Table[K, V]) Remove(key K) bool {
	if !t.Contains(key) {
		return false
	}
	t.bucket(key).Remove(key)
	t.count--

	if len(t.buckets) >= minShrinkBuckets && t.count == len(t.buckets)/4 {
		t.resize(len(t.buckets) / 2)
	}
	return true
}

// place inserts into buckets without touching the element count.
func (t *Table[K, V]) place(buckets []*ranktree.Tree[K, V], key K, value V) {
	i := slot(key, len(buckets))
	if buckets[i] == nil {
		buckets[i] = ranktree.New[K, V]()
	}
	// Callers check for duplicates first.
	if err := buckets[i].Insert(key, value); err != nil {
		panic(err)
	}
	t.filter.Add(filterKey(key))
}

// resize rehashes every entry into size buckets and rebuilds the filter so
// that keys removed since the last resize stop testing positive.
func (t *Table[K, V]) resize(size int) {
	next := make([]*ranktree.Tree[K, V], size)
	t.filter.ClearAll()
	for _, tree := range t.buckets {
		for k, v := range tree.All() {
			t.place(next, k, v)
		}
	}
	t.buckets = next
}

// Entries returns every entry in ascending key order.
func (t *Table[K, V]) Entries() []ranktree.Entry[K, V] {
	entries := make([]ranktree.Entry[K, V], 0, t.count)
	for _, tree := range t.buckets {
		entries = append(entries, tree.Entries()...)
	}
	slices.SortFunc(entries, func(a, b ranktree.Entry[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return entries
}

// Keys returns every key in ascending order.
func (t *Table[K, V]) Keys() []K {
	entries := t.Entries()
	keys := make([]K, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

// Ordered returns a balanced rank tree holding every entry of the table.
func (t *Table[K, V]) Ordered() *ranktree.Tree[K, V] {
	tree, err := ranktree.FromEntries(t.Entries())
	if err != nil {
		// Keys are unique across buckets and sorted above.
		panic(err)
	}
	return tree
}
