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

// Package ranktree implements an AVL tree whose nodes also track the size of
// their subtree, so that it answers order-statistic queries (k-th smallest,
// number of keys below a bound) next to the usual lookup, insert and remove.
//
// A Tree is not safe for concurrent use. Callers that share one across
// goroutines must serialize every mutation themselves.
package ranktree

import (
	"cmp"
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey = errors.New("ranktree: duplicate key")
	ErrKeyNotFound  = errors.New("ranktree: key not found")
	ErrInvalidInput = errors.New("ranktree: invalid input")
	ErrEmptyTree    = errors.New("ranktree: empty tree")
)

// Tree is a rank-augmented AVL tree. The zero value is an empty tree ready
// to use.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len returns the number of entries in the tree. A nil tree has length 0.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *Tree[K, V]) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the height of the root, 0 for an empty tree.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func (t *Tree[K, V]) find(key K) *node[K, V] {
	if t == nil {
		return nil
	}
	n := t.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (t *Tree[K, V]) Get(key K) (V, error) {
	n := t.find(key)
	if n == nil {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return n.value, nil
}

// Update replaces the value stored under an existing key in place.
func (t *Tree[K, V]) Update(key K, value V) error {
	n := t.find(key)
	if n == nil {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	n.value = value
	return nil
}

// Insert adds key with value. It fails with ErrDuplicateKey, before touching
// the tree, when key is already present.
func (t *Tree[K, V]) Insert(key K, value V) error {
	var parent *node[K, V]
	cur := t.root
	for cur != nil {
		parent = cur
		switch c := cmp.Compare(key, cur.key); {
		case c < 0:
			cur = cur.left
		case c > 0:
			cur = cur.right
		default:
			return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		}
	}

	n := &node[K, V]{key: key, value: value, height: 1, rank: 1}
	switch {
	case parent == nil:
		t.root = n
	case cmp.Less(key, parent.key):
		parent.setLeft(n)
	default:
		parent.setRight(n)
	}
	t.size++

	t.rebalance(parent)
	return nil
}

// Remove deletes key and reports whether it was present. Removing an absent
// key leaves the tree untouched.
func (t *Tree[K, V]) Remove(key K) bool {
	n := t.find(key)
	if n == nil {
		return false
	}
	t.removeNode(n)
	t.size--
	return true
}

func (t *Tree[K, V]) removeNode(n *node[K, V]) {
	if n.left != nil && n.right != nil {
		// Two children: move the in-order successor's entry up, then unlink
		// the successor, which has no left child.
		succ := n.right.leftmost()
		n.key, succ.key = succ.key, n.key
		n.value, succ.value = succ.value, n.value
		n = succ
	}

	child := n.left
	if child == nil {
		child = n.right
	}
	parent := n.parent
	t.replaceChild(n, child)
	n.left, n.right, n.parent = nil, nil, nil

	t.rebalance(parent)
}

// Clear drops every entry.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.size = 0
}

// replaceChild points old's parent (or the root) at repl and sets repl's
// parent accordingly. repl may be nil.
func (t *Tree[K, V]) replaceChild(old, repl *node[K, V]) {
	parent := old.parent
	if repl != nil {
		repl.parent = parent
	}
	switch {
	case parent == nil:
		t.root = repl
	case parent.left == old:
		parent.left = repl
	default:
		parent.right = repl
	}
}

// rebalance walks from n to the root, refreshing height and rank at every
// ancestor and rotating wherever the balance factor reaches ±2. The walk
// always reaches the root: removal can unbalance more than one ancestor.
func (t *Tree[K, V]) rebalance(n *node[K, V]) {
	for n != nil {
		n.refresh()
		switch b := n.balance(); {
		case b >= 2:
			if n.left.balance() >= 0 {
				n = t.rotateRight(n)
			} else {
				n = t.rotateLeftRight(n)
			}
		case b <= -2:
			if n.right.balance() > 0 {
				n = t.rotateRightLeft(n)
			} else {
				n = t.rotateLeft(n)
			}
		}
		n = n.parent
	}
}

// rotateRight handles the LL case: the left child becomes the subtree root.
// It returns the new subtree root.
func (t *Tree[K, V]) rotateRight(n *node[K, V]) *node[K, V] {
	pivot := n.left
	if pivot == nil {
		panic("ranktree: right rotation without a left child")
	}

	t.replaceChild(n, pivot)
	n.setLeft(pivot.right)
	pivot.setRight(n)

	n.refresh()
	pivot.refresh()
	return pivot
}

// rotateLeft handles the RR case: the right child becomes the subtree root.
func (t *Tree[K, V]) rotateLeft(n *node[K, V]) *node[K, V] {
	pivot := n.right
	if pivot == nil {
		panic("ranktree: left rotation without a right child")
	}

	t.replaceChild(n, pivot)
	n.setRight(pivot.left)
	pivot.setLeft(n)

	n.refresh()
	pivot.refresh()
	return pivot
}

// rotateLeftRight handles the LR case.
func (t *Tree[K, V]) rotateLeftRight(n *node[K, V]) *node[K, V] {
	t.rotateLeft(n.left)
	return t.rotateRight(n)
}

// rotateRightLeft handles the RL case.
func (t *Tree[K, V]) rotateRightLeft(n *node[K, V]) *node[K, V] {
	t.rotateRight(n.right)
	return t.rotateLeft(n)
}
