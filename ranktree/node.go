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

import "cmp"

// node owns its two children. parent is only a back-reference used for the
// upward height/rank walk; it is nil for the root.
type node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	height int // 1 for a leaf
	rank   int // number of nodes in this subtree
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func rank[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.rank
}

// balance is height(left) - height(right).
func (n *node[K, V]) balance() int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// refresh recomputes height and rank from the children, which must already
// be up to date.
func (n *node[K, V]) refresh() {
	n.height = max(height(n.left), height(n.right)) + 1
	n.rank = rank(n.left) + rank(n.right) + 1
}

func (n *node[K, V]) setLeft(child *node[K, V]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
}

func (n *node[K, V]) setRight(child *node[K, V]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
}

func (n *node[K, V]) leftmost() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) rightmost() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}
