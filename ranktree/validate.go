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

// Validate walks the whole tree and reports the first broken invariant:
// key order, AVL balance, cached height, cached rank, parent links, or the
// element count.
func (t *Tree[K, V]) Validate() error {
	if t == nil {
		return nil
	}
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("root %v has a parent", t.root.key)
	}
	count, err := validateNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("size is %d but %d nodes are reachable", t.size, count)
	}
	return nil
}

func validateNode[K cmp.Ordered, V any](n *node[K, V], low, high *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if low != nil && !cmp.Less(*low, n.key) {
		return 0, fmt.Errorf("key %v is not greater than ancestor %v", n.key, *low)
	}
	if high != nil && !cmp.Less(n.key, *high) {
		return 0, fmt.Errorf("key %v is not less than ancestor %v", n.key, *high)
	}
	for _, child := range []*node[K, V]{n.left, n.right} {
		if child != nil && child.parent != n {
			return 0, fmt.Errorf("child %v of %v has a stale parent link", child.key, n.key)
		}
	}

	leftCount, err := validateNode(n.left, low, &n.key)
	if err != nil {
		return 0, err
	}
	rightCount, err := validateNode(n.right, &n.key, high)
	if err != nil {
		return 0, err
	}

	if want := max(height(n.left), height(n.right)) + 1; n.height != want {
		return 0, fmt.Errorf("node %v has height %d, want %d", n.key, n.height, want)
	}
	if b := n.balance(); b > 1 || b < -1 {
		return 0, fmt.Errorf("node %v has balance factor %d", n.key, b)
	}
	count := leftCount + rightCount + 1
	if n.rank != count {
		return 0, fmt.Errorf("node %v has rank %d, want %d", n.key, n.rank, count)
	}
	return count, nil
}
