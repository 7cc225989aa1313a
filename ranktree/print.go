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

	"github.com/xlab/treeprint"
)

// Print renders the tree shape, one line per node with its height and rank.
// Left children are tagged L and right children R.
func (t *Tree[K, V]) Print() string {
	if t.IsEmpty() {
		return treeprint.NewWithRoot("(empty)").String()
	}
	out := treeprint.NewWithRoot(nodeLabel(t.root))
	addChildren(out, t.root)
	return out.String()
}

func addChildren[K cmp.Ordered, V any](branch treeprint.Tree, n *node[K, V]) {
	if n.left != nil {
		addChildren(branch.AddMetaBranch("L", nodeLabel(n.left)), n.left)
	}
	if n.right != nil {
		addChildren(branch.AddMetaBranch("R", nodeLabel(n.right)), n.right)
	}
}

func nodeLabel[K cmp.Ordered, V any](n *node[K, V]) string {
	return fmt.Sprintf("%v = %v (height %d, rank %d)", n.key, n.value, n.height, n.rank)
}
