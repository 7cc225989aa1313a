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
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type treeTestCase struct {
	Name          string
	InitialKeys   []string
	KeysToInsert  []string
	KeysToDelete  []string
	ExpectedOrder []string // In-order traversal expectation after operations
}

func TestTreeOperations(t *testing.T) {
	testCases := []treeTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []string{"apple"},
			KeysToInsert:  []string{"banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Deletion with Balancing (Left-Heavy)",
			InitialKeys:   []string{"cherry", "banana", "apple"},
			KeysToDelete:  []string{"cherry"},
			ExpectedOrder: []string{"apple", "banana"},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"elephant", "bird"},
			KeysToDelete:  []string{"cat"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
		},
		{
			Name:          "Delete Absent Key",
			InitialKeys:   []string{"dog", "cat"},
			KeysToDelete:  []string{"zebra"},
			ExpectedOrder: []string{"cat", "dog"},
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []string{"b", "a", "c"},
			KeysToDelete:  []string{"a", "b", "c"},
			ExpectedOrder: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New[string, int]()
			for i, key := range append(slices.Clone(tc.InitialKeys), tc.KeysToInsert...) {
				require.NoError(t, tree.Insert(key, i))
				require.NoError(t, tree.Validate())
			}
			for _, key := range tc.KeysToDelete {
				tree.Remove(key)
				require.NoError(t, tree.Validate())
			}
			assert.Equal(t, tc.ExpectedOrder, tree.Keys())
			assert.Equal(t, len(tc.ExpectedOrder), tree.Len())
		})
	}
}

func TestInsertAscendingRotatesLeft(t *testing.T) {
	tree := New[int, string]()
	require.NoError(t, tree.Insert(10, "a"))
	require.NoError(t, tree.Insert(20, "b"))
	require.NoError(t, tree.Insert(30, "c"))

	require.NotNil(t, tree.root)
	assert.Equal(t, 20, tree.root.key)
	assert.Equal(t, 10, tree.root.left.key)
	assert.Equal(t, 30, tree.root.right.key)
	assert.Equal(t, 2, tree.Height())
	assert.Equal(t, 3, tree.root.rank)
	assert.Nil(t, tree.root.parent)
	assert.Same(t, tree.root, tree.root.left.parent)
	assert.Same(t, tree.root, tree.root.right.parent)
}

func TestRotationCases(t *testing.T) {
	testCases := []struct {
		name string
		keys []int
	}{
		{"LL", []int{30, 20, 10}},
		{"RR", []int{10, 20, 30}},
		{"LR", []int{30, 10, 20}},
		{"RL", []int{10, 30, 20}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := New[int, int]()
			for _, k := range tc.keys {
				require.NoError(t, tree.Insert(k, k))
			}
			require.NoError(t, tree.Validate())
			assert.Equal(t, 20, tree.root.key)
			assert.Equal(t, 2, tree.Height())
		})
	}
}

func TestInsertDuplicate(t *testing.T) {
	tree := New[int, string]()
	require.NoError(t, tree.Insert(1, "one"))

	err := tree.Insert(1, "uno")
	require.ErrorIs(t, err, ErrDuplicateKey)

	v, err := tree.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "one", v)
	assert.Equal(t, 1, tree.Len())
}

func TestGetAndUpdate(t *testing.T) {
	tree := New[string, int]()
	_, err := tree.Get("missing")
	require.ErrorIs(t, err, ErrKeyNotFound)
	require.ErrorIs(t, tree.Update("missing", 1), ErrKeyNotFound)

	require.NoError(t, tree.Insert("k", 1))
	require.NoError(t, tree.Update("k", 2))
	v, err := tree.Get("k")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.True(t, tree.Contains("k"))
	assert.False(t, tree.Contains("j"))
}

func TestRemoveAbsentLeavesShapeUnchanged(t *testing.T) {
	tree := New[int, int]()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		require.NoError(t, tree.Insert(k, k))
	}
	before := tree.Print()
	root := tree.root

	assert.False(t, tree.Remove(45))
	assert.Equal(t, before, tree.Print())
	assert.Same(t, root, tree.root)
	assert.Equal(t, 7, tree.Len())
}

func TestRemoveTwoChildrenUsesSuccessor(t *testing.T) {
	tree := New[int, int]()
	for _, k := range []int{20, 10, 30, 25, 35} {
		require.NoError(t, tree.Insert(k, k*10))
	}

	assert.True(t, tree.Remove(20))
	require.NoError(t, tree.Validate())

	assert.Equal(t, 25, tree.root.key)
	assert.Equal(t, 250, tree.root.value)
	assert.Equal(t, 30, tree.root.right.key)
	assert.Nil(t, tree.root.right.left)
	assert.Equal(t, []int{10, 25, 30, 35}, tree.Keys())
}

func TestRemoveSplicesSuccessorChild(t *testing.T) {
	tree := New[int, int]()
	for _, k := range []int{20, 10, 30, 35} {
		require.NoError(t, tree.Insert(k, k))
	}

	assert.True(t, tree.Remove(20))
	require.NoError(t, tree.Validate())
	assert.Equal(t, 30, tree.root.key)
	assert.Equal(t, 10, tree.root.left.key)
	assert.Equal(t, 35, tree.root.right.key)
	assert.Same(t, tree.root, tree.root.right.parent)
}

func TestRemoveTriggersRotation(t *testing.T) {
	tree := New[int, int]()
	for _, k := range []int{20, 10, 30, 35} {
		require.NoError(t, tree.Insert(k, k))
	}

	assert.True(t, tree.Remove(10))
	require.NoError(t, tree.Validate())
	assert.Equal(t, 30, tree.root.key)
	assert.Equal(t, 20, tree.root.left.key)
	assert.Equal(t, 35, tree.root.right.key)
	assert.Equal(t, 2, tree.Height())
}

func TestClear(t *testing.T) {
	tree := New[int, int]()
	for i := range 10 {
		require.NoError(t, tree.Insert(i, i))
	}
	tree.Clear()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Height())
	assert.Empty(t, tree.Keys())
	require.NoError(t, tree.Insert(1, 1))
	assert.Equal(t, 1, tree.Len())
}

func TestNilTreeReads(t *testing.T) {
	var tree *Tree[int, int]
	assert.Equal(t, 0, tree.Len())
	assert.True(t, tree.IsEmpty())
	assert.False(t, tree.Contains(1))
	assert.Empty(t, tree.Keys())
	assert.Equal(t, 0, tree.Rank(3))
	require.NoError(t, tree.Validate())
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	tree := New[int, int]()
	present := map[int]bool{}

	for i := 0; i < 3000; i++ {
		k := rng.IntN(500)
		if rng.IntN(3) == 0 {
			removed := tree.Remove(k)
			assert.Equal(t, present[k], removed, "remove %d", k)
			delete(present, k)
		} else {
			err := tree.Insert(k, i)
			if present[k] {
				require.ErrorIs(t, err, ErrDuplicateKey)
			} else {
				require.NoError(t, err)
			}
			present[k] = true
		}
		require.NoError(t, tree.Validate(), "after step %d", i)
		require.Equal(t, len(present), tree.Len())
	}

	want := make([]int, 0, len(present))
	for k := range present {
		want = append(want, k)
	}
	slices.Sort(want)
	assert.Equal(t, want, tree.Keys())
}
