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

package loaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLLoaderMapping(t *testing.T) {
	records, err := (&YAMLLoader{}).Load(strings.NewReader("zeta: 3\nalpha: 1.5\nmid: -2\n"))
	require.NoError(t, err)
	assert.Equal(t, []Record{{"zeta", 3}, {"alpha", 1.5}, {"mid", -2}}, records)
}

func TestYAMLLoaderSequence(t *testing.T) {
	input := `
- key: a
  value: 1
- key: "b c"
  value: 2
`
	records, err := (&YAMLLoader{}).Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Record{{"a", 1}, {"b c", 2}}, records)
}

func TestYAMLLoaderErrors(t *testing.T) {
	_, err := (&YAMLLoader{}).Load(strings.NewReader("a: nope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `key "a"`)

	_, err = (&YAMLLoader{}).Load(strings.NewReader("just a scalar\n"))
	require.Error(t, err)

	records, err := (&YAMLLoader{}).Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestTextLoader(t *testing.T) {
	input := `# dataset
apple 3
"big banana" 2.5

cherry
`
	records, err := (&TextLoader{}).Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Record{{"apple", 3}, {"big banana", 2.5}, {"cherry", 1}}, records)
}

func TestTextLoaderErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"bad number", "apple x\n", "line 1"},
		{"too many fields", "ok 1\na b c\n", "line 2"},
		{"unterminated quote", `"apple 1` + "\n", "line 1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := (&TextLoader{}).Load(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoaderManagerPicksByExtension(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "data.yml")
	textPath := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(yamlPath, []byte("b: 2\na: 1\n"), 0644))
	require.NoError(t, os.WriteFile(textPath, []byte("b 2\na 1\n"), 0644))

	manager := NewLoaderManager()
	fromYAML, err := manager.LoadFile(yamlPath)
	require.NoError(t, err)
	fromText, err := manager.LoadFile(textPath)
	require.NoError(t, err)
	assert.Equal(t, fromYAML, fromText)

	_, err = manager.LoadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}

func TestIsStrictlyAscending(t *testing.T) {
	assert.True(t, IsStrictlyAscending(nil))
	assert.True(t, IsStrictlyAscending([]Record{{"a", 1}, {"b", 1}}))
	assert.False(t, IsStrictlyAscending([]Record{{"b", 1}, {"a", 1}}))
	assert.False(t, IsStrictlyAscending([]Record{{"a", 1}, {"a", 2}}))
}
