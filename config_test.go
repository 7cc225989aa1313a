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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rankavl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigFrom(t *testing.T) {
	tests := []struct {
		name string
		body string
		want func(c *Config)
	}{
		{
			name: "missing fields keep defaults",
			body: "merge:\n  combine: max\n",
			want: func(c *Config) {
				c.Merge.Combine = "max"
			},
		},
		{
			name: "all sections",
			body: "load:\n  show_progress: false\n  sort_input: true\ncache:\n  ttl_minutes: 5\nhashtable:\n  bloom_bits: 128\n  bloom_hashes: 2\n",
			want: func(c *Config) {
				c.Load.ShowProgress = false
				c.Load.SortInput = true
				c.Cache.TTLMinutes = 5
				c.Hashtable.BloomBits = 128
				c.Hashtable.BloomHashes = 2
			},
		},
		{
			name: "invalid yaml falls back to defaults",
			body: "load: [unclosed\n",
			want: func(c *Config) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := defaultConfig
			tt.want(&expected)

			got, err := loadConfigFrom(writeConfig(t, tt.body))
			require.NoError(t, err)
			assert.Equal(t, expected, *got)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv(configEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestCombineFunc(t *testing.T) {
	tests := []struct {
		combine string
		want    float64
	}{
		{"sum", 5},
		{"max", 3},
		{"min", 2},
		{"first", 2},
		{"last", 3},
		{"median", 5}, // unknown names use sum
	}

	for _, tt := range tests {
		config := defaultConfig
		config.Merge.Combine = tt.combine
		assert.Equal(t, tt.want, config.CombineFunc()(2, 3), tt.combine)
	}
}

func TestCacheTTL(t *testing.T) {
	config := defaultConfig
	assert.Equal(t, 30*time.Minute, config.CacheTTL())

	config.Cache.TTLMinutes = 0
	assert.Equal(t, 30*time.Minute, config.CacheTTL())

	config.Cache.TTLMinutes = 2
	assert.Equal(t, 2*time.Minute, config.CacheTTL())
}

func TestDisplaySettingsCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rankavl.yaml")
	t.Setenv(configEnvVar, path)

	var out bytes.Buffer
	require.NoError(t, displaySettings(&out))
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "newly created")
	assert.Contains(t, out.String(), "merge.combine")

	out.Reset()
	require.NoError(t, displaySettings(&out))
	assert.NotContains(t, out.String(), "newly created")

	config, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}
