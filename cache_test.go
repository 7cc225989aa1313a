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
	"testing"
	"time"

	"github.com/cybrota/rankavl/loaders"
	"github.com/patrickmn/go-cache"
)

func TestCacheDatasetAndGetDataset(t *testing.T) {
	c := NewDatasetCache(time.Minute)
	path := "testdata.yaml"
	records := []loaders.Record{{Key: "a", Value: 1}, {Key: "b", Value: 2}}

	// Initially, GetDataset should miss.
	if got, ok := GetDataset(c, path); ok {
		t.Errorf("GetDataset(%q) = %v; want miss", path, got)
	}

	CacheDataset(c, path, records)

	got, ok := GetDataset(c, path)
	if !ok || len(got) != 2 || got[1].Key != "b" {
		t.Errorf("GetDataset(%q) = %v, %v; want %v", path, got, ok, records)
	}

	// A reload replaces the previous parse.
	CacheDataset(c, path, records[:1])
	if got, _ := GetDataset(c, path); len(got) != 1 {
		t.Errorf("after reload GetDataset(%q) has %d records; want 1", path, len(got))
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	path := "expiring.txt"

	c.Set(path, []loaders.Record{{Key: "x", Value: 1}}, 100*time.Millisecond)

	if _, ok := GetDataset(c, path); !ok {
		t.Errorf("GetDataset(%q) missed right after caching", path)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got, ok := GetDataset(c, path); ok {
		t.Errorf("After expiration, GetDataset(%q) = %v; want miss", path, got)
	}
}
