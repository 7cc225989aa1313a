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
	"time"

	"github.com/cybrota/rankavl/loaders"
	"github.com/patrickmn/go-cache"
)

// Clean up expired entries every 5 minutes
const datasetCacheCleanup = 5 * time.Minute

// NewDatasetCache creates a cache for parsed dataset files
func NewDatasetCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, datasetCacheCleanup)
}

// CacheDataset stores the records parsed from path
func CacheDataset(c *cache.Cache, path string, records []loaders.Record) {
	// Set instead of Add so a reload overwrites the previous parse
	c.Set(path, records, cache.DefaultExpiration)
}

// GetDataset returns the cached records for path, if still fresh
func GetDataset(c *cache.Cache, path string) ([]loaders.Record, bool) {
	val, ok := c.Get(path)
	if !ok {
		return nil, false
	}
	return val.([]loaders.Record), true
}
