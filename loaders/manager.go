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
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
)

// LoaderManager picks a dataset loader for a file
type LoaderManager struct {
	loaders []Loader
}

// NewLoaderManager creates a manager with every built-in loader
func NewLoaderManager() *LoaderManager {
	manager := &LoaderManager{}
	manager.RegisterLoader(&YAMLLoader{})
	manager.RegisterLoader(&TextLoader{})
	return manager
}

// RegisterLoader registers a new loader
func (lm *LoaderManager) RegisterLoader(loader Loader) {
	lm.loaders = append(lm.loaders, loader)
	sort.SliceStable(lm.loaders, func(i, j int) bool {
		return lm.loaders[i].Priority() < lm.loaders[j].Priority()
	})
}

// LoadFile reads the dataset stored at path
func (lm *LoaderManager) LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return lm.Load(path, bytes.NewReader(data))
}

// Load parses r with the best loader for path, falling back to the next
// supporting loader when one fails.
func (lm *LoaderManager) Load(path string, r io.ReadSeeker) ([]Record, error) {
	var lastErr error
	tried := 0
	for _, loader := range lm.loaders {
		if !loader.SupportsFile(path) {
			continue
		}
		if tried > 0 {
			if _, err := r.Seek(0, io.SeekStart); err != nil {
				return nil, err
			}
		}
		tried++

		records, err := loader.Load(r)
		if err == nil {
			return records, nil
		}
		lastErr = err
	}

	if tried == 0 {
		return nil, fmt.Errorf("no loader found for dataset %q", path)
	}
	return nil, fmt.Errorf("failed to load dataset %q: %v", path, lastErr)
}
