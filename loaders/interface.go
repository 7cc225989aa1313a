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
	"io"
	"path/filepath"
	"strings"
)

// Record is one key/value pair read from a dataset file, in file order.
type Record struct {
	Key   string
	Value float64
}

// Loader defines the interface for the different dataset file formats
type Loader interface {
	Load(r io.Reader) ([]Record, error)
	SupportsFile(path string) bool
	Priority() int // Lower number = higher priority
}

// extension returns the lower-cased file extension without the dot
func extension(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// IsStrictlyAscending reports whether records are sorted by key with no
// repeated key, which lets a caller bulk-build instead of inserting.
func IsStrictlyAscending(records []Record) bool {
	for i := 1; i < len(records); i++ {
		if records[i-1].Key >= records[i].Key {
			return false
		}
	}
	return true
}
