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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **rankavl %s**

Load key/value datasets into a height-balanced search tree that also knows
every key's position. Select the k-th key or rank any key in logarithmic time.

Built with Go %s

# 1. Features
* Self-balancing AVL tree with per-node subtree counts
* One-pass bulk build for files that are already sorted by key
* Merge two datasets with sum, max, min, first or last on shared keys
* Interactive session (rankavl repl) holding several named trees

# 2. Dataset formats
* YAML: a mapping of key to number, or a list of {key, value} items
* Text: one "key [value]" per line, shell quoting allowed, # starts a comment

# 3. Commands
* build, check, print, keys: load a file and inspect the tree
* select FILE K, rank FILE KEY, range FILE LOW HIGH: order statistics
* histogram FILE: count keys per integer value
* settings: show ~/.rankavl.yaml (or $RANKAVL_CONFIG)

# Please be aware
* Copy to clipboard (--copy) on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
