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
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/cybrota/rankavl/hashtable"
	"github.com/cybrota/rankavl/loaders"
	"github.com/cybrota/rankavl/ranktree"
	"github.com/schollz/progressbar/v3"
)

// Dataset is the tree every CLI command works on
type Dataset = ranktree.Tree[string, float64]

// BuildOptions controls how records become a tree
type BuildOptions struct {
	Combine      ranktree.CombineFunc[float64]
	SortInput    bool
	ShowProgress bool
	Progress     io.Writer // where the progress bar is drawn
}

// buildDataset turns records into a tree. Strictly ascending input is
// bulk-built in one pass. Other input is either sorted and folded first
// (SortInput) or inserted record by record, combining repeated keys.
func buildDataset(records []loaders.Record, opts BuildOptions) (*Dataset, error) {
	if opts.Combine == nil {
		opts.Combine = ranktree.Sum[float64]
	}

	if loaders.IsStrictlyAscending(records) {
		return bulkBuild(records)
	}
	if opts.SortInput {
		return bulkBuild(sortAndFold(records, opts.Combine))
	}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress && opts.Progress != nil {
		bar = progressbar.NewOptions(len(records),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("Inserting records..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(opts.Progress)
			}),
		)
	}

	tree := ranktree.New[string, float64]()
	for _, rec := range records {
		if err := insertOrCombine(tree, rec, opts.Combine); err != nil {
			return nil, err
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return tree, nil
}

func insertOrCombine(tree *Dataset, rec loaders.Record, combine ranktree.CombineFunc[float64]) error {
	err := tree.Insert(rec.Key, rec.Value)
	if !errors.Is(err, ranktree.ErrDuplicateKey) {
		return err
	}
	existing, err := tree.Get(rec.Key)
	if err != nil {
		return err
	}
	return tree.Update(rec.Key, combine(existing, rec.Value))
}

func bulkBuild(records []loaders.Record) (*Dataset, error) {
	keys := make([]string, len(records))
	values := make([]float64, len(records))
	for i, rec := range records {
		keys[i], values[i] = rec.Key, rec.Value
	}
	return ranktree.BuildFromSorted(keys, values)
}

// sortAndFold sorts records by key and combines repeated keys in file order
func sortAndFold(records []loaders.Record, combine ranktree.CombineFunc[float64]) []loaders.Record {
	sorted := make([]loaders.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})

	folded := sorted[:0]
	for _, rec := range sorted {
		if n := len(folded); n > 0 && folded[n-1].Key == rec.Key {
			folded[n-1].Value = combine(folded[n-1].Value, rec.Value)
			continue
		}
		folded = append(folded, rec)
	}
	return folded
}

// HistogramBucket counts the keys whose value falls in [Floor, Floor+1)
type HistogramBucket struct {
	Floor int64
	Count int
}

// valueHistogram groups a dataset's values by their integer floor
func valueHistogram(tree *Dataset, config hashtable.Config) []HistogramBucket {
	counts := hashtable.New[int64, int](config)
	for _, v := range tree.All() {
		floor := int64(math.Floor(v))
		n, err := counts.Get(floor)
		if err != nil {
			_ = counts.Insert(floor, 1)
			continue
		}
		_ = counts.Update(floor, n+1)
	}

	ordered := counts.Ordered()
	buckets := make([]HistogramBucket, 0, ordered.Len())
	for floor, n := range ordered.All() {
		buckets = append(buckets, HistogramBucket{Floor: floor, Count: n})
	}
	return buckets
}
