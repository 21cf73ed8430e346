/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package ranks assigns dense ranks to the distinct grouping keys of a level
// and owns the reserved rank values used to order synthetic rows.
package ranks

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/google/grouptotals/core/tables"
)

// Reserved rank values. Real ranks are 1..K.
const (
	// FirstInGroup sorts before every real rank, NoGroup included.
	FirstInGroup = math.MinInt32
	// LastInGroup sorts after every real rank.
	LastInGroup = math.MaxInt32
	// NoGroup is the rank of rows whose key is empty.
	NoGroup = 0
	// Missing is returned for a non-empty key that is not in the table.
	Missing = -1
)

// ErrInconsistentRank means a key computed during a build was not found in
// the rank table built from the same rows. It indicates a defect.
var ErrInconsistentRank = errors.New("inconsistent rank table")

// KeyFunc returns the sort key of a row; "" means no group.
type KeyFunc func(row tables.Row) (string, error)

// Table maps the distinct keys of one level to ranks 1..K in ascending key
// order. It also memoizes the rank of every source row.
type Table struct {
	name     string
	keys     []string
	ranks    map[string]int
	rowRanks []int
}

// Build scans every row of table once.
func Build(table *tables.DataTable, name string, keyFn KeyFunc) (*Table, error) {
	n := table.Length()
	rowKeys := make([]string, n)
	distinct := make(map[string]struct{})
	for i := 0; i < n; i++ {
		key, err := keyFn(table.Row(i))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rowKeys[i] = key
		if key != "" {
			distinct[key] = struct{}{}
		}
	}
	if len(distinct) >= LastInGroup {
		return nil, fmt.Errorf("level %q has %d distinct keys, more than can be ranked", name, len(distinct))
	}

	t := &Table{
		name:     name,
		keys:     make([]string, 0, len(distinct)),
		ranks:    make(map[string]int, len(distinct)),
		rowRanks: make([]int, n),
	}
	for key := range distinct {
		t.keys = append(t.keys, key)
	}
	sort.Strings(t.keys)
	for i, key := range t.keys {
		t.ranks[key] = i + 1
	}
	for i, key := range rowKeys {
		rank := t.RankOf(key)
		if rank == Missing {
			return nil, fmt.Errorf("level %q row %d: %w", name, i, ErrInconsistentRank)
		}
		t.rowRanks[i] = rank
	}
	return t, nil
}

func (t *Table) Name() string {
	return t.name
}

// Len is the number of distinct non-empty keys.
func (t *Table) Len() int {
	return len(t.keys)
}

// RankOf returns NoGroup for "", the rank of a known key, Missing otherwise.
func (t *Table) RankOf(key string) int {
	if key == "" {
		return NoGroup
	}
	if rank, ok := t.ranks[key]; ok {
		return rank
	}
	return Missing
}

// RankAt returns the rank of source row i.
func (t *Table) RankAt(i int) int {
	return t.rowRanks[i]
}

// Key returns the key of a real rank, or "" for any other value.
func (t *Table) Key(rank int) string {
	if rank < 1 || rank > len(t.keys) {
		return ""
	}
	return t.keys[rank-1]
}

// IsSentinel reports whether rank is one of the reserved ordering values.
func IsSentinel(rank int) bool {
	return rank == FirstInGroup || rank == LastInGroup
}
