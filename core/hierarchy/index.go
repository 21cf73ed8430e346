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

package hierarchy

import (
	"github.com/google/btree"

	"github.com/google/grouptotals/core/ranks"
)

const btreeDegree = 32

// index keeps rows ordered by (order vector, seq). The same tree serves as
// the display order and as the exact-match lookup by composite key.
type index struct {
	tree *btree.BTreeG[*Row]
}

func rowLess(a, b *Row) bool {
	if c := ranks.Compare(a.order, b.order); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

func newIndex() *index {
	return &index{tree: btree.NewG[*Row](btreeDegree, rowLess)}
}

// insertIfAbsent adds r unless a row with the same key exists.
func (ix *index) insertIfAbsent(r *Row) bool {
	if ix.tree.Has(r) {
		return false
	}
	ix.tree.ReplaceOrInsert(r)
	return true
}

func (ix *index) has(order []int) bool {
	return ix.tree.Has(&Row{order: order})
}

func (ix *index) get(order []int) (*Row, bool) {
	return ix.tree.Get(&Row{order: order})
}

func (ix *index) delete(r *Row) bool {
	_, ok := ix.tree.Delete(r)
	return ok
}

func (ix *index) ascend(fn func(r *Row) bool) {
	ix.tree.Ascend(fn)
}

func (ix *index) len() int {
	return ix.tree.Len()
}

func (ix *index) rows() []*Row {
	rows := make([]*Row, 0, ix.tree.Len())
	ix.tree.Ascend(func(r *Row) bool {
		rows = append(rows, r)
		return true
	})
	return rows
}
