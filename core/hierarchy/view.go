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
	"github.com/google/grouptotals/core/columns"
	"github.com/google/grouptotals/core/grouping"
	"github.com/google/grouptotals/core/ranks"
	"github.com/google/grouptotals/core/values"
)

// View is the immutable result of a build. It is safe for concurrent reads.
type View struct {
	schema     *columns.Schema
	set        *grouping.Set
	levels     []grouping.Level
	sumColumns []string
	index      *index
	rows       []*Row
	totals     []*Row
}

func newView(schema *columns.Schema, set *grouping.Set, levels []grouping.Level, sumColumns []string, ix *index, rows []*Row) *View {
	v := &View{
		schema:     schema,
		set:        set,
		levels:     levels,
		sumColumns: sumColumns,
		index:      ix,
		rows:       rows,
	}
	for _, r := range rows {
		if r.level == len(levels)+1 {
			v.totals = append(v.totals, r)
		}
	}
	return v
}

func (v *View) Schema() *columns.Schema {
	return v.schema
}

func (v *View) Levels() *grouping.Set {
	return v.set
}

func (v *View) SumColumns() []string {
	return append([]string(nil), v.sumColumns...)
}

// Len is the number of rows in display order.
func (v *View) Len() int {
	return len(v.rows)
}

func (v *View) Row(i int) *Row {
	return v.rows[i]
}

// Rows returns the rows in display order.
func (v *View) Rows() []*Row {
	return append([]*Row(nil), v.rows...)
}

// TotalRows returns the grand total rows.
func (v *View) TotalRows() []*Row {
	return append([]*Row(nil), v.totals...)
}

// Lookup finds the row with exactly the given order vector.
func (v *View) Lookup(order []int) (*Row, bool) {
	if len(order) != len(v.levels)+1 {
		return nil, false
	}
	return v.index.get(order)
}

// LevelNameOf returns the grouping level name of a header or subtotal row,
// and "" for detail and grand total rows.
func (v *View) LevelNameOf(r *Row) string {
	if i := v.LevelIndexOf(r); i >= 0 {
		return v.levels[i].Name
	}
	return ""
}

// LevelIndexOf returns the grouping level index of a header or subtotal
// row, and -1 for detail and grand total rows.
func (v *View) LevelIndexOf(r *Row) int {
	if r.level >= 1 && r.level <= len(v.levels) {
		return r.level - 1
	}
	return -1
}

func (v *View) IsSumRow(r *Row) bool {
	return r.isSum
}

func (v *View) IsHeaderRow(r *Row) bool {
	return !r.isSum && r.level > 0
}

// AncestorRow returns the row that heads the level-L group containing r:
// the header for levels placed After, the subtotal for levels placed Before.
// L counts like Row.Level, so grouping level i is L = i+1.
func (v *View) AncestorRow(r *Row, level int) (*Row, bool) {
	if level < 1 || level > len(v.levels) || level < r.level {
		return nil, false
	}
	if r.order[level] == ranks.NoGroup {
		return nil, false
	}
	return v.index.get(groupOrder(r.order, level, ranks.FirstInGroup))
}

// AncestorByName is AncestorRow addressed by grouping level name.
func (v *View) AncestorByName(r *Row, name string) (*Row, bool) {
	i := v.set.Index(name)
	if i < 0 {
		return nil, false
	}
	return v.AncestorRow(r, i+1)
}

// AncestorText is the text of AncestorRow, or "".
func (v *View) AncestorText(r *Row, level int) string {
	if a, ok := v.AncestorRow(r, level); ok {
		return a.text
	}
	return ""
}

// ValueAtLevel returns the value of column for r when it applies: any
// column on detail rows, and key columns of the row's own grouping level or
// a coarser one on header and subtotal rows.
func (v *View) ValueAtLevel(r *Row, column string) (values.Value, bool) {
	pos := v.schema.Index(column)
	if pos < 0 {
		return values.Value{}, false
	}
	if r.level == 0 {
		return r.values[pos], true
	}
	for k := r.level - 1; k >= 0 && k < len(v.levels); k++ {
		if v.levels[k].HasKeyColumn(column) {
			return r.values[pos], true
		}
	}
	return values.Value{}, false
}
