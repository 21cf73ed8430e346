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
	"github.com/google/grouptotals/core/values"
)

// Row is one row of a View: a copy of a source row (level 0), a group header
// or subtotal (levels 1..N), or a grand total (level N+1).
type Row struct {
	level     int
	isSum     bool
	text      string
	rowNumber int
	order     []int
	seq       int
	hidden    bool
	source    int
	schema    *columns.Schema
	values    []values.Value
}

func (r *Row) Level() int {
	return r.level
}

func (r *Row) IsSum() bool {
	return r.isSum
}

func (r *Row) IsDetail() bool {
	return r.level == 0
}

func (r *Row) Text() string {
	return r.text
}

// RowNumber is the 1-based position of a detail row among all detail rows.
func (r *Row) RowNumber() (int, bool) {
	return r.rowNumber, r.level == 0
}

// SourceIndex is the index of the originating source row for detail rows.
func (r *Row) SourceIndex() (int, bool) {
	return r.source, r.level == 0
}

// Hidden is always false for rows reachable from a View.
func (r *Row) Hidden() bool {
	return r.hidden
}

// Order returns a copy of the row's order vector, for diagnostics.
func (r *Row) Order() []int {
	return append([]int(nil), r.order...)
}

// Value returns the cell of the named source column. Synthetic rows only
// carry key columns and sum columns; other cells are Empty.
func (r *Row) Value(column string) (values.Value, bool) {
	i := r.schema.Index(column)
	if i < 0 {
		return values.Value{}, false
	}
	return r.values[i], true
}

// At returns the cell in schema position i.
func (r *Row) At(i int) values.Value {
	return r.values[i]
}
