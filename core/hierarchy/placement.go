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
	"fmt"

	"github.com/google/grouptotals/core/grouping"
	"github.com/google/grouptotals/core/ranks"
)

// placeSubtotals moves the subtotals of levels placed Before to the front of
// their group. It must run after aggregate.
func placeSubtotals(ix *index, levels []grouping.Level) error {
	var moved []*Row
	ix.ascend(func(r *Row) bool {
		if r.isSum && r.level >= 1 && r.level <= len(levels) &&
			levels[r.level-1].Position == grouping.Before &&
			r.order[r.level-1] == ranks.LastInGroup {
			moved = append(moved, r)
		}
		return true
	})
	for _, r := range moved {
		ix.delete(r)
		r.order[r.level-1] = ranks.FirstInGroup
		if !ix.insertIfAbsent(r) {
			return fmt.Errorf("subtotal %q collides with another row: %w", r.text, ErrInconsistentRank)
		}
	}
	return nil
}

// numberRows assigns 1-based row numbers to detail rows in display order
// and returns all rows in that order.
func numberRows(ix *index) []*Row {
	rows := ix.rows()
	n := 0
	for _, r := range rows {
		if r.level == 0 {
			n++
			r.rowNumber = n
		}
	}
	return rows
}
