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

import "github.com/google/grouptotals/core/ranks"

// suppressExtraSumRows removes subtotals whose group holds exactly one child
// unit. Detail rows and header rows count as units of their own level when
// they belong to a group one level up; a level placed Before has no header,
// so it never counts toward its parent. A subtotal at level L clears the
// counters of every finer level. Grand totals are never removed. It returns
// the number of removed rows.
func suppressExtraSumRows(ix *index, levels int) int {
	counters := make([]int, levels+2)
	var hidden []*Row
	ix.ascend(func(r *Row) bool {
		if !r.isSum {
			if r.level == levels || r.order[r.level+1] != ranks.NoGroup {
				counters[r.level]++
			}
			return true
		}
		if counters[r.level-1] == 1 && r.level < levels+1 {
			r.hidden = true
			hidden = append(hidden, r)
		}
		for k := 0; k < r.level; k++ {
			counters[k] = 0
		}
		return true
	})
	for _, r := range hidden {
		ix.delete(r)
	}
	return len(hidden)
}
