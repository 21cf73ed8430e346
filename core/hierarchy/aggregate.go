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

	"github.com/google/grouptotals/core/aggregates"
	"github.com/google/grouptotals/core/ranks"
	"github.com/google/grouptotals/core/values"
)

// aggregate fills the sum columns of every subtotal and the first grand
// total in one pass. acc[k] accumulates detail values since the last sum
// row at level k or above; a sum row at level L reads acc[L] and resets
// acc[0..L]. Subtotals must still trail their members when this runs.
func aggregate(ix *index, levels int, sumIdx []int, kinds []values.Kind) error {
	acc := aggregates.NewMatrix(levels+2, len(sumIdx))
	var err error
	ix.ascend(func(r *Row) bool {
		switch {
		case r.level == 0:
			for c, col := range sumIdx {
				for k := range acc {
					if k >= 1 && k <= levels && r.order[k] == ranks.NoGroup {
						continue
					}
					if err = acc[k][c].Add(r.values[col]); err != nil {
						err = fmt.Errorf("detail row %d: %w", r.source, err)
						return false
					}
				}
			}
		case r.isSum:
			if r.seq > 0 {
				// extra grand total rows stay blank
				return true
			}
			for c, col := range sumIdx {
				var v values.Value
				if v, err = acc[r.level][c].Value(kinds[c]); err != nil {
					err = fmt.Errorf("subtotal %q: %w", r.text, err)
					return false
				}
				r.values[col] = v
			}
			acc.ResetThrough(r.level)
		}
		return true
	})
	return err
}
