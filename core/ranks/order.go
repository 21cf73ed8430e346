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

package ranks

// An order vector holds one rank per position. Position 0 is the finest;
// vectors compare from the last (coarsest) position down to position 0.

// Compare returns -1, 0 or 1. Vectors of different lengths compare by their
// common positions aligned at the coarse end, then shorter first.
func Compare(a, b []int) int {
	i, j := len(a)-1, len(b)-1
	for i >= 0 && j >= 0 {
		if a[i] != b[j] {
			if a[i] < b[j] {
				return -1
			}
			return 1
		}
		i--
		j--
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Filled returns an order vector of n positions all set to rank.
func Filled(n, rank int) []int {
	o := make([]int, n)
	for i := range o {
		o[i] = rank
	}
	return o
}
