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
	"errors"

	"github.com/google/grouptotals/core/aggregates"
	"github.com/google/grouptotals/core/ranks"
)

var (
	ErrUnknownColumn        = errors.New("unknown column")
	ErrNonNumericColumn     = errors.New("sum column is not numeric")
	ErrInvalidTotalRowCount = errors.New("total row count must be at least 1, or 0 for the default")
	ErrNoTable              = errors.New("no source table")
	ErrBuilderUsed          = errors.New("builder has already been used")
	ErrIntegerOverflow      = aggregates.ErrIntegerOverflow
	// ErrInconsistentRank is an internal invariant violation.
	ErrInconsistentRank = ranks.ErrInconsistentRank
)
