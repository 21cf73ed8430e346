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

// Package aggregates provides the accumulator cells used while computing
// subtotals. Sums are kept as exact decimals so that integer and decimal
// columns aggregate without rounding.
package aggregates

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/google/grouptotals/core/values"
)

// ErrIntegerOverflow is returned when an integer column total does not fit
// in an int64.
var ErrIntegerOverflow = errors.New("integer total out of range")

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// Sum accumulates the numeric values of one column.
type Sum struct {
	Count int64           // Number of non-empty values added
	Total decimal.Decimal // Sum of values
}

// Add adds a numeric value. Empty values are ignored; other kinds are an error.
func (s *Sum) Add(v values.Value) error {
	if v.IsEmpty() {
		return nil
	}
	d, ok := v.AsDecimal()
	if !ok {
		return fmt.Errorf("cannot sum %s value %q", v.Kind(), v.String())
	}
	s.Count++
	s.Total = s.Total.Add(d)
	return nil
}

// Combine merges another sum into this one.
func (s *Sum) Combine(other Sum) {
	s.Count += other.Count
	s.Total = s.Total.Add(other.Total)
}

func (s *Sum) Reset() {
	*s = Sum{}
}

// Value returns the total as a value of the requested column kind.
// Integer columns get the integer part of the total, or ErrIntegerOverflow
// when it leaves the int64 range.
func (s *Sum) Value(kind values.Kind) (values.Value, error) {
	if kind == values.KindInteger {
		if s.Total.LessThan(minInt64) || s.Total.GreaterThan(maxInt64) {
			return values.Value{}, fmt.Errorf("%w: %s", ErrIntegerOverflow, s.Total)
		}
		return values.Integer(s.Total.IntPart()), nil
	}
	return values.Decimal(s.Total), nil
}

// Matrix is a levels x columns grid of sums.
type Matrix [][]Sum

func NewMatrix(levels, cols int) Matrix {
	m := make(Matrix, levels)
	for i := range m {
		m[i] = make([]Sum, cols)
	}
	return m
}

// ResetThrough resets rows 0..level inclusive and leaves coarser rows alone.
func (m Matrix) ResetThrough(level int) {
	for k := 0; k <= level && k < len(m); k++ {
		for c := range m[k] {
			m[k][c].Reset()
		}
	}
}
