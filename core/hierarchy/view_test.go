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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/grouptotals/core/grouping"
)

func TestAncestorRoundTrip(t *testing.T) {
	for _, pos := range []grouping.Position{grouping.After, grouping.Before} {
		view := build(t, salesTable(t, citySales...), Options{SumColumns: []string{"amount"}},
			cityLevel(pos), regionLevel(pos))
		for _, d := range view.Rows() {
			if !d.IsDetail() {
				continue
			}
			for i := 0; i < view.Levels().Len(); i++ {
				level := view.Levels().At(i)
				anc, ok := view.AncestorRow(d, i+1)
				require.True(t, ok, "%s level %d", d.Text(), i+1)
				assert.Equal(t, level.Caption(d, false), anc.Text())
				assert.Equal(t, level.Name, view.LevelNameOf(anc))
				assert.Equal(t, i, view.LevelIndexOf(anc))
				for k := i; k < view.Levels().Len(); k++ {
					for _, col := range view.Levels().At(k).KeyColumns {
						got, ok := view.ValueAtLevel(anc, col)
						require.True(t, ok)
						want, _ := view.ValueAtLevel(d, col)
						assert.True(t, want.Equal(got), "%s.%s", anc.Text(), col)
					}
				}
				byName, ok := view.AncestorByName(d, level.Name)
				require.True(t, ok)
				assert.Same(t, anc, byName)
			}
		}
	}
}

func TestAncestorRowLimits(t *testing.T) {
	view := build(t, salesTable(t, citySales...), Options{}, cityLevel(grouping.After), regionLevel(grouping.After))
	var detail, citySum *Row
	for _, r := range view.Rows() {
		if detail == nil && r.IsDetail() {
			detail = r
		}
		if citySum == nil && r.IsSum() && r.Level() == 1 {
			citySum = r
		}
	}
	require.NotNil(t, detail)
	require.NotNil(t, citySum)

	_, ok := view.AncestorRow(detail, 0)
	assert.False(t, ok)
	_, ok = view.AncestorRow(detail, 3)
	assert.False(t, ok)
	_, ok = view.AncestorByName(detail, "Country")
	assert.False(t, ok)
	assert.Equal(t, "", view.AncestorText(detail, 3))

	// a subtotal resolves its own header and its parent's header
	own, ok := view.AncestorRow(citySum, 1)
	require.True(t, ok)
	assert.True(t, view.IsHeaderRow(own))
	assert.Equal(t, "Bergen", own.Text())
	assert.Equal(t, "North", view.AncestorText(citySum, 2))

	total := view.TotalRows()[0]
	_, ok = view.AncestorRow(total, 2)
	assert.False(t, ok)
}

func TestRowClassification(t *testing.T) {
	view := build(t, salesTable(t, citySales...), Options{}, cityLevel(grouping.After), regionLevel(grouping.Before))
	for _, r := range view.Rows() {
		switch {
		case r.IsDetail():
			assert.False(t, view.IsSumRow(r))
			assert.False(t, view.IsHeaderRow(r))
			assert.Equal(t, "", view.LevelNameOf(r))
			assert.Equal(t, -1, view.LevelIndexOf(r))
		case r.Level() == 3:
			assert.True(t, view.IsSumRow(r))
			assert.Equal(t, "", view.LevelNameOf(r))
			assert.Equal(t, -1, view.LevelIndexOf(r))
		case r.Level() == 2:
			// Region is placed Before: only subtotals, no headers
			assert.True(t, view.IsSumRow(r))
			assert.Equal(t, "Region", view.LevelNameOf(r))
		default:
			assert.Equal(t, "City", view.LevelNameOf(r))
		}
	}
}

func TestValueAtLevel(t *testing.T) {
	view := build(t, salesTable(t, citySales...), Options{SumColumns: []string{"amount"}},
		cityLevel(grouping.After), regionLevel(grouping.After))
	var detail, cityHeader, regionHeader *Row
	for _, r := range view.Rows() {
		switch {
		case detail == nil && r.IsDetail():
			detail = r
		case cityHeader == nil && view.IsHeaderRow(r) && r.Level() == 1:
			cityHeader = r
		case regionHeader == nil && view.IsHeaderRow(r) && r.Level() == 2:
			regionHeader = r
		}
	}

	v, ok := view.ValueAtLevel(detail, "cost")
	require.True(t, ok)
	assert.Equal(t, "0.4", v.String())

	v, ok = view.ValueAtLevel(cityHeader, "city")
	require.True(t, ok)
	assert.Equal(t, "Bergen", v.String())
	v, ok = view.ValueAtLevel(cityHeader, "region")
	require.True(t, ok)
	assert.Equal(t, "North", v.String())
	_, ok = view.ValueAtLevel(cityHeader, "cost")
	assert.False(t, ok)

	_, ok = view.ValueAtLevel(regionHeader, "city")
	assert.False(t, ok)
	_, ok = view.ValueAtLevel(view.TotalRows()[0], "region")
	assert.False(t, ok)
	_, ok = view.ValueAtLevel(detail, "missing")
	assert.False(t, ok)
}

func TestLookupAndOrderCopies(t *testing.T) {
	view := build(t, salesTable(t, regionSales...), Options{}, regionLevel(grouping.After))
	r := view.Row(1)
	order := r.Order()
	found, ok := view.Lookup(order)
	require.True(t, ok)
	assert.Same(t, r, found)

	order[0] = 12345
	assert.NotEqual(t, order, r.Order())
	_, ok = view.Lookup([]int{1})
	assert.False(t, ok)

	rows := view.Rows()
	rows[0] = nil
	assert.NotNil(t, view.Row(0))
	cols := view.SumColumns()
	assert.Empty(t, cols)
}

func TestConcurrentReads(t *testing.T) {
	view := build(t, salesTable(t, citySales...), Options{SumColumns: []string{"amount"}},
		cityLevel(grouping.After), regionLevel(grouping.After))
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, r := range view.Rows() {
				if r.IsDetail() {
					view.AncestorText(r, 2)
					view.ValueAtLevel(r, "region")
				}
			}
		}()
	}
	wg.Wait()
}
