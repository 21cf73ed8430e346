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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/google/grouptotals/core/columns"
	"github.com/google/grouptotals/core/grouping"
	"github.com/google/grouptotals/core/tables"
	"github.com/google/grouptotals/core/values"
)

type sale struct {
	region string
	city   string
	amount int64
	cost   string
}

func salesTable(t *testing.T, sales ...sale) *tables.DataTable {
	t.Helper()
	schema, err := columns.NewSchema(
		columns.NewColumnDef("region", "Region", values.KindText),
		columns.NewColumnDef("city", "City", values.KindText),
		columns.NewColumnDef("amount", "Amount", values.KindInteger),
		columns.NewColumnDef("cost", "Cost", values.KindDecimal),
		columns.NewColumnDef("open", "Open", values.KindBoolean),
	)
	require.NoError(t, err)
	table := tables.NewDataTable(schema)
	for _, s := range sales {
		cost := values.Empty()
		if s.cost != "" {
			cost = values.Decimal(decimal.RequireFromString(s.cost))
		}
		require.NoError(t, table.AppendRow(text(s.region), text(s.city), values.Integer(s.amount), cost, values.Boolean(true)))
	}
	return table
}

func text(s string) values.Value {
	if s == "" {
		return values.Empty()
	}
	return values.Text(s)
}

func regionLevel(pos grouping.Position) grouping.Level {
	return grouping.Level{Name: "Region", KeyColumns: []string{"region"}, Position: pos}
}

func cityLevel(pos grouping.Position) grouping.Level {
	return grouping.Level{Name: "City", KeyColumns: []string{"city"}, Position: pos}
}

func build(t *testing.T, table *tables.DataTable, opts Options, levels ...grouping.Level) *View {
	t.Helper()
	set, err := grouping.NewSet(levels...)
	require.NoError(t, err)
	b, err := NewBuilder(table, set, opts)
	require.NoError(t, err)
	view, err := b.Build()
	require.NoError(t, err)
	return view
}

// describe renders each row as a compact line for whole-view assertions:
// D for detail, H for header, S for subtotal, T for grand total.
func describe(v *View) []string {
	lines := make([]string, 0, v.Len())
	for _, r := range v.Rows() {
		amount, _ := r.Value("amount")
		switch {
		case r.IsDetail():
			n, _ := r.RowNumber()
			lines = append(lines, fmt.Sprintf("D#%d %s %s", n, r.Text(), amount))
		case !r.IsSum():
			lines = append(lines, fmt.Sprintf("H%d %s", r.Level(), r.Text()))
		case r.Level() == v.Levels().Len()+1:
			lines = append(lines, fmt.Sprintf("T %s %s", r.Text(), amount))
		default:
			lines = append(lines, fmt.Sprintf("S%d %s %s", r.Level(), r.Text(), amount))
		}
	}
	return lines
}

func amountOf(t *testing.T, r *Row) int64 {
	t.Helper()
	v, ok := r.Value("amount")
	require.True(t, ok)
	i, ok := v.AsInteger()
	require.True(t, ok, "amount of %q is %s", r.Text(), v.Kind())
	return i
}
