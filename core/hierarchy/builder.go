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

// Package hierarchy materializes a grouped view of a source table: detail
// rows interleaved with group headers, subtotals and grand totals, computed
// with a single control-break pass over the sorted rows.
//
// Every row carries an order vector with one position per internal level.
// Position 0 ranks the detail rows themselves and position i (1..N) holds
// the rank of grouping level i-1. A group row at level L has real ranks at
// positions L..N, a sentinel at position L-1 (FirstInGroup for headers,
// LastInGroup for subtotals) and LastInGroup below that. Grand totals are
// level N+1 with LastInGroup everywhere.
package hierarchy

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/google/grouptotals/core/grouping"
	"github.com/google/grouptotals/core/ranks"
	"github.com/google/grouptotals/core/sortkey"
	"github.com/google/grouptotals/core/tables"
	"github.com/google/grouptotals/core/values"
)

const DefaultGrandTotalCaption = "Grand Total"

// Options configures a build.
type Options struct {
	// SumColumns are Integer or Decimal columns totalled on subtotal rows.
	SumColumns []string
	// DetailKeyColumns order detail rows inside their innermost group.
	// Ties, and all rows when empty, keep source order.
	DetailKeyColumns []string
	// HideExtraSumRows removes subtotals that cover a single child unit.
	HideExtraSumRows bool
	// TotalRowCount is the number of grand total rows. The zero value
	// selects the default of one row; negative counts are rejected with
	// ErrInvalidTotalRowCount.
	TotalRowCount int
	// GrandTotalCaption defaults to DefaultGrandTotalCaption.
	GrandTotalCaption string
	Logger            *zap.Logger
}

// Builder builds one View. It cannot be reused.
type Builder struct {
	table     *tables.DataTable
	levels    []grouping.Level
	set       *grouping.Set
	opts      Options
	sumIdx    []int
	sumKinds  []values.Kind
	keyIdx    [][]int
	detailIdx []int
	logger    *zap.Logger
	used      bool
}

// NewBuilder validates the configuration against the table schema and
// finalizes the table. All configuration problems are returned together.
func NewBuilder(table *tables.DataTable, set *grouping.Set, opts Options) (*Builder, error) {
	if table == nil {
		return nil, ErrNoTable
	}
	if set == nil {
		return nil, grouping.ErrNoLevels
	}
	b := &Builder{
		table:  table,
		set:    set,
		levels: make([]grouping.Level, set.Len()),
		opts:   opts,
		keyIdx: make([][]int, set.Len()),
		logger: opts.Logger,
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}
	if b.opts.TotalRowCount == 0 {
		b.opts.TotalRowCount = 1
	}
	if b.opts.GrandTotalCaption == "" {
		b.opts.GrandTotalCaption = DefaultGrandTotalCaption
	}
	b.opts.SumColumns = append([]string(nil), opts.SumColumns...)
	b.opts.DetailKeyColumns = append([]string(nil), opts.DetailKeyColumns...)

	var err error
	if b.opts.TotalRowCount < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrInvalidTotalRowCount, opts.TotalRowCount))
	}
	schema := table.Schema()
	for i := range b.levels {
		l := set.At(i)
		b.levels[i] = l
		for _, col := range l.KeyColumns {
			pos := schema.Index(col)
			if pos < 0 {
				err = multierr.Append(err, fmt.Errorf("level %q key: %w %q", l.Name, ErrUnknownColumn, col))
				continue
			}
			b.keyIdx[i] = append(b.keyIdx[i], pos)
		}
	}
	for _, col := range b.opts.DetailKeyColumns {
		pos := schema.Index(col)
		if pos < 0 {
			err = multierr.Append(err, fmt.Errorf("detail key: %w %q", ErrUnknownColumn, col))
			continue
		}
		b.detailIdx = append(b.detailIdx, pos)
	}
	for _, col := range b.opts.SumColumns {
		def, ok := schema.Column(col)
		if !ok {
			err = multierr.Append(err, fmt.Errorf("sum: %w %q", ErrUnknownColumn, col))
			continue
		}
		if !def.Kind().IsNumeric() {
			err = multierr.Append(err, fmt.Errorf("%w: %q is %s", ErrNonNumericColumn, col, def.Kind()))
			continue
		}
		b.sumIdx = append(b.sumIdx, schema.Index(col))
		b.sumKinds = append(b.sumKinds, def.Kind())
	}
	if err != nil {
		return nil, err
	}
	table.Finalize()
	return b, nil
}

// Build runs the whole pipeline and returns the frozen view.
func (b *Builder) Build() (*View, error) {
	if b.used {
		return nil, ErrBuilderUsed
	}
	b.used = true

	rankTables, err := b.buildRankTables()
	if err != nil {
		return nil, err
	}
	ix := newIndex()
	details, err := b.addDetailRows(ix, rankTables)
	if err != nil {
		return nil, err
	}
	headers, subtotals := b.addGroupRows(ix, details)
	b.addTotalRows(ix)
	b.logger.Debug("rows synthesized",
		zap.Int("details", len(details)),
		zap.Int("headers", headers),
		zap.Int("subtotals", subtotals),
		zap.Int("totals", b.opts.TotalRowCount))

	if err := aggregate(ix, len(b.levels), b.sumIdx, b.sumKinds); err != nil {
		return nil, err
	}
	if b.opts.HideExtraSumRows {
		hidden := suppressExtraSumRows(ix, len(b.levels))
		b.logger.Debug("redundant subtotals hidden", zap.Int("rows", hidden))
	}
	if err := placeSubtotals(ix, b.levels); err != nil {
		return nil, err
	}
	rows := numberRows(ix)
	return newView(b.table.Schema(), b.set, b.levels, b.opts.SumColumns, ix, rows), nil
}

// buildRankTables returns the detail rank table followed by one per level.
func (b *Builder) buildRankTables() ([]*ranks.Table, error) {
	rts := make([]*ranks.Table, len(b.levels)+1)
	var err error
	rts[0], err = ranks.Build(b.table, "detail", b.detailKey)
	if err != nil {
		return nil, err
	}
	for i, l := range b.levels {
		l := l
		rts[i+1], err = ranks.Build(b.table, l.Name, func(row tables.Row) (string, error) {
			return l.SortKey(row)
		})
		if err != nil {
			return nil, err
		}
		b.logger.Debug("rank table built", zap.String("level", l.Name), zap.Int("groups", rts[i+1].Len()))
	}
	return rts, nil
}

// detailKey makes every detail row unique: the optional detail key columns
// followed by the source position.
func (b *Builder) detailKey(row tables.Row) (string, error) {
	pos := sortkey.EncodeInt(int64(row.Index()))
	if len(b.detailIdx) == 0 {
		return pos, nil
	}
	vs := make([]values.Value, len(b.detailIdx))
	for i, col := range b.detailIdx {
		vs[i] = row.At(col)
	}
	key, err := sortkey.EncodeComposite(vs...)
	if err != nil {
		return "", fmt.Errorf("detail key: %w", err)
	}
	return key + sortkey.Separator + pos, nil
}

func (b *Builder) addDetailRows(ix *index, rts []*ranks.Table) ([]*Row, error) {
	schema := b.table.Schema()
	details := make([]*Row, b.table.Length())
	for i := range details {
		src := b.table.Row(i)
		order := make([]int, len(rts))
		for p, rt := range rts {
			order[p] = rt.RankAt(i)
		}
		vals := make([]values.Value, schema.Len())
		for c := range vals {
			vals[c] = src.At(c)
		}
		r := &Row{
			text:   b.levels[0].Caption(src, false),
			order:  order,
			source: i,
			schema: schema,
			values: vals,
		}
		if !ix.insertIfAbsent(r) {
			return nil, fmt.Errorf("detail row %d: %w", i, ErrInconsistentRank)
		}
		details[i] = r
	}
	return details, nil
}

// addGroupRows synthesizes at most one header and one subtotal per group.
// Rows without a group at a level get neither for that level.
func (b *Builder) addGroupRows(ix *index, details []*Row) (headers, subtotals int) {
	for _, d := range details {
		src := b.table.Row(d.source)
		for k, l := range b.levels {
			level := k + 1
			if d.order[level] == ranks.NoGroup {
				continue
			}
			if l.Position == grouping.After {
				order := groupOrder(d.order, level, ranks.FirstInGroup)
				if !ix.has(order) {
					ix.insertIfAbsent(b.groupRow(src, level, order, false, l.Caption(src, false)))
					headers++
				}
			}
			order := groupOrder(d.order, level, ranks.LastInGroup)
			if !ix.has(order) {
				ix.insertIfAbsent(b.groupRow(src, level, order, true, l.Caption(src, l.Position == grouping.After)))
				subtotals++
			}
		}
	}
	return headers, subtotals
}

// groupOrder derives the order vector of the level-L group containing a
// row with order src: real ranks at L.., own at L-1, LastInGroup below.
func groupOrder(src []int, level, own int) []int {
	order := make([]int, len(src))
	for p := range order {
		switch {
		case p >= level:
			order[p] = src[p]
		case p == level-1:
			order[p] = own
		default:
			order[p] = ranks.LastInGroup
		}
	}
	return order
}

// groupRow copies the key columns of the row's own grouping level and all
// coarser levels from the triggering source row.
func (b *Builder) groupRow(src tables.Row, level int, order []int, isSum bool, text string) *Row {
	schema := b.table.Schema()
	vals := make([]values.Value, schema.Len())
	for k := level - 1; k < len(b.levels); k++ {
		for _, c := range b.keyIdx[k] {
			vals[c] = src.At(c)
		}
	}
	return &Row{
		level:  level,
		isSum:  isSum,
		text:   text,
		order:  order,
		source: -1,
		schema: schema,
		values: vals,
	}
}

func (b *Builder) addTotalRows(ix *index) {
	schema := b.table.Schema()
	for i := 0; i < b.opts.TotalRowCount; i++ {
		text := ""
		if i == 0 {
			text = b.opts.GrandTotalCaption
		}
		ix.insertIfAbsent(&Row{
			level:  len(b.levels) + 1,
			isSum:  true,
			text:   text,
			order:  ranks.Filled(len(b.levels)+1, ranks.LastInGroup),
			seq:    i,
			source: -1,
			schema: schema,
			values: make([]values.Value, schema.Len()),
		})
	}
}
