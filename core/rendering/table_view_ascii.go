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

package rendering

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/grouptotals/core/hierarchy"
)

// Grid is the flattened, display-ready form of a view: one line per row,
// first the row number, then the indented caption, then value columns.
type Grid struct {
	Headers []string
	Lines   []GridLine
}

type GridLine struct {
	Kind   string // detail, header, subtotal or total
	Level  int
	Indent int
	Cells  []string
}

// NewGrid flattens v. The sum columns of the view are always shown after
// the caption; extraColumns are shown before them.
func NewGrid(v *hierarchy.View, extraColumns ...string) Grid {
	valueCols := append(append([]string(nil), extraColumns...), v.SumColumns()...)
	g := Grid{Headers: []string{"#", "Group"}}
	for _, col := range valueCols {
		name := col
		if def, ok := v.Schema().Column(col); ok {
			name = def.DisplayName()
		}
		g.Headers = append(g.Headers, name)
	}

	totalLevel := v.Levels().Len() + 1
	for _, r := range v.Rows() {
		line := GridLine{
			Kind:   rowKind(v, r, totalLevel),
			Level:  r.Level(),
			Indent: totalLevel - r.Level(),
		}
		number := ""
		if n, ok := r.RowNumber(); ok {
			number = strconv.Itoa(n)
		}
		line.Cells = append(line.Cells, number, r.Text())
		for _, col := range valueCols {
			val, _ := r.Value(col)
			line.Cells = append(line.Cells, val.String())
		}
		g.Lines = append(g.Lines, line)
	}
	return g
}

func rowKind(v *hierarchy.View, r *hierarchy.Row, totalLevel int) string {
	switch {
	case r.IsDetail():
		return "detail"
	case v.IsHeaderRow(r):
		return "header"
	case r.Level() == totalLevel:
		return "total"
	}
	return "subtotal"
}

// ToAscii returns a string representation of the view with ASCII borders.
// Captions are indented two spaces per level below the grand total.
func ToAscii(v *hierarchy.View, extraColumns ...string) string {
	g := NewGrid(v, extraColumns...)

	cells := func(l GridLine) []string {
		out := append([]string(nil), l.Cells...)
		out[1] = strings.Repeat("  ", l.Indent) + out[1]
		return out
	}
	colWidths := make([]int, len(g.Headers))
	for i, h := range g.Headers {
		colWidths[i] = len(h)
	}
	for _, l := range g.Lines {
		for i, c := range cells(l) {
			if len(c) > colWidths[i] {
				colWidths[i] = len(c)
			}
		}
	}

	var sb strings.Builder
	border := func() {
		for _, w := range colWidths {
			sb.WriteString("+")
			sb.WriteString(strings.Repeat("-", w+2))
		}
		sb.WriteString("+\n")
	}
	write := func(row []string, numericFrom int) {
		for i, c := range row {
			if i == 0 || i >= numericFrom {
				sb.WriteString(fmt.Sprintf("| %*s ", colWidths[i], c))
			} else {
				sb.WriteString(fmt.Sprintf("| %-*s ", colWidths[i], c))
			}
		}
		sb.WriteString("|\n")
	}

	border()
	write(g.Headers, len(g.Headers))
	border()
	for _, l := range g.Lines {
		write(cells(l), 2)
	}
	border()
	return sb.String()
}
