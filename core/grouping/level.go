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

// Package grouping describes the levels of a grouping hierarchy. Levels are
// ordered innermost first: level 0 groups detail rows directly and each
// following level groups the groups of the level before it.
package grouping

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/google/grouptotals/core/sortkey"
	"github.com/google/grouptotals/core/tables"
	"github.com/google/grouptotals/core/values"
)

var (
	ErrNoLevels       = errors.New("at least one level is required")
	ErrUnnamedLevel   = errors.New("level has no name")
	ErrDuplicateLevel = errors.New("duplicate level name")
	ErrNoKeyColumns   = errors.New("level has no key columns")
)

// Position says where a level's subtotal row sits relative to its members.
type Position int

const (
	After Position = iota
	Before
)

func (p Position) String() string {
	if p == Before {
		return "before"
	}
	return "after"
}

func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(s) {
	case "", "after":
		return After, nil
	case "before":
		return Before, nil
	}
	return After, fmt.Errorf("unknown subtotal position %q", s)
}

// Strategy produces the caption and the grouping key of a row for one level.
// An empty sort key means the row belongs to no group at that level.
type Strategy interface {
	Caption(row tables.Record, isTotal bool) string
	SortKey(row tables.Record) (string, error)
}

// Level is one grouping dimension.
type Level struct {
	Name       string
	KeyColumns []string
	Position   Position
	// Strategy defaults to a KeyStrategy over KeyColumns when nil.
	Strategy Strategy
}

func (l Level) strategy() Strategy {
	if l.Strategy != nil {
		return l.Strategy
	}
	return KeyStrategy{Columns: l.KeyColumns}
}

func (l Level) Caption(row tables.Record, isTotal bool) string {
	return l.strategy().Caption(row, isTotal)
}

func (l Level) SortKey(row tables.Record) (string, error) {
	key, err := l.strategy().SortKey(row)
	if err != nil {
		return "", fmt.Errorf("level %q: %w", l.Name, err)
	}
	return key, nil
}

// HasKeyColumn reports whether column is one of the level's key columns.
func (l Level) HasKeyColumn(column string) bool {
	for _, c := range l.KeyColumns {
		if c == column {
			return true
		}
	}
	return false
}

// Set is a validated, immutable list of levels.
type Set struct {
	levels []Level
	index  map[string]int
}

// NewSet validates levels and reports every problem found at once.
func NewSet(levels ...Level) (*Set, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	s := &Set{
		levels: make([]Level, len(levels)),
		index:  make(map[string]int, len(levels)),
	}
	var err error
	for i, l := range levels {
		if l.Name == "" {
			err = multierr.Append(err, fmt.Errorf("level %d: %w", i, ErrUnnamedLevel))
		} else if prev, dup := s.index[l.Name]; dup {
			err = multierr.Append(err, fmt.Errorf("levels %d and %d: %w %q", prev, i, ErrDuplicateLevel, l.Name))
		} else {
			s.index[l.Name] = i
		}
		if len(l.KeyColumns) == 0 {
			err = multierr.Append(err, fmt.Errorf("level %q: %w", l.Name, ErrNoKeyColumns))
		}
		l.KeyColumns = append([]string(nil), l.KeyColumns...)
		s.levels[i] = l
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Set) Len() int {
	return len(s.levels)
}

// At returns a copy of level i.
func (s *Set) At(i int) Level {
	l := s.levels[i]
	l.KeyColumns = append([]string(nil), l.KeyColumns...)
	return l
}

// Index returns the position of the named level, or -1.
func (s *Set) Index(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

func (s *Set) Names() []string {
	names := make([]string, len(s.levels))
	for i, l := range s.levels {
		names[i] = l.Name
	}
	return names
}

// KeyStrategy groups by the composite sort key of its columns and captions
// groups with their values.
type KeyStrategy struct {
	Columns []string
}

func (k KeyStrategy) SortKey(row tables.Record) (string, error) {
	return sortkey.EncodeComposite(columnValues(row, k.Columns)...)
}

// Caption joins the column values with " / "; totals are prefixed "Total ".
func (k KeyStrategy) Caption(row tables.Record, isTotal bool) string {
	parts := make([]string, 0, len(k.Columns))
	for _, v := range columnValues(row, k.Columns) {
		parts = append(parts, v.String())
	}
	caption := strings.Join(parts, " / ")
	if isTotal {
		return "Total " + caption
	}
	return caption
}

func columnValues(row tables.Record, cols []string) []values.Value {
	vs := make([]values.Value, len(cols))
	for i, c := range cols {
		vs[i], _ = row.Value(c)
	}
	return vs
}
