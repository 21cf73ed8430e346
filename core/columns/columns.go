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

package columns

import (
	"fmt"

	"github.com/google/grouptotals/core/values"
)

type ColumnDef struct {
	name        string // must not contain any of the following characters: & = : ,
	displayName string
	kind        values.Kind
}

// NewColumnDef creates a new ColumnDef with the given name, display name and value kind
func NewColumnDef(name, displayName string, kind values.Kind) *ColumnDef {
	if displayName == "" {
		displayName = name
	}
	return &ColumnDef{
		name:        name,
		displayName: displayName,
		kind:        kind,
	}
}

func (cd *ColumnDef) Name() string {
	return cd.name
}

func (cd *ColumnDef) DisplayName() string {
	return cd.displayName
}

// Kind is the kind every non-empty value of the column must have.
func (cd *ColumnDef) Kind() values.Kind {
	return cd.kind
}

// Schema is an ordered, fixed list of column definitions.
type Schema struct {
	defs  []*ColumnDef
	index map[string]int
}

// NewSchema builds a schema; column names must be unique and non-empty.
func NewSchema(defs ...*ColumnDef) (*Schema, error) {
	s := &Schema{
		defs:  make([]*ColumnDef, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		if def == nil || def.name == "" {
			return nil, fmt.Errorf("column %d has no name", len(s.defs))
		}
		if _, exists := s.index[def.name]; exists {
			return nil, fmt.Errorf("duplicate column %q", def.name)
		}
		s.index[def.name] = len(s.defs)
		s.defs = append(s.defs, def)
	}
	return s, nil
}

func (s *Schema) Len() int {
	return len(s.defs)
}

func (s *Schema) At(i int) *ColumnDef {
	return s.defs[i]
}

// Index returns the position of the named column, or -1.
func (s *Schema) Index(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

func (s *Schema) Column(name string) (*ColumnDef, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.defs[i], true
}

func (s *Schema) Names() []string {
	names := make([]string, len(s.defs))
	for i, def := range s.defs {
		names[i] = def.name
	}
	return names
}
