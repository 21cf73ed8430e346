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

// Package config reads the description of a grouped view (its levels and
// build options) from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/google/grouptotals/core/csvimport"
	"github.com/google/grouptotals/core/grouping"
	"github.com/google/grouptotals/core/hierarchy"
)

// Level is the YAML form of grouping.Level.
type Level struct {
	Name         string   `yaml:"name"`
	Keys         []string `yaml:"keys"`
	Subtotal     string   `yaml:"subtotal,omitempty"`
	Caption      string   `yaml:"caption,omitempty"`
	TotalCaption string   `yaml:"total_caption,omitempty"`
}

// Column overrides how a CSV column is imported.
type Column struct {
	Name        string `yaml:"name,omitempty"`
	DisplayName string `yaml:"display_name,omitempty"`
	Type        string `yaml:"type,omitempty"`
}

type Config struct {
	// Levels are listed innermost first.
	Levels            []Level           `yaml:"levels"`
	Sum               []string          `yaml:"sum,omitempty"`
	DetailKeys        []string          `yaml:"detail_keys,omitempty"`
	HideExtraSumRows  bool              `yaml:"hide_extra_sum_rows,omitempty"`
	TotalRows         int               `yaml:"total_rows,omitempty"`
	GrandTotalCaption string            `yaml:"grand_total_caption,omitempty"`
	Columns           map[string]Column `yaml:"columns,omitempty"`
}

// Load parses a configuration. Unknown fields are rejected.
func Load(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Config
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty configuration")
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &c, nil
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	return Load(bytes.NewReader(data))
}

// LevelSet converts the configured levels into a validated grouping.Set.
func (c *Config) LevelSet() (*grouping.Set, error) {
	levels := make([]grouping.Level, 0, len(c.Levels))
	var err error
	for _, l := range c.Levels {
		pos, perr := grouping.ParsePosition(l.Subtotal)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("level %q: %w", l.Name, perr))
			continue
		}
		level := grouping.Level{
			Name:       l.Name,
			KeyColumns: l.Keys,
			Position:   pos,
		}
		if l.Caption != "" || l.TotalCaption != "" {
			level.Strategy = grouping.TemplateStrategy{
				KeyStrategy: grouping.KeyStrategy{Columns: l.Keys},
				Group:       l.Caption,
				Total:       l.TotalCaption,
			}
		}
		levels = append(levels, level)
	}
	if err != nil {
		return nil, err
	}
	return grouping.NewSet(levels...)
}

// Options returns the build options; the logger is left to the caller.
func (c *Config) Options() hierarchy.Options {
	return hierarchy.Options{
		SumColumns:        c.Sum,
		DetailKeyColumns:  c.DetailKeys,
		HideExtraSumRows:  c.HideExtraSumRows,
		TotalRowCount:     c.TotalRows,
		GrandTotalCaption: c.GrandTotalCaption,
	}
}

// ImportOptions returns CSV import options with the configured column
// overrides applied on top of csvimport.DefaultOptions.
func (c *Config) ImportOptions() (csvimport.ImportOptions, error) {
	opts := csvimport.DefaultOptions()
	var err error
	for header, col := range c.Columns {
		typ, terr := csvimport.ParseColumnType(col.Type)
		if terr != nil {
			err = multierr.Append(err, fmt.Errorf("column %q: %w", header, terr))
			continue
		}
		opts.ColumnSources[header] = csvimport.CsvColumnSource{
			Name:        col.Name,
			DisplayName: col.DisplayName,
			Type:        typ,
		}
	}
	return opts, err
}
