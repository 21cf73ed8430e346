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

package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"

	"github.com/google/grouptotals/core/columns"
	"github.com/google/grouptotals/core/tables"
	"github.com/google/grouptotals/core/values"
)

// CsvColumnType specifies the data type for a column
type CsvColumnType int

const (
	// CsvColumnTypeAuto auto-detects type from data (default)
	CsvColumnTypeAuto CsvColumnType = iota
	// CsvColumnTypeText forces text
	CsvColumnTypeText
	// CsvColumnTypeInteger forces int64
	CsvColumnTypeInteger
	// CsvColumnTypeDecimal forces exact decimals
	CsvColumnTypeDecimal
	// CsvColumnTypeDate forces dates, parsed with dateparse
	CsvColumnTypeDate
	// CsvColumnTypeBool forces booleans
	CsvColumnTypeBool
)

func (t CsvColumnType) kind() values.Kind {
	switch t {
	case CsvColumnTypeInteger:
		return values.KindInteger
	case CsvColumnTypeDecimal:
		return values.KindDecimal
	case CsvColumnTypeDate:
		return values.KindDate
	case CsvColumnTypeBool:
		return values.KindBoolean
	}
	return values.KindText
}

// ParseColumnType maps a type name ("text", "integer", "decimal", "date",
// "bool" or "auto") to a CsvColumnType.
func ParseColumnType(s string) (CsvColumnType, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return CsvColumnTypeAuto, nil
	case "text", "string":
		return CsvColumnTypeText, nil
	case "integer", "int":
		return CsvColumnTypeInteger, nil
	case "decimal", "number":
		return CsvColumnTypeDecimal, nil
	case "date", "datetime":
		return CsvColumnTypeDate, nil
	case "bool", "boolean":
		return CsvColumnTypeBool, nil
	}
	return CsvColumnTypeAuto, fmt.Errorf("unknown column type %q", s)
}

// CsvColumnSource defines source metadata for how a column is imported
type CsvColumnSource struct {
	// Name is the column name (defaults to header name if not specified)
	Name string
	// DisplayName is the display name for the column
	DisplayName string
	// Type specifies the data type for this column (default: auto-detect)
	Type CsvColumnType
}

// ImportOptions configures CSV import behavior
type ImportOptions struct {
	// HasHeader indicates whether the first row contains column headers
	HasHeader bool
	// Delimiter is the field delimiter (defaults to comma)
	Delimiter rune
	// ColumnSources provides configuration for specific columns by header name
	ColumnSources map[string]CsvColumnSource
	// SampleSize is the number of rows to sample for type detection (default: 100)
	SampleSize int
	// Location is used for dates without a zone (default: UTC)
	Location *time.Location
}

// DefaultOptions returns default import options
func DefaultOptions() ImportOptions {
	return ImportOptions{
		HasHeader:     true,
		Delimiter:     ',',
		ColumnSources: make(map[string]CsvColumnSource),
		SampleSize:    100,
		Location:      time.UTC,
	}
}

// ImportFromFile imports a CSV file and returns a DataTable
func ImportFromFile(filepath string, options ImportOptions) (*tables.DataTable, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ImportFromReader(file, options)
}

// ImportFromReader imports CSV data from an io.Reader and returns a DataTable.
// Empty cells become Empty values; a cell that does not parse as its
// column's type is an error.
func ImportFromReader(reader io.Reader, options ImportOptions) (*tables.DataTable, error) {
	csvReader := csv.NewReader(reader)
	if options.Delimiter != 0 {
		csvReader.Comma = options.Delimiter
	}
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	var headers []string
	var dataRows [][]string
	if options.HasHeader {
		headers = records[0]
		dataRows = records[1:]
	} else {
		// Generate column names if no header
		headers = make([]string, len(records[0]))
		for i := range headers {
			headers[i] = fmt.Sprintf("column_%d", i+1)
		}
		dataRows = records
	}

	loc := options.Location
	if loc == nil {
		loc = time.UTC
	}
	sampleSize := options.SampleSize
	if sampleSize <= 0 {
		sampleSize = 100
	}
	kinds := detectColumnKinds(headers, dataRows, sampleSize, options.ColumnSources, loc)

	defs := make([]*columns.ColumnDef, len(headers))
	for i, header := range headers {
		config := getColumnSource(header, options.ColumnSources)
		name := strings.TrimSpace(header)
		if config.Name != "" {
			name = config.Name
		}
		defs[i] = columns.NewColumnDef(name, config.DisplayName, kinds[i])
	}
	schema, err := columns.NewSchema(defs...)
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header: %w", err)
	}

	table := tables.NewDataTable(schema)
	for r, row := range dataRows {
		vals := make([]values.Value, len(headers))
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}
			v, err := parseCell(cell, kinds[i], loc)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", r+1, defs[i].Name(), err)
			}
			vals[i] = v
		}
		if err := table.AppendRow(vals...); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func parseCell(cell string, kind values.Kind, loc *time.Location) (values.Value, error) {
	if cell == "" {
		return values.Empty(), nil
	}
	switch kind {
	case values.KindInteger:
		n, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return values.Value{}, err
		}
		return values.Integer(n), nil
	case values.KindDecimal:
		d, err := decimal.NewFromString(cell)
		if err != nil {
			return values.Value{}, err
		}
		return values.Decimal(d), nil
	case values.KindDate:
		t, err := dateparse.ParseIn(cell, loc)
		if err != nil {
			return values.Value{}, err
		}
		return values.Date(t), nil
	case values.KindBoolean:
		b, ok := parseBool(cell)
		if !ok {
			return values.Value{}, fmt.Errorf("invalid boolean %q", cell)
		}
		return values.Boolean(b), nil
	}
	return values.Text(cell), nil
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "yes":
		return true, true
	case "false", "no":
		return false, true
	}
	return false, false
}

// detectColumnKinds samples data to pick the narrowest kind every non-empty
// sampled value parses as: integer, decimal, boolean, date, then text.
func detectColumnKinds(headers []string, dataRows [][]string, sampleSize int, configs map[string]CsvColumnSource, loc *time.Location) []values.Kind {
	kinds := make([]values.Kind, len(headers))

	rowsToSample := sampleSize
	if rowsToSample > len(dataRows) {
		rowsToSample = len(dataRows)
	}

	candidates := []values.Kind{values.KindInteger, values.KindDecimal, values.KindBoolean, values.KindDate}
	for i, header := range headers {
		if config, ok := configs[header]; ok && config.Type != CsvColumnTypeAuto {
			kinds[i] = config.Type.kind()
			continue
		}

		kinds[i] = values.KindText
		for _, kind := range candidates {
			matches, hasNonEmpty := true, false
			for j := 0; j < rowsToSample; j++ {
				if i >= len(dataRows[j]) {
					continue
				}
				value := strings.TrimSpace(dataRows[j][i])
				if value == "" {
					continue
				}
				hasNonEmpty = true
				if _, err := parseCell(value, kind, loc); err != nil {
					matches = false
					break
				}
			}
			if matches && hasNonEmpty {
				kinds[i] = kind
				break
			}
		}
	}
	return kinds
}

// getColumnSource returns the config for a column, or an empty config if not specified
func getColumnSource(header string, configs map[string]CsvColumnSource) CsvColumnSource {
	if configs == nil {
		return CsvColumnSource{}
	}
	if config, ok := configs[header]; ok {
		return config
	}
	return CsvColumnSource{}
}
