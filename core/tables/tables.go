package tables

import (
	"errors"
	"fmt"

	"github.com/google/grouptotals/core/columns"
	"github.com/google/grouptotals/core/values"
)

// ErrFinalized is returned when rows are appended to a finalized table.
var ErrFinalized = errors.New("table is finalized")

// Record gives read access to the cells of one row by column name.
type Record interface {
	Value(column string) (values.Value, bool)
}

type DataTable struct {
	schema    *columns.Schema
	rows      [][]values.Value
	finalized bool
}

func NewDataTable(schema *columns.Schema) *DataTable {
	return &DataTable{
		schema: schema,
	}
}

func (dt *DataTable) Schema() *columns.Schema {
	return dt.schema
}

// AppendRow adds a row. Values are positional and must match the column
// kinds of the schema; Empty is accepted in every column.
func (dt *DataTable) AppendRow(vals ...values.Value) error {
	if dt.finalized {
		return ErrFinalized
	}
	if len(vals) != dt.schema.Len() {
		return fmt.Errorf("row %d has %d values, schema has %d columns", len(dt.rows), len(vals), dt.schema.Len())
	}
	for i, v := range vals {
		def := dt.schema.At(i)
		if !v.IsEmpty() && v.Kind() != def.Kind() {
			return fmt.Errorf("row %d column %q: got %s value, want %s", len(dt.rows), def.Name(), v.Kind(), def.Kind())
		}
	}
	row := make([]values.Value, len(vals))
	copy(row, vals)
	dt.rows = append(dt.rows, row)
	return nil
}

// Finalize makes the table read-only. It is safe to call more than once.
func (dt *DataTable) Finalize() {
	dt.finalized = true
}

func (dt *DataTable) IsFinalized() bool {
	return dt.finalized
}

func (dt *DataTable) Length() int {
	return len(dt.rows)
}

func (dt *DataTable) Row(i int) Row {
	return Row{table: dt, index: i}
}

// Row is a lightweight handle on one row of a DataTable.
type Row struct {
	table *DataTable
	index int
}

func (r Row) Index() int {
	return r.index
}

func (r Row) Value(column string) (values.Value, bool) {
	i := r.table.schema.Index(column)
	if i < 0 {
		return values.Value{}, false
	}
	return r.table.rows[r.index][i], true
}

// At returns the value in schema position i.
func (r Row) At(i int) values.Value {
	return r.table.rows[r.index][i]
}
