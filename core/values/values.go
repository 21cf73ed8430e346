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

// Package values defines the typed cell values held by source tables and
// derived hierarchy rows.
package values

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies which member of the Value union is populated.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindInteger
	KindDecimal
	KindDate
	KindBoolean
)

// DateLayout is used when rendering Date values as text.
const DateLayout = "2006-01-02"

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindDate:
		return "date"
	case KindBoolean:
		return "boolean"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a kind name as printed by String back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "empty":
		return KindEmpty, nil
	case "text", "string":
		return KindText, nil
	case "integer", "int":
		return KindInteger, nil
	case "decimal", "number":
		return KindDecimal, nil
	case "date", "datetime":
		return KindDate, nil
	case "boolean", "bool":
		return KindBoolean, nil
	}
	return KindEmpty, fmt.Errorf("unknown value kind %q", s)
}

// IsNumeric reports whether values of this kind can be summed.
func (k Kind) IsNumeric() bool {
	return k == KindInteger || k == KindDecimal
}

// Value is an immutable cell value. The zero Value is Empty.
type Value struct {
	kind    Kind
	text    string
	integer int64
	decimal decimal.Decimal
	date    time.Time
	boolean bool
}

func Empty() Value { return Value{} }

func Text(s string) Value { return Value{kind: KindText, text: s} }

func Integer(i int64) Value { return Value{kind: KindInteger, integer: i} }

func Decimal(d decimal.Decimal) Value { return Value{kind: KindDecimal, decimal: d} }

func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }

func Boolean(b bool) Value { return Value{kind: KindBoolean, boolean: b} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// AsText returns the text payload; ok is false for any other kind.
func (v Value) AsText() (string, bool) { return v.text, v.kind == KindText }

func (v Value) AsInteger() (int64, bool) { return v.integer, v.kind == KindInteger }

func (v Value) AsDate() (time.Time, bool) { return v.date, v.kind == KindDate }

func (v Value) AsBoolean() (bool, bool) { return v.boolean, v.kind == KindBoolean }

// AsDecimal returns numeric values (Integer or Decimal) as a decimal.
func (v Value) AsDecimal() (decimal.Decimal, bool) {
	switch v.kind {
	case KindDecimal:
		return v.decimal, true
	case KindInteger:
		return decimal.NewFromInt(v.integer), true
	}
	return decimal.Zero, false
}

// Equal reports whether both values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindEmpty:
		return true
	case KindText:
		return v.text == o.text
	case KindInteger:
		return v.integer == o.integer
	case KindDecimal:
		return v.decimal.Equal(o.decimal)
	case KindDate:
		return v.date.Equal(o.date)
	case KindBoolean:
		return v.boolean == o.boolean
	}
	return false
}

// String renders the value for display. Empty renders as "".
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInteger:
		return strconv.FormatInt(v.integer, 10)
	case KindDecimal:
		return v.decimal.String()
	case KindDate:
		if v.date.Hour() == 0 && v.date.Minute() == 0 && v.date.Second() == 0 && v.date.Nanosecond() == 0 {
			return v.date.Format(DateLayout)
		}
		return v.date.Format(time.RFC3339)
	case KindBoolean:
		return strconv.FormatBool(v.boolean)
	}
	return ""
}
