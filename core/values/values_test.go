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

package values

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var v Value
	assert.True(t, v.IsEmpty())
	assert.Equal(t, KindEmpty, v.Kind())
	assert.Equal(t, "", v.String())
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"text", Text("North"), "North"},
		{"integer", Integer(-42), "-42"},
		{"decimal", Decimal(decimal.RequireFromString("10.25")), "10.25"},
		{"date", Date(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)), "2024-03-09"},
		{"datetime", Date(time.Date(2024, 3, 9, 8, 30, 0, 0, time.UTC)), "2024-03-09T08:30:00Z"},
		{"boolean", Boolean(true), "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestAsDecimal(t *testing.T) {
	d, ok := Integer(7).AsDecimal()
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromInt(7)))

	d, ok = Decimal(decimal.RequireFromString("1.5")).AsDecimal()
	require.True(t, ok)
	assert.Equal(t, "1.5", d.String())

	_, ok = Text("1.5").AsDecimal()
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	assert.True(t, Text("a").Equal(Text("a")))
	assert.False(t, Text("a").Equal(Text("A")))
	assert.False(t, Integer(1).Equal(Decimal(decimal.NewFromInt(1))))
	assert.True(t, Decimal(decimal.RequireFromString("1.50")).Equal(Decimal(decimal.RequireFromString("1.5"))))
	assert.True(t, Empty().Equal(Value{}))
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindEmpty, KindText, KindInteger, KindDecimal, KindDate, KindBoolean} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("float128")
	assert.Error(t, err)
	assert.True(t, KindInteger.IsNumeric())
	assert.False(t, KindDate.IsNumeric())
}
