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

package sortkey

import (
	"math"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/grouptotals/core/values"
)

func mustEncode(t *testing.T, v values.Value) string {
	t.Helper()
	key, err := Encode(v)
	require.NoError(t, err)
	return key
}

func TestEncodeIntegerOrder(t *testing.T) {
	ints := []int64{math.MinInt64, -1000, -1, 0, 1, 9, 10, 255, 256, math.MaxInt64}
	for i := 1; i < len(ints); i++ {
		a := mustEncode(t, values.Integer(ints[i-1]))
		b := mustEncode(t, values.Integer(ints[i]))
		assert.Less(t, a, b, "%d vs %d", ints[i-1], ints[i])
		assert.Len(t, b, 16)
	}
}

func TestEncodeTextIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, mustEncode(t, values.Text("north")), mustEncode(t, values.Text("NORTH")))
	assert.Less(t, mustEncode(t, values.Text("apple")), mustEncode(t, values.Text("Banana")))
	// NFC and NFD spellings of é collapse to one key.
	assert.Equal(t, mustEncode(t, values.Text("caf\u00e9")), mustEncode(t, values.Text("cafe\u0301")))
}

func TestEncodeTextNeverContainsSeparator(t *testing.T) {
	key := mustEncode(t, values.Text("a\x00b\x01c"))
	assert.NotContains(t, key, Separator)

	keys := []string{
		mustEncode(t, values.Text("a")),
		mustEncode(t, values.Text("a\x00")),
		mustEncode(t, values.Text("a\x01")),
		mustEncode(t, values.Text("a\x02")),
	}
	assert.True(t, sort.StringsAreSorted(keys))
}

func TestEncodeDateOrder(t *testing.T) {
	early := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
	late := time.Date(2024, 1, 1, 0, 0, 0, 1, time.UTC)
	a := mustEncode(t, values.Date(early))
	b := mustEncode(t, values.Date(late))
	assert.Less(t, a, b)
	assert.Len(t, a, len(b))

	// Same instant in another zone encodes identically.
	zone := time.FixedZone("UTC+2", 2*60*60)
	assert.Equal(t, a, mustEncode(t, values.Date(early.In(zone))))

	_, err := Encode(values.Date(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, err, ErrUnsupportedKeyType)
}

func TestEncodeUnsupported(t *testing.T) {
	_, err := Encode(values.Decimal(decimal.NewFromInt(1)))
	assert.ErrorIs(t, err, ErrUnsupportedKeyType)
	_, err = Encode(values.Boolean(true))
	assert.ErrorIs(t, err, ErrUnsupportedKeyType)
	_, err = EncodeComposite(values.Text("x"), values.Boolean(false))
	assert.ErrorIs(t, err, ErrUnsupportedKeyType)
}

func TestEncodeComposite(t *testing.T) {
	key, err := EncodeComposite(values.Empty(), values.Empty())
	require.NoError(t, err)
	assert.Equal(t, "", key)

	ab, err := EncodeComposite(values.Text("a"), values.Integer(2))
	require.NoError(t, err)
	abLonger, err := EncodeComposite(values.Text("ab"), values.Integer(1))
	require.NoError(t, err)
	// The shorter first component wins regardless of the second one.
	assert.Less(t, ab, abLonger)

	a1, err := EncodeComposite(values.Text("a"), values.Integer(1))
	require.NoError(t, err)
	assert.Less(t, a1, ab)
}
