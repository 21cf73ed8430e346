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

// Package sortkey encodes values as strings whose byte order equals the
// natural order of the values, so that grouping keys can be ranked by
// plain string comparison.
package sortkey

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/google/grouptotals/core/values"
)

// Separator joins the components of a composite key. Encoded components
// never contain it.
const Separator = "\x00"

const dateLayout = "2006-01-02T15:04:05.000000000"

var ErrUnsupportedKeyType = errors.New("unsupported key type")

// escaper keeps 0x00 free for the separator while preserving byte order:
// 0x00 < 0x01 0x01 < 0x01 0x02 < 0x02.
var escaper = strings.NewReplacer("\x01", "\x01\x02", "\x00", "\x01\x01")

// Encode returns the order-preserving key of v. Empty encodes as "".
func Encode(v values.Value) (string, error) {
	switch v.Kind() {
	case values.KindEmpty:
		return "", nil
	case values.KindText:
		s, _ := v.AsText()
		return encodeText(s), nil
	case values.KindInteger:
		i, _ := v.AsInteger()
		return EncodeInt(i), nil
	case values.KindDate:
		t, _ := v.AsDate()
		return encodeDate(t)
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedKeyType, v.Kind())
}

// EncodeInt renders i in offset binary so that the lexicographic order of
// the 16 hex digits equals numeric order.
func EncodeInt(i int64) string {
	return fmt.Sprintf("%016x", uint64(i)^(1<<63))
}

// EncodeComposite joins the keys of vs with Separator. The result is empty
// only when every component is empty.
func EncodeComposite(vs ...values.Value) (string, error) {
	parts := make([]string, len(vs))
	empty := true
	for i, v := range vs {
		key, err := Encode(v)
		if err != nil {
			return "", err
		}
		if key != "" {
			empty = false
		}
		parts[i] = key
	}
	if empty {
		return "", nil
	}
	return strings.Join(parts, Separator), nil
}

func encodeText(s string) string {
	// cases.Caser is stateful, so one per call.
	upper := cases.Upper(language.Und).String(norm.NFC.String(s))
	return escaper.Replace(upper)
}

func encodeDate(t time.Time) (string, error) {
	t = t.UTC()
	if t.Year() < 0 || t.Year() > 9999 {
		return "", fmt.Errorf("%w: date %v outside years 0..9999", ErrUnsupportedKeyType, t)
	}
	return t.Format(dateLayout), nil
}
