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

package grouping

import (
	"regexp"
	"strings"

	"github.com/google/grouptotals/core/tables"
)

var placeholder = regexp.MustCompile(`\{([^{}]+)\}`)

// TemplateStrategy keys rows like KeyStrategy but renders captions from
// templates where {column} is replaced by the row's value of that column.
type TemplateStrategy struct {
	KeyStrategy
	Group string
	Total string
}

func (ts TemplateStrategy) Caption(row tables.Record, isTotal bool) string {
	tmpl := ts.Group
	if isTotal {
		tmpl = ts.Total
	}
	if tmpl == "" {
		return ts.KeyStrategy.Caption(row, isTotal)
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := strings.TrimSpace(m[1 : len(m)-1])
		v, ok := row.Value(name)
		if !ok {
			return m
		}
		return v.String()
	})
}
