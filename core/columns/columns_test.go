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
	"testing"

	"github.com/google/grouptotals/core/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchema(t *testing.T) {
	s, err := NewSchema(
		NewColumnDef("region", "Region", values.KindText),
		NewColumnDef("amount", "", values.KindInteger),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"region", "amount"}, s.Names())
	assert.Equal(t, 1, s.Index("amount"))
	assert.Equal(t, -1, s.Index("missing"))

	def, ok := s.Column("amount")
	require.True(t, ok)
	assert.Equal(t, "amount", def.DisplayName())
	assert.Equal(t, values.KindInteger, def.Kind())
}

func TestNewSchemaRejectsDuplicates(t *testing.T) {
	_, err := NewSchema(
		NewColumnDef("region", "", values.KindText),
		NewColumnDef("region", "", values.KindText),
	)
	assert.ErrorContains(t, err, `duplicate column "region"`)

	_, err = NewSchema(NewColumnDef("", "", values.KindText))
	assert.Error(t, err)
}
