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

package rendering

import (
	"embed"
	"io"

	"github.com/google/safehtml/template"

	"github.com/google/grouptotals/core/hierarchy"
)

//go:embed templates/*
var templateFS embed.FS

// TableViewModel is what the HTML template renders.
type TableViewModel struct {
	Title string
	Grid
}

// TableRenderer handles rendering of hierarchy views to HTML
type TableRenderer struct {
	tableTemplate *template.Template
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer() (*TableRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	tableTemplate, err := template.New("view.html").ParseFS(trustedFS, "templates/view.html")
	if err != nil {
		return nil, err
	}

	return &TableRenderer{
		tableTemplate: tableTemplate,
	}, nil
}

// Render renders a view to the provided writer
func (r *TableRenderer) Render(w io.Writer, title string, v *hierarchy.View, extraColumns ...string) error {
	return r.tableTemplate.Execute(w, TableViewModel{
		Title: title,
		Grid:  NewGrid(v, extraColumns...),
	})
}
