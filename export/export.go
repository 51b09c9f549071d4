// Package export renders a finished or in-progress application for
// humans and machines: labeled rows in form order, JSON, and a markdown
// table.
package export

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"

	"github.com/permitly/permitagent/locale"
	"github.com/permitly/permitagent/schedule"
)

// Row is one labeled value of the application.
type Row struct {
	FieldID string `json:"fieldId"`
	Label   string `json:"label"`
	Value   string `json:"value"`
}

// Snapshot is an exportable view of the collected values.
type Snapshot struct {
	Language string            `json:"language"`
	Values   map[string]string `json:"values"`
}

// Rows returns the non-empty values in form order with localized labels.
func (s Snapshot) Rows() []Row {
	rows := make([]Row, 0, len(s.Values))
	for _, field := range schedule.Fields() {
		v := s.Values[field.ID]
		if v == "" {
			continue
		}
		rows = append(rows, Row{
			FieldID: field.ID,
			Label:   locale.FieldLabel(field.ID, s.Language),
			Value:   v,
		})
	}
	return rows
}

// JSON renders the snapshot values as indented JSON.
func (s Snapshot) JSON() ([]byte, error) {
	return sonic.MarshalIndent(s.Values, "", "  ")
}

// Markdown renders the snapshot as a markdown table.
func (s Snapshot) Markdown() string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("Field", "Value")
	for _, row := range s.Rows() {
		_ = table.Append(row.Label, row.Value)
	}
	_ = table.Render()
	return buf.String()
}
