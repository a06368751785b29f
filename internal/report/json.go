package report

import (
	"encoding/json"
	"io"

	"github.com/cmdshadow/cmdshadow/internal/audit"
)

// Record is one classified command in JSON output. Records appear in
// the same order as the report's results.
type Record struct {
	Command     string `json:"command"`
	Status      int    `json:"status"`
	StatusLabel string `json:"status_label"`
	Detail      string `json:"detail,omitempty"`
}

// Document is the JSON shape of a whole audit report.
type Document struct {
	Group      string   `json:"group"`
	Worst      int      `json:"worst"`
	WorstLabel string   `json:"worst_label"`
	Results    []Record `json:"results"`
}

// NewDocument converts a report for JSON export.
func NewDocument(rep audit.Report) Document {
	doc := Document{
		Group:      rep.Group,
		Worst:      int(rep.Worst),
		WorstLabel: rep.Worst.String(),
		Results:    make([]Record, 0, len(rep.Results)),
	}
	for _, res := range rep.Results {
		doc.Results = append(doc.Results, Record{
			Command:     res.Command,
			Status:      int(res.Status),
			StatusLabel: res.Status.String(),
			Detail:      res.Detail,
		})
	}
	return doc
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, rep audit.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(rep))
}
