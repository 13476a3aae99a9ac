// Package batch models the per-image extraction results produced by the
// OCR pipeline and reviewed by the operator. The export engine consumes
// these rows read-only.
package batch

import "strings"

// Status is the processing outcome for one scanned image.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Reserved keys the OCR pipeline stores inside a row's extracted data.
// Keys with the reserved prefix never appear in user-facing field lists.
const (
	// EntriesKey holds a JSON-encoded array of sub-records for pages
	// that contain a tabular ledger rather than a single card.
	EntriesKey = "_entries"

	// EntryCountKey holds the number of sub-records as a string.
	EntryCountKey = "_entry_count"

	reservedPrefix = "_"
)

// ResultRow is one scanned image's extraction outcome.
//
// Data holds the machine-extracted values in extraction order. EditedData
// holds operator corrections: a key's presence, even with an unchanged
// value, means the field was reviewed; absence means the extracted value
// is still current.
type ResultRow struct {
	Filename   string            `json:"filename"`
	Status     Status            `json:"status"`
	Error      string            `json:"error,omitempty"`
	Data       Fields            `json:"data"`
	EditedData map[string]string `json:"editedData"`
	Duration   float64           `json:"duration"`
}

// Succeeded reports whether the row was processed successfully.
func (r *ResultRow) Succeeded() bool {
	return r.Status == StatusSuccess
}

// Resolve returns the current value of a field for a row: the operator
// correction when the field was reviewed, else the extracted value, else
// "". Every emitter goes through this so exports always reflect the
// post-review state.
func Resolve(row *ResultRow, field string) string {
	if v, ok := row.EditedData[field]; ok {
		return v
	}
	return row.Data.Value(field)
}

// FieldLabels derives the ordered list of distinct field labels across a
// batch: first-seen order over all rows' extracted data, with reserved
// keys filtered out. Compute it once per export call and reuse it, so
// every row of a document shares the same field order.
func FieldLabels(rows []*ResultRow) []string {
	var labels []string
	seen := make(map[string]bool)
	for _, row := range rows {
		for _, f := range row.Data {
			if seen[f.Name] {
				continue
			}
			seen[f.Name] = true
			if strings.HasPrefix(f.Name, reservedPrefix) {
				continue
			}
			labels = append(labels, f.Name)
		}
	}
	return labels
}
