package export

import (
	"bytes"
	"encoding/json"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

// jsonFieldValue is the per-field export shape. The edited key is
// present only when the operator reviewed the field, so consumers can
// tell "not reviewed" from "reviewed, unchanged".
type jsonFieldValue struct {
	OCR    string  `json:"ocr"`
	Edited *string `json:"edited,omitempty"`
}

type jsonField struct {
	Name  string
	Value jsonFieldValue
}

// jsonFieldSet marshals as a JSON object in field-label order.
type jsonFieldSet []jsonField

func (s jsonFieldSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type jsonRecord struct {
	Filename string       `json:"filename"`
	Status   batch.Status `json:"status"`
	Error    *string      `json:"error"`
	Duration float64      `json:"duration"`
	Fields   jsonFieldSet `json:"fields"`
}

// exportJSON writes one array element per page, failed rows included.
func exportJSON(rows []*batch.ResultRow, fields []string, batchName string) ([]byte, error) {
	payload := make([]jsonRecord, 0, len(rows))
	for _, row := range rows {
		rec := jsonRecord{
			Filename: row.Filename,
			Status:   row.Status,
			Duration: row.Duration,
		}
		if row.Error != "" {
			errText := row.Error
			rec.Error = &errText
		}
		for _, f := range fields {
			fv := jsonFieldValue{OCR: row.Data.Value(f)}
			if edited, ok := row.EditedData[f]; ok {
				e := edited
				fv.Edited = &e
			}
			rec.Fields = append(rec.Fields, jsonField{Name: f, Value: fv})
		}
		payload = append(payload, rec)
	}
	return json.MarshalIndent(payload, "", "  ")
}
