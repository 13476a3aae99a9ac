package export

import (
	"fmt"
	"strings"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

// utf8BOM makes Excel detect the encoding instead of falling back to
// the local codepage.
const utf8BOM = "\uFEFF"

// exportCSV writes one line per page with paired raw/edited columns.
// Every cell is quoted unconditionally and lines end with CRLF; both
// are fixed policy for spreadsheet compatibility, which is also why
// this does not go through encoding/csv (it quotes minimally and ends
// lines with a bare LF).
func exportCSV(rows []*batch.ResultRow, fields []string, batchName string) ([]byte, error) {
	header := []string{"File", "Status", "Error", "Duration(s)"}
	for _, f := range fields {
		header = append(header, f+"_ocr", f+"_edited")
	}

	var sb strings.Builder
	sb.WriteString(utf8BOM)
	writeCSVLine(&sb, header)

	for _, row := range rows {
		cells := []string{
			row.Filename,
			string(row.Status),
			row.Error,
			fmt.Sprintf("%.2f", row.Duration),
		}
		for _, f := range fields {
			cells = append(cells, row.Data.Value(f), row.EditedData[f])
		}
		sb.WriteString("\r\n")
		writeCSVLine(&sb, cells)
	}

	return []byte(sb.String()), nil
}

func writeCSVLine(sb *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		sb.WriteByte('"')
	}
}
