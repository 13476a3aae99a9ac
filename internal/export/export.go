// Package export turns a batch of index-card extraction results into
// downloadable documents: tabular formats for review workflows and a
// set of archival XML dialects for downstream ingest tooling. Every
// export is a pure function of its inputs; rows are never mutated and
// nothing is cached between calls.
package export

import (
	"fmt"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

// Format identifies one export dialect.
type Format string

const (
	FormatCSV        Format = "csv"
	FormatJSON       Format = "json"
	FormatXLSX       Format = "xlsx"
	FormatLIDO       Format = "lido"
	FormatEAD        Format = "ead"
	FormatDarwinCore Format = "darwincore"
	FormatDublinCore Format = "dublincore"
	FormatMARCXML    Format = "marcxml"
	FormatMETSMODS   Format = "metsmods"
)

// StaticRoot is the server mount path for batch images. Image links in
// EAD and METS output are relative paths below this root.
const StaticRoot = "/batches-static"

const (
	mimeCSV  = "text/csv;charset=utf-8"
	mimeJSON = "application/json"
	mimeXML  = "application/xml;charset=utf-8"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Document is a finished export: the payload plus the filename and MIME
// type a download handler needs to serve it.
type Document struct {
	Payload  []byte
	Filename string
	MIMEType string
}

type emitter func(rows []*batch.ResultRow, fields []string, batchName string) ([]byte, error)

type formatSpec struct {
	suffix  string
	mime    string
	emit    emitter
	display string
}

var formatTable = map[Format]formatSpec{
	FormatCSV:        {"_results.csv", mimeCSV, exportCSV, "CSV"},
	FormatJSON:       {"_results.json", mimeJSON, exportJSON, "JSON"},
	FormatXLSX:       {"_results.xlsx", mimeXLSX, exportXLSX, "Excel"},
	FormatLIDO:       {"_lido.xml", mimeXML, exportLIDO, "LIDO 1.1"},
	FormatEAD:        {"_ead.xml", mimeXML, exportEAD, "EAD"},
	FormatDarwinCore: {"_darwincore.xml", mimeXML, exportDarwinCore, "Darwin Core"},
	FormatDublinCore: {"_dublincore.xml", mimeXML, exportDublinCore, "Dublin Core (OAI-DC)"},
	FormatMARCXML:    {"_marc21.xml", mimeXML, exportMARCXML, "MARC21-XML"},
	FormatMETSMODS:   {"_mets_mods.xml", mimeXML, exportMETSMODS, "METS/MODS"},
}

// formatOrder fixes the listing order for CLI help and the API.
var formatOrder = []Format{
	FormatCSV, FormatJSON, FormatXLSX,
	FormatLIDO, FormatEAD, FormatDarwinCore, FormatDublinCore,
	FormatMARCXML, FormatMETSMODS,
}

// Formats returns all supported formats in listing order.
func Formats() []Format {
	out := make([]Format, len(formatOrder))
	copy(out, formatOrder)
	return out
}

// DisplayName returns a human-readable name for a format, or the raw
// format string if unknown.
func DisplayName(f Format) string {
	if spec, ok := formatTable[f]; ok {
		return spec.display
	}
	return string(f)
}

// Filename returns the download filename for a batch exported in the
// given format.
func Filename(f Format, batchName string) (string, error) {
	spec, ok := formatTable[f]
	if !ok {
		return "", fmt.Errorf("unknown export format %q", f)
	}
	return batchName + spec.suffix, nil
}

// ParseFormat validates a format string from the CLI or URL path.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if _, ok := formatTable[f]; !ok {
		return "", fmt.Errorf("unknown export format %q", s)
	}
	return f, nil
}

// Export renders a batch in the requested format. The field label list
// is computed once here and shared by the emitter, so field order is
// identical across every row of the document.
func Export(format Format, rows []*batch.ResultRow, batchName string) (*Document, error) {
	spec, ok := formatTable[format]
	if !ok {
		return nil, fmt.Errorf("unknown export format %q", format)
	}

	fields := batch.FieldLabels(rows)
	payload, err := spec.emit(rows, fields, batchName)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s export: %w", spec.display, err)
	}

	return &Document{
		Payload:  payload,
		Filename: batchName + spec.suffix,
		MIMEType: spec.mime,
	}, nil
}

// successful filters a batch down to the rows the archival dialects
// emit. CSV, JSON and XLSX keep failed rows and report their error.
func successful(rows []*batch.ResultRow) []*batch.ResultRow {
	var out []*batch.ResultRow
	for _, r := range rows {
		if r.Succeeded() {
			out = append(out, r)
		}
	}
	return out
}

// imagePath returns the static-asset path for a batch image.
func imagePath(batchName, filename string) string {
	return StaticRoot + "/" + batchName + "/" + filename
}
