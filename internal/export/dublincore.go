package export

import (
	"fmt"
	"strings"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

// dcAliases maps domain labels to the 15 Dublin Core elements,
// contributor-type roles included. Table order is element order.
var dcAliases = aliasTable{
	{"Titel", "dc:title"},
	{"Titel und Spieldauer", "dc:title"},
	{"Komponist", "dc:creator"},
	{"Textdichter", "dc:contributor"},
	{"Bearbeiter", "dc:contributor"},
	{"Dirigent", "dc:contributor"},
	{"Chor-Dirigent", "dc:contributor"},
	{"Solisten", "dc:contributor"},
	{"Solisten (Rückseite)", "dc:contributor"},
	{"Orchester", "dc:contributor"},
	{"Datum", "dc:date"},
	{"Bestellnummer", "dc:identifier"},
	{"Bestell-Nr.", "dc:identifier"},
	{"Matrizen-Nr.", "dc:identifier"},
	{"Verlag", "dc:publisher"},
	{"Ort der Aufnahme", "dc:coverage"},
	{"Ort der Aufnahme Datum", "dc:coverage"},
	{"Form", "dc:type"},
	{"Sperrvermerk", "dc:rights"},
	{"Sperr-Vermerke", "dc:rights"},
	{"Sprache", "dc:language"},
	{"Bemerkungen", "dc:description"},
}

// exportDublinCore builds an OAI-DC record set with one record per
// successful page. Unclaimed fields are concatenated into a single
// description element; three constant elements close every record.
func exportDublinCore(rows []*batch.ResultRow, fields []string, batchName string) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<records
  xmlns:oai_dc="http://www.openarchives.org/OAI/2.0/oai_dc/"
  xmlns:dc="http://purl.org/dc/elements/1.1/"
  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
  xsi:schemaLocation="http://www.openarchives.org/OAI/2.0/oai_dc/ http://www.openarchives.org/OAI/2.0/oai_dc.xsd">
`)

	for _, row := range successful(rows) {
		get := func(f string) string { return batch.Resolve(row, f) }

		sb.WriteString("  <oai_dc:dc>\n")
		fmt.Fprintf(&sb, "    <dc:identifier>%s</dc:identifier>\n", escapeXML(row.Filename))

		claimed := dcAliases.claim(get, func(term, value string) {
			fmt.Fprintf(&sb, "    <%s>%s</%s>\n", term, escapeXML(value), term)
		})

		if rest := unclaimedFields(fields, claimed, get); len(rest) > 0 {
			parts := make([]string, len(rest))
			for i, f := range rest {
				parts[i] = f.Name + ": " + f.Value
			}
			fmt.Fprintf(&sb, "    <dc:description>%s</dc:description>\n", escapeXML(strings.Join(parts, "; ")))
		}

		fmt.Fprintf(&sb, "    <dc:source>%s</dc:source>\n", escapeXML(batchName))
		sb.WriteString("    <dc:type>Sound</dc:type>\n")
		sb.WriteString("    <dc:format>audio/x-tape-archive-card</dc:format>\n")
		sb.WriteString("  </oai_dc:dc>\n")
	}

	sb.WriteString("</records>\n")
	return []byte(sb.String()), nil
}
