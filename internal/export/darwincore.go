package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

// dwcAliases maps domain labels to Simple Darwin Core terms. Table
// order is element order; a label claimed here stays out of the
// dynamicProperties blob.
var dwcAliases = aliasTable{
	{"Titel", "dc:title"},
	{"Komponist", "dwc:recordedBy"},
	{"Datum", "dwc:eventDate"},
	{"Ort der Aufnahme", "dwc:locality"},
	{"Ort der Aufnahme Datum", "dwc:locality"},
	{"Bestellnummer", "dwc:catalogNumber"},
	{"Bestell-Nr.", "dwc:otherCatalogNumbers"},
	{"Ton-Ingenieur", "dwc:identifiedBy"},
}

// exportDarwinCore builds a SimpleDarwinRecordSet with one record per
// successful page. Fields without a term mapping land as one JSON
// object string in dwc:dynamicProperties.
func exportDarwinCore(rows []*batch.ResultRow, fields []string, batchName string) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<dwr:SimpleDarwinRecordSet
  xmlns:dwr="http://rs.tdwg.org/dwc/xsd/simpledarwincore/"
  xmlns:dwc="http://rs.tdwg.org/dwc/terms/"
  xmlns:dc="http://purl.org/dc/terms/"
  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
  xsi:schemaLocation="http://rs.tdwg.org/dwc/xsd/simpledarwincore/ http://rs.tdwg.org/dwc/xsd/tdwg_dwc_simple.xsd">
`)

	for _, row := range successful(rows) {
		if err := writeDarwinRecord(&sb, row, fields, batchName); err != nil {
			return nil, err
		}
	}

	sb.WriteString("</dwr:SimpleDarwinRecordSet>\n")
	return []byte(sb.String()), nil
}

func writeDarwinRecord(sb *strings.Builder, row *batch.ResultRow, fields []string, batchName string) error {
	get := func(f string) string { return batch.Resolve(row, f) }

	sb.WriteString("  <dwr:SimpleDarwinRecord>\n")
	fmt.Fprintf(sb, "    <dwc:occurrenceID>%s</dwc:occurrenceID>\n", escapeXML(row.Filename))
	fmt.Fprintf(sb, "    <dwc:collectionCode>%s</dwc:collectionCode>\n", escapeXML(batchName))
	sb.WriteString("    <dwc:basisOfRecord>PreservedSpecimen</dwc:basisOfRecord>\n")

	claimed := dwcAliases.claim(get, func(term, value string) {
		fmt.Fprintf(sb, "    <%s>%s</%s>\n", term, escapeXML(value), term)
	})

	if rest := unclaimedFields(fields, claimed, get); len(rest) > 0 {
		blob, err := json.Marshal(rest)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "    <dwc:dynamicProperties>%s</dwc:dynamicProperties>\n", escapeXML(string(blob)))
	}

	sb.WriteString("  </dwr:SimpleDarwinRecord>\n")
	return nil
}
