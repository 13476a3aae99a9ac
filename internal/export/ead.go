package export

import (
	"fmt"
	"strings"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

// eadDidFields are the labels the <did> slots already consume; they are
// kept out of the consolidated <odd> notes block.
var eadDidFields = map[string]bool{
	"Titel":                  true,
	"Bestellnummer":          true,
	"Bestell-Nr.":            true,
	"Spieldauer":             true,
	"Ort der Aufnahme":       true,
	"Ort der Aufnahme Datum": true,
	"Datum":                  true,
}

// exportEAD builds a finding aid with one item-level component per
// successful page under a single collection-level description.
func exportEAD(rows []*batch.ResultRow, fields []string, batchName string) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<ead xmlns="urn:isbn:1-931666-22-9"
     xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
     xsi:schemaLocation="urn:isbn:1-931666-22-9 http://www.loc.gov/ead/ead.xsd">
  <eadheader>
`)
	fmt.Fprintf(&sb, "    <eadid>%s</eadid>\n", escapeXML(batchName))
	sb.WriteString("    <filedesc>\n      <titlestmt>\n")
	fmt.Fprintf(&sb, "        <titleproper>Archival Finding Aid: %s</titleproper>\n", escapeXML(batchName))
	sb.WriteString(`      </titlestmt>
    </filedesc>
  </eadheader>
  <archdesc level="collection">
    <did>
`)
	fmt.Fprintf(&sb, "      <unittitle>%s</unittitle>\n", escapeXML(batchName))
	sb.WriteString("    </did>\n    <dsc type=\"combined\">\n")

	for _, row := range successful(rows) {
		writeEADComponent(&sb, row, fields, batchName)
	}

	sb.WriteString("    </dsc>\n  </archdesc>\n</ead>\n")
	return []byte(sb.String()), nil
}

func writeEADComponent(sb *strings.Builder, row *batch.ResultRow, fields []string, batchName string) {
	get := func(f string) string { return batch.Resolve(row, f) }

	titel := get("Titel")
	if titel == "" {
		titel = row.Filename
	}
	bestellNr := firstNonEmpty(get, "Bestellnummer", "Bestell-Nr.")
	datum := get("Datum")
	spieldauer := get("Spieldauer")
	ort := firstNonEmpty(get, "Ort der Aufnahme", "Ort der Aufnahme Datum")

	sb.WriteString("      <c level=\"item\">\n        <did>\n")
	fmt.Fprintf(sb, "          <unittitle>%s</unittitle>\n", escapeXML(titel))
	if bestellNr != "" {
		fmt.Fprintf(sb, "          <unitid>%s</unitid>\n", escapeXML(bestellNr))
	}
	if datum != "" {
		fmt.Fprintf(sb, "          <unitdate>%s</unitdate>\n", escapeXML(datum))
	}
	if spieldauer != "" {
		fmt.Fprintf(sb, "          <physdesc><extent>%s</extent></physdesc>\n", escapeXML(spieldauer))
	}
	if ort != "" {
		fmt.Fprintf(sb, "          <physloc>%s</physloc>\n", escapeXML(ort))
	}
	fmt.Fprintf(sb, "          <dao href=\"%s\" title=\"%s\" />\n",
		escapeXML(imagePath(batchName, row.Filename)), escapeXML(titel))
	sb.WriteString("        </did>\n")

	var oddParts []string
	for _, f := range fields {
		if eadDidFields[f] {
			continue
		}
		if v := get(f); v != "" {
			oddParts = append(oddParts, escapeXML(f)+": "+escapeXML(v))
		}
	}
	if len(oddParts) > 0 {
		fmt.Fprintf(sb, "        <odd><p>%s</p></odd>\n", strings.Join(oddParts, " | "))
	}
	sb.WriteString("      </c>\n")
}
