package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// exportMARCXML builds a MARC21 collection at entry granularity: one
// record per ledger entry, one per page otherwise. The record layout
// targets retroconverted thesis finding aids (K10plus ingest).
func exportMARCXML(rows []*batch.ResultRow, fields []string, batchName string) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&sb, "<!-- MARCXML-Export – Retrokonversion ThULB Jena / Batch: %s -->\n", escapeXML(batchName))
	sb.WriteString(`<!-- Hinweis: Vor dem Import in K10plus Datensätze durch Fachkräfte prüfen.   -->
<!-- GND-Normdaten, Signaturen und Pflichtfelder ggf. ergänzen.               -->
<marc:collection
  xmlns:marc="http://www.loc.gov/MARC21/slim"
  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
  xsi:schemaLocation="http://www.loc.gov/MARC21/slim http://www.loc.gov/standards/marcxml/schema/MARC21slim.xsd">
`)

	for _, row := range successful(rows) {
		entries, _ := batch.Expand(row, fields)
		for _, e := range entries {
			writeMARCRecord(&sb, e, row.Filename)
		}
	}

	sb.WriteString("</marc:collection>\n")
	return []byte(sb.String()), nil
}

func writeMARCRecord(sb *strings.Builder, e batch.Entry, sourceFile string) {
	nr := e.Fields.Value("Nr.")
	if nr == "" && e.Total > 0 {
		nr = fmt.Sprintf("%d", e.Index+1)
	}
	name := e.Fields.Value("Zu- u. Vorname")
	titel := e.Fields.Value("Titel der Habilitationsschrift:")
	if titel == "" {
		titel = e.Fields.Value("Titel der Dissertation:")
	}
	if titel == "" {
		titel = e.Fields.Value("Titel")
	}
	jahr := yearPattern.FindString(e.Fields.Value("Jahr"))

	year4 := jahr
	for len(year4) < 4 {
		year4 += " "
	}
	field008 := time.Now().Format("060102") + "s" + year4 + "    gw           000 0 ger d"

	recID := sourceFile
	if nr != "" {
		recID += "_" + nr
	}

	sb.WriteString("  <marc:record>\n")
	sb.WriteString("    <marc:leader>00000nam a2200000 i 4500</marc:leader>\n")
	fmt.Fprintf(sb, "    <marc:controlfield tag=\"001\">%s</marc:controlfield>\n", escapeXML(recID))
	sb.WriteString("    <marc:controlfield tag=\"003\">DE-27</marc:controlfield>\n")
	fmt.Fprintf(sb, "    <marc:controlfield tag=\"008\">%s</marc:controlfield>\n", field008)
	sb.WriteString(`    <marc:datafield tag="040" ind1=" " ind2=" ">
      <marc:subfield code="a">DE-27</marc:subfield>
      <marc:subfield code="b">ger</marc:subfield>
      <marc:subfield code="e">rda</marc:subfield>
    </marc:datafield>
    <marc:datafield tag="041" ind1="0" ind2=" ">
      <marc:subfield code="a">ger</marc:subfield>
    </marc:datafield>
`)

	if nr != "" {
		sb.WriteString("    <marc:datafield tag=\"099\" ind1=\" \" ind2=\" \">\n")
		fmt.Fprintf(sb, "      <marc:subfield code=\"a\">%s</marc:subfield>\n", escapeXML(nr))
		sb.WriteString("    </marc:datafield>\n")
	}

	if name != "" {
		sb.WriteString("    <marc:datafield tag=\"100\" ind1=\"1\" ind2=\" \">\n")
		fmt.Fprintf(sb, "      <marc:subfield code=\"a\">%s</marc:subfield>\n", escapeXML(name))
		sb.WriteString("      <marc:subfield code=\"e\">Verfasser</marc:subfield>\n")
		sb.WriteString("      <marc:subfield code=\"4\">aut</marc:subfield>\n")
		sb.WriteString("    </marc:datafield>\n")
	}

	if titel != "" {
		ind1 := "0"
		if name != "" {
			ind1 = "1"
		}
		fmt.Fprintf(sb, "    <marc:datafield tag=\"245\" ind1=\"%s\" ind2=\"0\">\n", ind1)
		fmt.Fprintf(sb, "      <marc:subfield code=\"a\">%s</marc:subfield>\n", escapeXML(titel))
		if name != "" {
			fmt.Fprintf(sb, "      <marc:subfield code=\"c\">%s</marc:subfield>\n", escapeXML(name))
		}
		sb.WriteString("    </marc:datafield>\n")
	}

	sb.WriteString(`    <marc:datafield tag="264" ind1=" " ind2="0">
      <marc:subfield code="a">Jena</marc:subfield>
      <marc:subfield code="b">Friedrich-Schiller-Universität</marc:subfield>
`)
	if jahr != "" {
		fmt.Fprintf(sb, "      <marc:subfield code=\"c\">%s</marc:subfield>\n", escapeXML(jahr))
	}
	sb.WriteString(`    </marc:datafield>
    <marc:datafield tag="336" ind1=" " ind2=" ">
      <marc:subfield code="a">Text</marc:subfield>
      <marc:subfield code="b">txt</marc:subfield>
      <marc:subfield code="2">rdacontent</marc:subfield>
    </marc:datafield>
    <marc:datafield tag="337" ind1=" " ind2=" ">
      <marc:subfield code="a">ohne Hilfsmittel zu benutzen</marc:subfield>
      <marc:subfield code="b">n</marc:subfield>
      <marc:subfield code="2">rdamedia</marc:subfield>
    </marc:datafield>
    <marc:datafield tag="338" ind1=" " ind2=" ">
      <marc:subfield code="a">Band</marc:subfield>
      <marc:subfield code="b">nc</marc:subfield>
      <marc:subfield code="2">rdacarrier</marc:subfield>
    </marc:datafield>
    <marc:datafield tag="502" ind1=" " ind2=" ">
      <marc:subfield code="b">Habilitation</marc:subfield>
      <marc:subfield code="c">Friedrich-Schiller-Universität Jena</marc:subfield>
`)
	if jahr != "" {
		fmt.Fprintf(sb, "      <marc:subfield code=\"d\">%s</marc:subfield>\n", escapeXML(jahr))
	}
	sb.WriteString("    </marc:datafield>\n")
	sb.WriteString("    <marc:datafield tag=\"500\" ind1=\" \" ind2=\" \">\n")
	fmt.Fprintf(sb, "      <marc:subfield code=\"a\">Retrokonversion aus handschriftlichem Findmittel (ThULB Jena). Quellseite: %s</marc:subfield>\n", escapeXML(sourceFile))
	sb.WriteString("    </marc:datafield>\n")

	for _, g := range splitPersons(e.Fields.Value("Gutachter")) {
		sb.WriteString("    <marc:datafield tag=\"700\" ind1=\"1\" ind2=\" \">\n")
		fmt.Fprintf(sb, "      <marc:subfield code=\"a\">%s</marc:subfield>\n", escapeXML(g))
		sb.WriteString("      <marc:subfield code=\"e\">Berichterstatter</marc:subfield>\n")
		sb.WriteString("      <marc:subfield code=\"4\">opn</marc:subfield>\n")
		sb.WriteString("    </marc:datafield>\n")
	}

	sb.WriteString("  </marc:record>\n")
}
