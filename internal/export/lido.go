package export

import (
	"fmt"
	"strings"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

// exportLIDO builds a LIDO 1.1 lidoWrap with one lido record per
// successful page. Ledger pages are not expanded here; LIDO describes
// the card as a museum object, not its individual entries.
func exportLIDO(rows []*batch.ResultRow, fields []string, batchName string) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<lido:lidoWrap
  xmlns:lido="http://www.lido-schema.org"
  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
  xsi:schemaLocation="http://www.lido-schema.org http://www.lido-schema.org/schema/v1.1/lido-v1.1.xsd">
`)

	for _, row := range successful(rows) {
		writeLIDORecord(&sb, row, fields, batchName)
	}

	sb.WriteString("</lido:lidoWrap>\n")
	return []byte(sb.String()), nil
}

func writeLIDORecord(sb *strings.Builder, row *batch.ResultRow, fields []string, batchName string) {
	get := func(f string) string { return batch.Resolve(row, f) }

	titel := get("Titel")
	if titel == "" {
		titel = row.Filename
	}
	bestellNr := firstNonEmpty(get, "Bestellnummer", "Bestell-Nr.")
	komponist := get("Komponist")
	datum := get("Datum")
	ort := firstNonEmpty(get, "Ort der Aufnahme", "Ort der Aufnahme Datum")

	sb.WriteString("  <lido:lido>\n")
	fmt.Fprintf(sb, "    <lido:lidoRecID lido:type=\"local\">%s</lido:lidoRecID>\n", escapeXML(row.Filename))
	sb.WriteString(`    <lido:descriptiveMetadata xml:lang="de">
      <lido:objectClassificationWrap>
        <lido:classificationWrap>
          <lido:classification lido:type="object type">
            <lido:term>Karteikarte</lido:term>
          </lido:classification>
        </lido:classificationWrap>
      </lido:objectClassificationWrap>
      <lido:objectIdentificationWrap>
        <lido:titleWrap>
          <lido:titleSet>
`)
	fmt.Fprintf(sb, "            <lido:appellationValue xml:lang=\"de\">%s</lido:appellationValue>\n", escapeXML(titel))
	sb.WriteString("          </lido:titleSet>\n        </lido:titleWrap>\n")

	if bestellNr != "" {
		sb.WriteString("        <lido:repositoryWrap>\n          <lido:repositorySet>\n")
		fmt.Fprintf(sb, "            <lido:workID lido:type=\"inventory number\">%s</lido:workID>\n", escapeXML(bestellNr))
		sb.WriteString("          </lido:repositorySet>\n        </lido:repositoryWrap>\n")
	}

	// Every non-empty field is repeated generically so nothing is lost
	// for labels the fixed slots above do not cover.
	sb.WriteString("        <lido:objectDescriptionWrap>\n")
	for _, f := range fields {
		v := get(f)
		if v == "" {
			continue
		}
		fmt.Fprintf(sb, "          <lido:objectDescriptionSet lido:type=\"%s\">\n", escapeXML(f))
		fmt.Fprintf(sb, "            <lido:descriptiveNoteValue>%s</lido:descriptiveNoteValue>\n", escapeXML(v))
		sb.WriteString("          </lido:objectDescriptionSet>\n")
	}
	sb.WriteString("        </lido:objectDescriptionWrap>\n      </lido:objectIdentificationWrap>\n")

	if komponist != "" || datum != "" || ort != "" {
		sb.WriteString(`      <lido:eventWrap>
        <lido:eventSet>
          <lido:event>
            <lido:eventType><lido:term>Recording</lido:term></lido:eventType>
`)
		// The actor nests inside the event, as the schema requires.
		if komponist != "" {
			sb.WriteString(`            <lido:eventActor>
              <lido:actorInEvent>
                <lido:actor>
                  <lido:nameActorSet>
`)
			fmt.Fprintf(sb, "                    <lido:appellationValue>%s</lido:appellationValue>\n", escapeXML(komponist))
			sb.WriteString(`                  </lido:nameActorSet>
                </lido:actor>
                <lido:roleActor><lido:term>Komponist</lido:term></lido:roleActor>
              </lido:actorInEvent>
            </lido:eventActor>
`)
		}
		if datum != "" {
			fmt.Fprintf(sb, "            <lido:eventDate><lido:displayDate>%s</lido:displayDate></lido:eventDate>\n", escapeXML(datum))
		}
		if ort != "" {
			fmt.Fprintf(sb, "            <lido:eventPlace><lido:place><lido:namePlaceSet><lido:appellationValue>%s</lido:appellationValue></lido:namePlaceSet></lido:place></lido:eventPlace>\n", escapeXML(ort))
		}
		sb.WriteString("          </lido:event>\n        </lido:eventSet>\n      </lido:eventWrap>\n")
	}

	sb.WriteString("    </lido:descriptiveMetadata>\n")
	sb.WriteString("    <lido:administrativeMetadata xml:lang=\"de\">\n      <lido:recordWrap>\n")
	fmt.Fprintf(sb, "        <lido:recordID lido:type=\"local\">%s</lido:recordID>\n", escapeXML(row.Filename))
	sb.WriteString("        <lido:recordType><lido:term>item</lido:term></lido:recordType>\n")
	sb.WriteString("        <lido:recordSource>\n          <lido:legalBodyName>\n")
	fmt.Fprintf(sb, "            <lido:appellationValue>%s</lido:appellationValue>\n", escapeXML(batchName))
	sb.WriteString(`          </lido:legalBodyName>
        </lido:recordSource>
      </lido:recordWrap>
    </lido:administrativeMetadata>
  </lido:lido>
`)
}
