package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

// exportMETSMODS builds a METS document with three linked sections:
// MODS descriptive metadata (one per entry, or per page when the page
// is not a ledger), a file group (one file per source image), and a
// logical struct map tying pages and entries to both. DMD and FILE IDs
// come from per-call counters so the cross-references stay consistent.
func exportMETSMODS(rows []*batch.ResultRow, fields []string, batchName string) ([]byte, error) {
	dmdIDs := idAllocator{prefix: "DMD"}
	fileIDs := idAllocator{prefix: "FILE"}

	var dmdSections, fileEntries, structDivs []string

	for _, row := range successful(rows) {
		fileID := fileIDs.next()
		fileEntries = append(fileEntries, fmt.Sprintf(
			"      <mets:file ID=\"%s\" MIMETYPE=\"image/jpeg\">\n        <mets:FLocat LOCTYPE=\"URL\" xlink:href=\"%s\"/>\n      </mets:file>",
			fileID, escapeXML(imagePath(batchName, row.Filename))))

		entries, ledger := batch.Expand(row, fields)
		if ledger {
			var pageDivs []string
			for _, e := range entries {
				dmdID := dmdIDs.next()
				dmdSections = append(dmdSections, buildMODS(e.Fields, row.Filename, dmdID))
				label := e.Fields.Value("Zu- u. Vorname")
				if label == "" {
					label = dmdID
				}
				pageDivs = append(pageDivs, fmt.Sprintf(
					"      <mets:div TYPE=\"document\" DMDID=\"%s\" LABEL=\"%s\">\n        <mets:fptr FILEID=\"%s\"/>\n      </mets:div>",
					dmdID, escapeXML(label), fileID))
			}
			structDivs = append(structDivs, fmt.Sprintf(
				"      <mets:div TYPE=\"page\" LABEL=\"%s\">\n%s\n      </mets:div>",
				escapeXML(row.Filename), strings.Join(pageDivs, "\n")))
			continue
		}

		dmdID := dmdIDs.next()
		dmdSections = append(dmdSections, buildGenericMODS(row, fields, batchName, dmdID))
		structDivs = append(structDivs, fmt.Sprintf(
			"      <mets:div TYPE=\"document\" DMDID=\"%s\" LABEL=\"%s\"><mets:fptr FILEID=\"%s\"/></mets:div>",
			dmdID, escapeXML(row.Filename), fileID))
	}

	now := time.Now().UTC().Format("2006-01-02T15:04:05Z")

	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&sb, "<!-- METS/MODS-Export – %s | Erstellt: %s -->\n", escapeXML(batchName), now)
	sb.WriteString(`<!-- Hinweis: Vor Ingest in Goobi/Kitodo/DDB Daten prüfen und GND-Normdaten ergänzen. -->
<mets:mets
  xmlns:mets="http://www.loc.gov/METS/"
  xmlns:mods="http://www.loc.gov/mods/v3"
  xmlns:xlink="http://www.w3.org/1999/xlink"
  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
  xsi:schemaLocation="http://www.loc.gov/METS/ http://www.loc.gov/standards/mets/mets.xsd
                      http://www.loc.gov/mods/v3 http://www.loc.gov/standards/mods/v3/mods-3-8.xsd"
`)
	fmt.Fprintf(&sb, "  OBJID=\"%s\" TYPE=\"collection\">\n\n", escapeXML(batchName))

	fmt.Fprintf(&sb, "  <mets:metsHdr CREATEDATE=\"%s\">\n", now)
	sb.WriteString(`    <mets:agent ROLE="CREATOR" TYPE="ORGANIZATION">
      <mets:name>ThULB Jena – Retrokonversion (Archival Metadata Extraction &amp; Export Tool)</mets:name>
    </mets:agent>
  </mets:metsHdr>

`)

	sb.WriteString(strings.Join(dmdSections, "\n"))
	sb.WriteString("\n\n  <mets:fileSec>\n    <mets:fileGrp USE=\"DEFAULT\">\n")
	sb.WriteString(strings.Join(fileEntries, "\n"))
	sb.WriteString("\n    </mets:fileGrp>\n  </mets:fileSec>\n\n")

	sb.WriteString("  <mets:structMap TYPE=\"LOGICAL\">\n")
	fmt.Fprintf(&sb, "    <mets:div TYPE=\"collection\" LABEL=\"%s\">\n", escapeXML(batchName))
	sb.WriteString(strings.Join(structDivs, "\n"))
	sb.WriteString("\n    </mets:div>\n  </mets:structMap>\n\n</mets:mets>\n")

	return []byte(sb.String()), nil
}

// buildMODS renders the MODS section for one ledger entry. The field
// labels here follow the retroconverted thesis registers, the same
// vocabulary the MARC emitter keys on.
func buildMODS(entry batch.Fields, sourceFile, dmdID string) string {
	nr := entry.Value("Nr.")
	name := entry.Value("Zu- u. Vorname")
	titel := entry.Value("Titel der Habilitationsschrift:")
	if titel == "" {
		titel = entry.Value("Titel der Dissertation:")
	}
	if titel == "" {
		titel = entry.Value("Titel")
	}
	jahr := yearPattern.FindString(entry.Value("Jahr"))
	schriftTyp := "Habilitation"
	if entry.Value("Titel der Dissertation:") != "" {
		schriftTyp = "Dissertation"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "    <mets:dmdSec ID=\"%s\">\n", escapeXML(dmdID))
	sb.WriteString(`      <mets:mdWrap MDTYPE="MODS">
        <mets:xmlData>
          <mods:mods version="3.8" xmlns:mods="http://www.loc.gov/mods/v3">
        <mods:titleInfo>
`)
	fmt.Fprintf(&sb, "          <mods:title>%s</mods:title>\n", escapeXML(titel))
	sb.WriteString("        </mods:titleInfo>\n")

	if name != "" {
		writeMODSName(&sb, ParseName(name), "aut")
	}
	for _, g := range splitPersons(entry.Value("Gutachter")) {
		writeMODSName(&sb, ParseName(g), "opn")
	}

	sb.WriteString(`        <mods:typeOfResource>text</mods:typeOfResource>
        <mods:genre authority="marcgt">thesis</mods:genre>
        <mods:originInfo eventType="production">
          <mods:place>
            <mods:placeTerm type="text">Jena</mods:placeTerm>
          </mods:place>
          <mods:publisher>Friedrich-Schiller-Universität Jena</mods:publisher>
`)
	if jahr != "" {
		fmt.Fprintf(&sb, "          <mods:dateIssued encoding=\"iso8601\">%s</mods:dateIssued>\n", escapeXML(jahr))
	}
	sb.WriteString(`        </mods:originInfo>
        <mods:language>
          <mods:languageTerm type="code" authority="iso639-2b">ger</mods:languageTerm>
        </mods:language>
`)
	if nr != "" {
		fmt.Fprintf(&sb, "        <mods:identifier type=\"local\">%s</mods:identifier>\n", escapeXML(nr))
	}
	if titel != "" || jahr != "" {
		note := schriftTyp
		if titel != "" {
			note += ", " + titel
		}
		if jahr != "" {
			note += ", Friedrich-Schiller-Universität Jena, " + jahr
		}
		fmt.Fprintf(&sb, "        <mods:note type=\"thesis\">%s</mods:note>\n", escapeXML(note))
	}
	fmt.Fprintf(&sb, "        <mods:note type=\"source\">Retrokonversion aus handschriftlichem Findmittel (ThULB Jena). Quellseite: %s</mods:note>\n", escapeXML(sourceFile))
	sb.WriteString("          </mods:mods>\n        </mets:xmlData>\n      </mets:mdWrap>\n    </mets:dmdSec>")
	return sb.String()
}

// modsTitleAliases and friends drive the generic MODS builder used for
// pages without ledger structure.
var (
	modsTitleAliases   = []string{"Titel", "Titel und Spieldauer", "Tonband-Karteikarte"}
	modsCreatorAliases = []string{"Komponist", "Künstler"}
	modsDateAliases    = []string{"Datum", "Jahr"}
	modsIDAliases      = []string{"Bestellnummer", "Bestell-Nr.", "Inventar-Nr.", "Nr."}
)

func buildGenericMODS(row *batch.ResultRow, fields []string, batchName, dmdID string) string {
	get := func(f string) string { return batch.Resolve(row, f) }

	titleVal := firstNonEmpty(get, modsTitleAliases...)
	if titleVal == "" {
		titleVal = row.Filename
	}
	creatorVal := firstNonEmpty(get, modsCreatorAliases...)
	dateVal := firstNonEmpty(get, modsDateAliases...)
	idVal := firstNonEmpty(get, modsIDAliases...)
	if idVal == "" {
		idVal = row.Filename
	}

	used := make(map[string]bool)
	for _, group := range [][]string{modsTitleAliases, modsCreatorAliases, modsDateAliases, modsIDAliases} {
		for _, f := range group {
			used[f] = true
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "    <mets:dmdSec ID=\"%s\">\n", escapeXML(dmdID))
	sb.WriteString(`      <mets:mdWrap MDTYPE="MODS">
        <mets:xmlData>
          <mods:mods version="3.8" xmlns:mods="http://www.loc.gov/mods/v3">
`)
	fmt.Fprintf(&sb, "        <mods:titleInfo><mods:title>%s</mods:title></mods:titleInfo>\n", escapeXML(titleVal))
	if creatorVal != "" {
		fmt.Fprintf(&sb, "        <mods:name type=\"personal\"><mods:namePart>%s</mods:namePart><mods:role><mods:roleTerm type=\"code\" authority=\"marcrelator\">cre</mods:roleTerm></mods:role></mods:name>\n", escapeXML(creatorVal))
	}
	sb.WriteString("        <mods:typeOfResource>still image</mods:typeOfResource>\n")
	if dateVal != "" {
		fmt.Fprintf(&sb, "        <mods:originInfo><mods:dateCreated encoding=\"iso8601\">%s</mods:dateCreated></mods:originInfo>\n", escapeXML(dateVal))
	}
	fmt.Fprintf(&sb, "        <mods:identifier type=\"local\">%s</mods:identifier>\n", escapeXML(idVal))
	sb.WriteString("        <mods:location>\n")
	fmt.Fprintf(&sb, "          <mods:url access=\"object in context\">%s</mods:url>\n", escapeXML(imagePath(batchName, row.Filename)))
	sb.WriteString("        </mods:location>\n")

	for _, f := range fields {
		if used[f] {
			continue
		}
		if v := get(f); v != "" {
			fmt.Fprintf(&sb, "        <mods:note type=\"local\">%s</mods:note>\n", escapeXML(f+": "+v))
		}
	}

	sb.WriteString("          </mods:mods>\n        </mets:xmlData>\n      </mets:mdWrap>\n    </mets:dmdSec>")
	return sb.String()
}

func writeMODSName(sb *strings.Builder, n PersonName, role string) {
	sb.WriteString("        <mods:name type=\"personal\">\n")
	fmt.Fprintf(sb, "          <mods:namePart type=\"family\">%s</mods:namePart>\n", escapeXML(n.Family))
	if n.Given != "" {
		fmt.Fprintf(sb, "          <mods:namePart type=\"given\">%s</mods:namePart>\n", escapeXML(n.Given))
	}
	sb.WriteString("          <mods:role>\n")
	fmt.Fprintf(sb, "            <mods:roleTerm type=\"code\" authority=\"marcrelator\">%s</mods:roleTerm>\n", role)
	sb.WriteString("          </mods:role>\n        </mods:name>\n")
}
