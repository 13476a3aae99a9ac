package export

import (
	"strings"
	"testing"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

func TestExportDarwinCore(t *testing.T) {
	t.Run("mapped-only fields omit dynamicProperties", func(t *testing.T) {
		rows := []*batch.ResultRow{
			testRow("card1.jpg", batch.Fields{{Name: "Titel", Value: "X"}}, nil),
		}

		payload, err := exportDarwinCore(rows, batch.FieldLabels(rows), "B1")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		out := string(payload)
		if !strings.Contains(out, "<dc:title>X</dc:title>") {
			t.Error("mapped term missing")
		}
		if strings.Contains(out, "dynamicProperties") {
			t.Error("no unmapped fields, dynamicProperties must be absent")
		}
	})

	t.Run("unmapped fields land in one JSON blob", func(t *testing.T) {
		rows := []*batch.ResultRow{
			testRow("card2.jpg", batch.Fields{
				{Name: "Komponist", Value: "Bach"},
				{Name: "Spieldauer", Value: "12:30"},
				{Name: "Bandsorte", Value: "BASF"},
			}, nil),
		}

		payload, err := exportDarwinCore(rows, batch.FieldLabels(rows), "B1")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		out := string(payload)
		if !strings.Contains(out, "<dwc:recordedBy>Bach</dwc:recordedBy>") {
			t.Error("mapped term missing")
		}
		if n := strings.Count(out, "dynamicProperties"); n != 2 {
			t.Errorf("expected exactly one dynamicProperties element, got %d tags", n)
		}
		if !strings.Contains(out, `{&quot;Spieldauer&quot;:&quot;12:30&quot;,&quot;Bandsorte&quot;:&quot;BASF&quot;}`) {
			t.Errorf("blob should be an escaped ordered JSON object:\n%s", out)
		}
	})

	t.Run("constant elements per record", func(t *testing.T) {
		rows := []*batch.ResultRow{
			testRow("card3.jpg", batch.Fields{{Name: "Titel", Value: "Y"}}, nil),
		}

		payload, err := exportDarwinCore(rows, batch.FieldLabels(rows), "Sammlung 7")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		out := string(payload)
		if !strings.Contains(out, "<dwc:occurrenceID>card3.jpg</dwc:occurrenceID>") {
			t.Error("missing occurrenceID")
		}
		if !strings.Contains(out, "<dwc:collectionCode>Sammlung 7</dwc:collectionCode>") {
			t.Error("missing collectionCode")
		}
		if !strings.Contains(out, "<dwc:basisOfRecord>PreservedSpecimen</dwc:basisOfRecord>") {
			t.Error("missing basisOfRecord")
		}
	})
}
