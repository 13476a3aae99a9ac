package export

import (
	"strings"
	"testing"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

func TestExportLIDO(t *testing.T) {
	t.Run("event nesting", func(t *testing.T) {
		rows := []*batch.ResultRow{
			testRow("card1.jpg", batch.Fields{
				{Name: "Titel", Value: "Brandenburgisches Konzert"},
				{Name: "Komponist", Value: "Bach"},
				{Name: "Datum", Value: "1721"},
				{Name: "Bestellnummer", Value: "T 1234"},
			}, nil),
		}

		payload, err := exportLIDO(rows, batch.FieldLabels(rows), "B1")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		out := string(payload)

		// The actor must sit inside the event block, not at top level.
		eventStart := strings.Index(out, "<lido:event>")
		eventEnd := strings.Index(out, "</lido:event>")
		actor := strings.Index(out, "<lido:eventActor>")
		if eventStart == -1 || actor == -1 || !(eventStart < actor && actor < eventEnd) {
			t.Error("actor block must nest inside the event")
		}
		if !strings.Contains(out, `<lido:workID lido:type="inventory number">T 1234</lido:workID>`) {
			t.Error("missing inventory number")
		}
		if !strings.Contains(out, "<lido:displayDate>1721</lido:displayDate>") {
			t.Error("missing event date")
		}
	})

	t.Run("no event block without creator, date or place", func(t *testing.T) {
		rows := []*batch.ResultRow{
			testRow("card2.jpg", batch.Fields{{Name: "Titel", Value: "X"}}, nil),
		}

		payload, err := exportLIDO(rows, batch.FieldLabels(rows), "B1")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if strings.Contains(string(payload), "<lido:eventWrap>") {
			t.Error("event block should be omitted")
		}
	})

	t.Run("title falls back to filename", func(t *testing.T) {
		rows := []*batch.ResultRow{
			testRow("card3.jpg", batch.Fields{{Name: "Komponist", Value: "Bach"}}, nil),
		}

		payload, err := exportLIDO(rows, batch.FieldLabels(rows), "B1")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if !strings.Contains(string(payload), `<lido:appellationValue xml:lang="de">card3.jpg</lido:appellationValue>`) {
			t.Error("missing filename fallback title")
		}
	})

	t.Run("every field repeated as description", func(t *testing.T) {
		rows := []*batch.ResultRow{
			testRow("card4.jpg", batch.Fields{
				{Name: "Titel", Value: "X"},
				{Name: "Bandsorte", Value: "BASF LGS"},
			}, nil),
		}

		payload, err := exportLIDO(rows, batch.FieldLabels(rows), "B1")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if !strings.Contains(string(payload), `<lido:objectDescriptionSet lido:type="Bandsorte">`) {
			t.Error("unmapped field should still appear as a description set")
		}
	})
}
