package export

import (
	"strings"
	"testing"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

func TestExportEAD(t *testing.T) {
	rows := []*batch.ResultRow{
		testRow("card1.jpg", batch.Fields{
			{Name: "Titel", Value: "Ouvertüre"},
			{Name: "Bestell-Nr.", Value: "T 99"},
			{Name: "Datum", Value: "12.3.1941"},
			{Name: "Spieldauer", Value: "8:15"},
			{Name: "Dirigent", Value: "Furtwängler"},
			{Name: "Bandsorte", Value: "AGFA"},
		}, nil),
	}

	payload, err := exportEAD(rows, batch.FieldLabels(rows), "B1")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	out := string(payload)

	t.Run("did slots", func(t *testing.T) {
		for _, want := range []string{
			"<unittitle>Ouvertüre</unittitle>",
			"<unitid>T 99</unitid>",
			"<unitdate>12.3.1941</unitdate>",
			"<physdesc><extent>8:15</extent></physdesc>",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %s", want)
			}
		}
	})

	t.Run("image link", func(t *testing.T) {
		if !strings.Contains(out, `<dao href="/batches-static/B1/card1.jpg" title="Ouvertüre" />`) {
			t.Error("missing dao link to source image")
		}
	})

	t.Run("other fields joined in odd block", func(t *testing.T) {
		if !strings.Contains(out, "<odd><p>Dirigent: Furtwängler | Bandsorte: AGFA</p></odd>") {
			t.Errorf("odd block wrong:\n%s", out)
		}
	})

	t.Run("collection header", func(t *testing.T) {
		if !strings.Contains(out, "<eadid>B1</eadid>") {
			t.Error("missing eadid")
		}
		if !strings.Contains(out, "<titleproper>Archival Finding Aid: B1</titleproper>") {
			t.Error("missing title statement")
		}
	})
}
