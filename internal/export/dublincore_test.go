package export

import (
	"strings"
	"testing"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

func TestExportDublinCore(t *testing.T) {
	rows := []*batch.ResultRow{
		testRow("card1.jpg", batch.Fields{
			{Name: "Titel", Value: "Arie"},
			{Name: "Komponist", Value: "Händel"},
			{Name: "Dirigent", Value: "Karajan"},
			{Name: "Orchester", Value: "Philharmoniker"},
			{Name: "Bandsorte", Value: "BASF"},
			{Name: "Spieldauer", Value: "4:10"},
		}, nil),
	}

	payload, err := exportDublinCore(rows, batch.FieldLabels(rows), "B1")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	out := string(payload)

	t.Run("alias mapping", func(t *testing.T) {
		for _, want := range []string{
			"<dc:title>Arie</dc:title>",
			"<dc:creator>Händel</dc:creator>",
			"<dc:contributor>Karajan</dc:contributor>",
			"<dc:contributor>Philharmoniker</dc:contributor>",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %s", want)
			}
		}
	})

	t.Run("unclaimed fields concatenated", func(t *testing.T) {
		if !strings.Contains(out, "<dc:description>Bandsorte: BASF; Spieldauer: 4:10</dc:description>") {
			t.Errorf("description concat wrong:\n%s", out)
		}
	})

	t.Run("constant elements", func(t *testing.T) {
		for _, want := range []string{
			"<dc:source>B1</dc:source>",
			"<dc:type>Sound</dc:type>",
			"<dc:format>audio/x-tape-archive-card</dc:format>",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %s", want)
			}
		}
	})

	t.Run("filename identifier always first", func(t *testing.T) {
		rec := out[strings.Index(out, "<oai_dc:dc>"):]
		id := strings.Index(rec, "<dc:identifier>card1.jpg</dc:identifier>")
		title := strings.Index(rec, "<dc:title>")
		if id == -1 || title == -1 || id > title {
			t.Error("filename identifier should precede mapped elements")
		}
	})
}
