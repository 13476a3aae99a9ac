package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

func TestExportXLSX(t *testing.T) {
	rows := []*batch.ResultRow{
		{
			Filename: "card1.jpg",
			Status:   batch.StatusSuccess,
			Duration: 2.5,
			Data: batch.Fields{
				{Name: "Titel", Value: "Sonata"},
				{Name: "Komponist", Value: "Bach"},
			},
			EditedData: map[string]string{"Titel": "Sonate"},
		},
		{
			Filename:   "card2.jpg",
			Status:     batch.StatusFailed,
			Error:      "unreadable scan",
			EditedData: map[string]string{},
		},
	}

	payload, err := exportXLSX(rows, batch.FieldLabels(rows), "B1")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("emitted workbook does not open: %v", err)
	}
	defer f.Close()

	t.Run("results sheet mirrors the CSV table", func(t *testing.T) {
		got, err := f.GetRows("Results")
		if err != nil {
			t.Fatalf("failed to read Results sheet: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected header + 2 rows, got %d", len(got))
		}

		wantHeader := []string{"File", "Status", "Error", "Duration(s)", "Titel_ocr", "Titel_edited", "Komponist_ocr", "Komponist_edited"}
		for i, h := range wantHeader {
			if got[0][i] != h {
				t.Errorf("header[%d] = %q, want %q", i, got[0][i], h)
			}
		}
		if got[1][0] != "card1.jpg" || got[1][4] != "Sonata" || got[1][5] != "Sonate" {
			t.Errorf("success row mismatch: %v", got[1])
		}
		if got[2][1] != "failed" || got[2][2] != "unreadable scan" {
			t.Errorf("failed row mismatch: %v", got[2])
		}
	})

	t.Run("reviewed sheet resolves corrections", func(t *testing.T) {
		got, err := f.GetRows("Reviewed")
		if err != nil {
			t.Fatalf("failed to read Reviewed sheet: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected header + 2 rows, got %d", len(got))
		}
		if got[1][1] != "Sonate" {
			t.Errorf("reviewed Titel = %q, want the corrected value", got[1][1])
		}
		if got[1][2] != "Bach" {
			t.Errorf("reviewed Komponist = %q, want the recognized value", got[1][2])
		}
	})

	t.Run("default sheet removed", func(t *testing.T) {
		for _, name := range f.GetSheetList() {
			if name == "Sheet1" {
				t.Error("default sheet should be dropped")
			}
		}
	})
}
