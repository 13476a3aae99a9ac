package batch

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc, err := Parse([]byte(`{
			"name": "Tonband-Karteikarten",
			"results": [
				{
					"filename": "card1.jpg",
					"status": "success",
					"duration": 4.2,
					"data": {"Titel": "Sonata", "Komponist": "Bach"},
					"editedData": {"Komponist": "J. S. Bach"}
				},
				{
					"filename": "card2.jpg",
					"status": "failed",
					"error": "model timeout",
					"data": {}
				}
			]
		}`))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if doc.Name != "Tonband-Karteikarten" {
			t.Errorf("expected batch name, got %q", doc.Name)
		}
		if len(doc.Results) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(doc.Results))
		}
		if doc.Results[0].Data.Names()[0] != "Titel" {
			t.Errorf("expected Titel first, got %q", doc.Results[0].Data.Names()[0])
		}
		if doc.Results[1].EditedData == nil {
			t.Error("editedData should default to an empty map")
		}
		if doc.Results[1].Succeeded() {
			t.Error("failed row reported as succeeded")
		}
	})

	t.Run("bare array accepted", func(t *testing.T) {
		doc, err := Parse([]byte(`[{"filename":"a.jpg","status":"success","data":{}}]`))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if doc.Name != "" || len(doc.Results) != 1 {
			t.Errorf("unexpected document: %+v", doc)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := Parse([]byte(`{"results":[{"filename":"a.jpg","status":"pending","data":{}}]}`))
		if err == nil {
			t.Fatal("expected schema violation")
		}
		if !strings.Contains(err.Error(), "schema") {
			t.Errorf("expected schema error, got: %v", err)
		}
	})

	t.Run("rejects missing filename", func(t *testing.T) {
		if _, err := Parse([]byte(`{"results":[{"status":"success","data":{}}]}`)); err == nil {
			t.Fatal("expected schema violation")
		}
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		if _, err := Parse([]byte(`{"results": [`)); err == nil {
			t.Fatal("expected error for truncated document")
		}
	})
}
