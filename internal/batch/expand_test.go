package batch

import (
	"fmt"
	"testing"
)

func ledgerRow(entriesJSON string) *ResultRow {
	return &ResultRow{
		Filename: "page1.jpg",
		Status:   StatusSuccess,
		Data: Fields{
			{Name: EntriesKey, Value: entriesJSON},
			{Name: "Datei", Value: "page1.jpg"},
		},
		EditedData: map[string]string{},
	}
}

func TestExpand(t *testing.T) {
	fields := []string{"Titel", "Komponist"}

	t.Run("no reserved key yields one record", func(t *testing.T) {
		row := &ResultRow{
			Filename: "card1.jpg",
			Status:   StatusSuccess,
			Data: Fields{
				{Name: "Titel", Value: "Sonata"},
				{Name: "Komponist", Value: "Bach"},
			},
			EditedData: map[string]string{"Komponist": "J. S. Bach"},
		}

		entries, ledger := Expand(row, fields)
		if ledger {
			t.Error("plain card should not be recognized as ledger")
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Label() != "" {
			t.Errorf("expected empty label, got %q", entries[0].Label())
		}
		// Fallback entries carry resolved (post-review) values.
		if v := entries[0].Fields.Value("Komponist"); v != "J. S. Bach" {
			t.Errorf("expected resolved value, got %q", v)
		}
	})

	t.Run("ledger page yields N entries", func(t *testing.T) {
		row := ledgerRow(`[{"Nr.":"1"},{"Nr.":"2"},{"Nr.":"3"}]`)

		entries, ledger := Expand(row, fields)
		if !ledger {
			t.Error("expected ledger page")
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		for i, e := range entries {
			want := fmt.Sprintf("%d / 3", i+1)
			if e.Label() != want {
				t.Errorf("entry %d: expected label %q, got %q", i, want, e.Label())
			}
			if v := e.Fields.Value("Nr."); v != fmt.Sprintf("%d", i+1) {
				t.Errorf("entry %d: expected own field map, got Nr.=%q", i, v)
			}
		}
	})

	t.Run("unparsable payload falls back to single record", func(t *testing.T) {
		row := ledgerRow(`{not json`)

		entries, ledger := Expand(row, []string{"Datei"})
		if ledger {
			t.Error("parse failure must not count as ledger")
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 fallback entry, got %d", len(entries))
		}
		if v := entries[0].Fields.Value("Datei"); v != "page1.jpg" {
			t.Errorf("fallback entry should carry page fields, got %q", v)
		}
	})

	t.Run("empty entry list", func(t *testing.T) {
		entries, ledger := Expand(ledgerRow(`[]`), fields)
		if !ledger {
			t.Error("empty ledger is still a ledger")
		}
		if len(entries) != 0 {
			t.Errorf("expected no entries, got %d", len(entries))
		}
	})
}

func TestExpandAll(t *testing.T) {
	fields := []string{"Titel"}
	rows := []*ResultRow{
		{
			Filename:   "card1.jpg",
			Status:     StatusSuccess,
			Data:       Fields{{Name: "Titel", Value: "X"}},
			EditedData: map[string]string{},
		},
		ledgerRow(`[{"Nr.":"1"},{"Nr.":"2"}]`),
		ledgerRow(`[]`),
	}

	records := ExpandAll(rows, fields)
	if len(records) != 4 {
		t.Fatalf("expected 4 display records, got %d", len(records))
	}

	if records[0].Label != "" || records[0].SourceFile != "card1.jpg" {
		t.Errorf("record 0: expected pass-through, got %+v", records[0])
	}
	if records[1].Label != "1 / 2" || records[2].Label != "2 / 2" {
		t.Errorf("ledger records: expected ordinal labels, got %q and %q",
			records[1].Label, records[2].Label)
	}
	if !records[3].NoEntries {
		t.Error("empty ledger should yield a degenerate record")
	}
}
