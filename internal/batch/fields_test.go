package batch

import (
	"encoding/json"
	"testing"
)

func TestFields_OrderPreserved(t *testing.T) {
	raw := `{"Titel":"Sonata","Komponist":"Bach","Datum":"1723","Ort der Aufnahme":"Leipzig"}`

	var fields Fields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	want := []string{"Titel", "Komponist", "Datum", "Ort der Aufnahme"}
	names := fields.Names()
	if len(names) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("field %d: expected %q, got %q", i, name, names[i])
		}
	}

	// Round trip keeps the same order.
	out, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != raw {
		t.Errorf("round trip changed document:\n got %s\nwant %s", out, raw)
	}
}

func TestFields_Get(t *testing.T) {
	fields := Fields{
		{Name: "Titel", Value: "Sonata"},
		{Name: "Komponist", Value: ""},
	}

	t.Run("present", func(t *testing.T) {
		v, ok := fields.Get("Titel")
		if !ok || v != "Sonata" {
			t.Errorf("expected (Sonata, true), got (%q, %v)", v, ok)
		}
	})

	t.Run("present but empty", func(t *testing.T) {
		v, ok := fields.Get("Komponist")
		if !ok || v != "" {
			t.Errorf("expected (\"\", true), got (%q, %v)", v, ok)
		}
	})

	t.Run("absent", func(t *testing.T) {
		if _, ok := fields.Get("Datum"); ok {
			t.Error("expected absent field")
		}
		if v := fields.Value("Datum"); v != "" {
			t.Errorf("expected empty value, got %q", v)
		}
	})
}

func TestFields_NonStringValues(t *testing.T) {
	var fields Fields
	if err := json.Unmarshal([]byte(`{"Nr.":7,"Titel":"X"}`), &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if v := fields.Value("Nr."); v != "7" {
		t.Errorf("expected numeric value kept as text, got %q", v)
	}
}

func TestParseOrderedObjects(t *testing.T) {
	t.Run("preserves per-entry order", func(t *testing.T) {
		entries, err := ParseOrderedObjects([]byte(`[{"Nr.":"1","Jahr":"1921"},{"Jahr":"1922","Nr.":"2"}]`))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].Names()[0] != "Nr." {
			t.Errorf("entry 0: expected Nr. first, got %q", entries[0].Names()[0])
		}
		if entries[1].Names()[0] != "Jahr" {
			t.Errorf("entry 1: expected Jahr first, got %q", entries[1].Names()[0])
		}
	})

	t.Run("empty array", func(t *testing.T) {
		entries, err := ParseOrderedObjects([]byte(`[]`))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("expected no entries, got %d", len(entries))
		}
	})

	t.Run("not an array", func(t *testing.T) {
		if _, err := ParseOrderedObjects([]byte(`{"Nr.":"1"}`)); err == nil {
			t.Error("expected error for non-array payload")
		}
	})
}
