package batch

import "testing"

func TestResolve(t *testing.T) {
	row := &ResultRow{
		Filename: "card1.jpg",
		Status:   StatusSuccess,
		Data: Fields{
			{Name: "Titel", Value: "Sonata"},
			{Name: "Komponist", Value: "Bach"},
		},
		EditedData: map[string]string{
			"Komponist": "J. S. Bach",
			"Datum":     "",
		},
	}

	t.Run("edited value wins", func(t *testing.T) {
		if v := Resolve(row, "Komponist"); v != "J. S. Bach" {
			t.Errorf("expected edited value, got %q", v)
		}
	})

	t.Run("extracted value when not reviewed", func(t *testing.T) {
		if v := Resolve(row, "Titel"); v != "Sonata" {
			t.Errorf("expected extracted value, got %q", v)
		}
	})

	t.Run("edited empty string overrides", func(t *testing.T) {
		if v := Resolve(row, "Datum"); v != "" {
			t.Errorf("expected empty override, got %q", v)
		}
	})

	t.Run("unknown field is empty", func(t *testing.T) {
		if v := Resolve(row, "Verlag"); v != "" {
			t.Errorf("expected empty string, got %q", v)
		}
	})
}

func TestFieldLabels(t *testing.T) {
	rows := []*ResultRow{
		{
			Filename: "a.jpg",
			Data: Fields{
				{Name: "Titel", Value: "X"},
				{Name: "_entries", Value: "[]"},
				{Name: "Komponist", Value: "Y"},
			},
		},
		{
			Filename: "b.jpg",
			Data: Fields{
				{Name: "Komponist", Value: "Z"},
				{Name: "Datum", Value: "1910"},
				{Name: "_entry_count", Value: "0"},
			},
		},
	}

	labels := FieldLabels(rows)
	want := []string{"Titel", "Komponist", "Datum"}
	if len(labels) != len(want) {
		t.Fatalf("expected %d labels, got %d: %v", len(want), len(labels), labels)
	}
	for i, l := range want {
		if labels[i] != l {
			t.Errorf("label %d: expected %q, got %q", i, l, labels[i])
		}
	}
}
