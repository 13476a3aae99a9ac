package export

import "testing"

func TestParseName(t *testing.T) {
	cases := []struct {
		in     string
		family string
		given  string
	}{
		{"Abbe, Ernst", "Abbe", "Ernst"},
		{"Müller", "Müller", ""},
		{"van der Berg,  Anna ", "van der Berg", "Anna"},
		{"Meyer, Hans, Jr.", "Meyer", "Hans, Jr."},
		{", Hans", ", Hans", ""},
		{"", "", ""},
	}

	for _, tc := range cases {
		got := ParseName(tc.in)
		if got.Family != tc.family || got.Given != tc.given {
			t.Errorf("ParseName(%q) = %+v, want family=%q given=%q", tc.in, got, tc.family, tc.given)
		}
	}
}

func TestSplitPersons(t *testing.T) {
	got := splitPersons("Snell; Schaeffer, K.;  ; Apolant")
	want := []string{"Snell", "Schaeffer, K.", "Apolant"}
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if out := splitPersons(""); out != nil {
		t.Errorf("empty input should yield no names, got %v", out)
	}
}
