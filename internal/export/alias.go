package export

import "github.com/p5hema2/Indexcards-OCR/internal/batch"

// aliasPair binds one domain field label to a target schema term. Alias
// tables are ordered: iteration order determines output element order
// and which alias claims a field first.
type aliasPair struct {
	Field string
	Term  string
}

type aliasTable []aliasPair

// claim walks the table in order and calls emit for every alias whose
// field resolves to a non-empty value. It returns the set of field
// labels consumed, so the caller can route the rest to the dialect's
// fallback bucket. Each field is claimed at most once.
func (t aliasTable) claim(get func(string) string, emit func(term, value string)) map[string]bool {
	claimed := make(map[string]bool)
	for _, a := range t {
		if claimed[a.Field] {
			continue
		}
		if v := get(a.Field); v != "" {
			claimed[a.Field] = true
			emit(a.Term, v)
		}
	}
	return claimed
}

// unclaimedFields returns the non-empty fields the alias pass did not
// consume, in field-label order. These feed the fallback bucket.
func unclaimedFields(fields []string, claimed map[string]bool, get func(string) string) batch.Fields {
	var rest batch.Fields
	for _, f := range fields {
		if claimed[f] {
			continue
		}
		if v := get(f); v != "" {
			rest = append(rest, batch.Field{Name: f, Value: v})
		}
	}
	return rest
}

// firstNonEmpty returns the first candidate field that resolves to a
// non-empty value. Used where a schema slot has several label aliases.
func firstNonEmpty(get func(string) string, candidates ...string) string {
	for _, c := range candidates {
		if v := get(c); v != "" {
			return v
		}
	}
	return ""
}
