package export

import "strings"

// PersonName is a name split into family and given parts.
type PersonName struct {
	Family string
	Given  string
}

// ParseName splits a name string on the first comma into family and
// given parts ("Bach, Johann Sebastian"). A name without a comma, or
// with a leading comma, is treated entirely as a family name. The
// heuristic mirrors common library cataloging input and is wrong for
// names written given-first; callers that need better should not use
// this.
func ParseName(s string) PersonName {
	idx := strings.Index(s, ",")
	if idx <= 0 {
		return PersonName{Family: strings.TrimSpace(s)}
	}
	return PersonName{
		Family: strings.TrimSpace(s[:idx]),
		Given:  strings.TrimSpace(s[idx+1:]),
	}
}

// splitPersons splits a semicolon-delimited list of names, dropping
// empty segments.
func splitPersons(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
