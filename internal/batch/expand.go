package batch

import "fmt"

// Entry is one logical sub-record of a scanned page. For ledger-style
// pages a single image yields many entries; for ordinary cards the page
// itself is the only entry. Index is 0-based internally; Label and
// record identifiers derived from it are 1-based.
type Entry struct {
	Fields Fields
	Index  int
	Total  int
}

// Label returns the ordinal display label "i / N", or "" for an entry
// that did not come from a ledger page.
func (e Entry) Label() string {
	if e.Total == 0 {
		return ""
	}
	return fmt.Sprintf("%d / %d", e.Index+1, e.Total)
}

// DisplayRecord is the flat, display-oriented view of an expanded batch:
// one record per logical entry with a back-reference to the source page.
type DisplayRecord struct {
	SourceFile string
	Label      string
	Fields     Fields
	// NoEntries marks a ledger page whose entry list decoded to an
	// empty array: the page is shown, but no entries were recognized.
	NoEntries bool
}

// Expand inspects a row for the reserved multi-entry payload and returns
// its logical entries plus whether the page was recognized as a ledger.
//
// Rows without the reserved key, or whose payload fails to decode, fall
// back to a single entry backed by the page's resolved field values,
// never an error. This one fallback policy is shared by every emitter
// that works at entry granularity. A ledger whose entry list is empty
// returns (nil, true): the page exists but holds no entries.
func Expand(row *ResultRow, fields []string) ([]Entry, bool) {
	raw, ok := row.Data.Get(EntriesKey)
	if ok {
		parsed, err := ParseOrderedObjects([]byte(raw))
		if err == nil {
			if len(parsed) == 0 {
				return nil, true
			}
			entries := make([]Entry, len(parsed))
			for i, f := range parsed {
				entries[i] = Entry{Fields: f, Index: i, Total: len(parsed)}
			}
			return entries, true
		}
	}

	resolved := make(Fields, 0, len(fields))
	for _, f := range fields {
		resolved = append(resolved, Field{Name: f, Value: Resolve(row, f)})
	}
	return []Entry{{Fields: resolved}}, false
}

// ExpandAll flattens a batch into display records: N records for a
// ledger page with N entries, one degenerate record for a ledger page
// with none, and one pass-through record for everything else.
func ExpandAll(rows []*ResultRow, fields []string) []DisplayRecord {
	var records []DisplayRecord
	for _, row := range rows {
		entries, ledger := Expand(row, fields)
		if ledger && len(entries) == 0 {
			records = append(records, DisplayRecord{
				SourceFile: row.Filename,
				NoEntries:  true,
			})
			continue
		}
		for _, e := range entries {
			records = append(records, DisplayRecord{
				SourceFile: row.Filename,
				Label:      e.Label(),
				Fields:     e.Fields,
			})
		}
	}
	return records
}
