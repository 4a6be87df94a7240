package analysis

import (
	"strings"

	"pcoslens/domain/dataset"
)

// CountMissing counts, for every column of the row-0 schema, the rows whose
// value is absent, blank after trimming, or one of the blank tokens.
// Every schema column gets an entry, zero counts included.
func CountMissing(ds *dataset.Dataset) (map[string]int, []string) {
	columns := ds.Schema()
	counts := make(map[string]int, len(columns))
	for _, col := range columns {
		n := 0
		for _, row := range ds.Rows {
			raw, ok := row.Lookup(col)
			if !ok || isBlank(strings.TrimSpace(raw)) {
				n++
			}
		}
		counts[col] = n
	}
	return counts, columns
}
