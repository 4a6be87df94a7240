package dataset

// DiagnosisColumn is the binary label column of the PCOS dataset.
const DiagnosisColumn = "PCOS (Y/N)"

// positiveTokens are the exact diagnosis values that mark a positive record.
var positiveTokens = map[string]struct{}{"Y": {}, "1": {}}

// Record is one input row: column name to raw cell text.
// A column that is not a key is absent for this row.
type Record map[string]string

// Lookup returns the raw value of column and whether the row carries it at all.
func (r Record) Lookup(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}

// Has reports whether the row carries column.
func (r Record) Has(column string) bool {
	_, ok := r[column]
	return ok
}

// Label is the diagnostic class of a record
type Label int

const (
	Negative Label = iota
	Positive
)

func (l Label) String() string {
	if l == Positive {
		return "positive"
	}
	return "negative"
}

// LabelOf classifies a record. Anything other than an exact positive token,
// including an absent diagnosis column, is negative.
func LabelOf(r Record) Label {
	v, ok := r.Lookup(DiagnosisColumn)
	if !ok {
		return Negative
	}
	if _, positive := positiveTokens[v]; positive {
		return Positive
	}
	return Negative
}

// Dataset is the loaded table, rows in file order.
type Dataset struct {
	Source  string   // path the rows were read from
	Headers []string // header row, file order
	Rows    []Record
}

// Len returns the number of data rows
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// Schema returns the columns carried by the first row, in header order.
// Columns missing from row 0 are treated as absent for the whole dataset.
func (d *Dataset) Schema() []string {
	if d.Len() == 0 {
		return nil
	}
	first := d.Rows[0]
	schema := make([]string, 0, len(first))
	seen := make(map[string]struct{}, len(first))
	for _, h := range d.Headers {
		if _, dup := seen[h]; dup {
			continue
		}
		if first.Has(h) {
			schema = append(schema, h)
			seen[h] = struct{}{}
		}
	}
	return schema
}

// HasColumn reports whether column is part of the schema probed from row 0.
func (d *Dataset) HasColumn(column string) bool {
	if d.Len() == 0 {
		return false
	}
	return d.Rows[0].Has(column)
}
