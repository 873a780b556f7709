package figure

// TableRow is one row of the table view: the 1-based position in the derived
// sequence and the value at that position.
type TableRow struct {
	Index int
	Value float64
}

// BuildTableRows converts a (possibly sorted) sequence into table rows. The
// index reflects the position after ordering, matching what is shown.
func BuildTableRows(values []float64) []TableRow {
	rows := make([]TableRow, len(values))
	for i, v := range values {
		rows[i] = TableRow{Index: i + 1, Value: v}
	}
	return rows
}
