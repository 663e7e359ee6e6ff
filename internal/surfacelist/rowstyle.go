package surfacelist

// RowStyle is the zebra stripe assigned to a row when it is appended.
type RowStyle string

const (
	RowOdd  RowStyle = "odd"
	RowEven RowStyle = "even"
)

// RowStyler hands out alternating row styles, starting with RowOdd.
type RowStyler struct {
	count int
}

// Next returns the style for the next appended row.
func (r *RowStyler) Next() RowStyle {
	style := RowEven
	if r.count&1 == 0 {
		style = RowOdd
	}
	r.count++
	return style
}

// Count reports how many styles have been handed out.
func (r *RowStyler) Count() int {
	return r.count
}
