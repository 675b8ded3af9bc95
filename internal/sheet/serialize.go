package sheet

import (
	"strings"
)

// Serialize renders the inclusive rectangular region of the sheet as
// tab/newline delimited text, for embedding in a model prompt.
//
// Cells are visited row by row, left to right. A present cell contributes
// its value followed by a tab; an absent cell contributes nothing, so the
// tab count of a row tracks its filled cells rather than the column span.
// Every row ends with a newline, filled or not. The sheet is never mutated.
func Serialize(s Sheet, r Range) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		for col := r.Start.Col; col <= r.End.Col; col++ {
			if v, ok := s[Address{Col: col, Row: row}]; ok && v != nil {
				b.WriteString(formatValue(v))
				b.WriteByte('\t')
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
