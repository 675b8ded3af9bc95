package sheet

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidFormat reports column letters outside A-Z or an empty input.
	ErrInvalidFormat = errors.New("sheet: invalid column letters")

	// ErrInvalidArgument reports a non-positive column index.
	ErrInvalidArgument = errors.New("sheet: column index must be >= 1")

	// ErrInvalidRange reports a range whose start exceeds its end.
	ErrInvalidRange = errors.New("sheet: range start exceeds range end")
)

// Address identifies one cell. Column and Row are 1-based.
type Address struct {
	Col int
	Row int
}

// String renders the address in A1 notation, e.g. {Col: 28, Row: 3} -> "AB3".
// Invalid addresses render as an empty string.
func (a Address) String() string {
	letters, err := ColumnLetters(a.Col)
	if err != nil || a.Row < 1 {
		return ""
	}
	return letters + strconv.Itoa(a.Row)
}

// Range is an inclusive rectangular region between Start and End.
type Range struct {
	Start Address
	End   Address
}

// Validate checks that Start <= End component-wise.
func (r Range) Validate() error {
	if r.Start.Col > r.End.Col || r.Start.Row > r.End.Row {
		return ErrInvalidRange
	}
	if r.Start.Col < 1 || r.Start.Row < 1 {
		return ErrInvalidRange
	}
	return nil
}

// ColumnIndex converts column letters to their 1-based index in the
// bijective base-26 alphabetic numbering (A=1 ... Z=26, AA=27).
func ColumnIndex(letters string) (int, error) {
	if letters == "" {
		return 0, ErrInvalidFormat
	}
	index := 0
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c < 'A' || c > 'Z' {
			return 0, ErrInvalidFormat
		}
		index = index*26 + int(c-'A'+1)
	}
	return index, nil
}

// ColumnLetters converts a 1-based column index back to letters.
// The decrement before each division compensates for the missing zero
// digit of the bijective numbering.
func ColumnLetters(index int) (string, error) {
	if index < 1 {
		return "", ErrInvalidArgument
	}
	var buf [8]byte
	i := len(buf)
	for index > 0 {
		index--
		i--
		buf[i] = byte('A' + index%26)
		index /= 26
	}
	return string(buf[i:]), nil
}
