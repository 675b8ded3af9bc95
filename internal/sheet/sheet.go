package sheet

import (
	"fmt"
	"strconv"
)

// Value is a scalar cell value: string, bool, int, int64 or float64.
// A nil Value behaves like an absent cell.
type Value interface{}

// Sheet is a sparse mapping from cell address to value. Addresses not
// present in the map are empty cells.
type Sheet map[Address]Value

// Set stores a value. Nil values are dropped so lookups stay uniform.
func (s Sheet) Set(a Address, v Value) {
	if v == nil {
		return
	}
	s[a] = v
}

// formatValue renders a scalar the way it would appear in a cell.
func formatValue(v Value) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
