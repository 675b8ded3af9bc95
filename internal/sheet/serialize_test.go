package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeFrom(c1, r1, c2, r2 int) Range {
	return Range{Start: Address{Col: c1, Row: r1}, End: Address{Col: c2, Row: r2}}
}

// Absent cells contribute nothing, not even a placeholder tab; every row
// still terminates with a newline. This sparse layout is the documented
// contract for prompt text.
func TestSerializeSparseCellPolicy(t *testing.T) {
	s := Sheet{}
	s.Set(Address{Col: 1, Row: 1}, "x")

	out, err := Serialize(s, rangeFrom(1, 1, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, "x\t\n\n", out)
}

func TestSerializeFullGrid(t *testing.T) {
	s := Sheet{
		{Col: 1, Row: 1}: "id",
		{Col: 2, Row: 1}: "price",
		{Col: 1, Row: 2}: int64(7),
		{Col: 2, Row: 2}: 19.5,
	}

	out, err := Serialize(s, rangeFrom(1, 1, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, "id\tprice\t\n7\t19.5\t\n", out)
}

func TestSerializeSingleCellRange(t *testing.T) {
	s := Sheet{{Col: 2, Row: 3}: "only"}

	out, err := Serialize(s, rangeFrom(2, 3, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, "only\t\n", out)

	// Same range, absent cell: one blank line.
	out, err = Serialize(Sheet{}, rangeFrom(2, 3, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestSerializeEmptyRegion(t *testing.T) {
	out, err := Serialize(Sheet{}, rangeFrom(1, 1, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, "\n\n\n", out)
}

func TestSerializeScalarKinds(t *testing.T) {
	s := Sheet{
		{Col: 1, Row: 1}: "text",
		{Col: 2, Row: 1}: true,
		{Col: 3, Row: 1}: 42,
		{Col: 4, Row: 1}: 3.25,
	}

	out, err := Serialize(s, rangeFrom(1, 1, 4, 1))
	require.NoError(t, err)
	assert.Equal(t, "text\ttrue\t42\t3.25\t\n", out)
}

func TestSerializeInvalidRange(t *testing.T) {
	s := Sheet{{Col: 1, Row: 1}: "x"}

	_, err := Serialize(s, rangeFrom(2, 1, 1, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Serialize(s, rangeFrom(1, 2, 1, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSerializeIsIdempotentAndDoesNotMutate(t *testing.T) {
	s := Sheet{
		{Col: 1, Row: 1}: "a",
		{Col: 3, Row: 2}: "b",
	}
	r := rangeFrom(1, 1, 3, 2)

	first, err := Serialize(s, r)
	require.NoError(t, err)
	second, err := Serialize(s, r)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, s, 2)
	assert.Equal(t, "a", s[Address{Col: 1, Row: 1}])
}
