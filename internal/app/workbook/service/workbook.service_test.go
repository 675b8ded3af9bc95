package workbook_service

import (
	"log/slog"
	"strings"
	"testing"

	nova_ctx "github.com/init-pkg/nova/shared/ctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, cells map[string]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for axis, value := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", axis, value))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseSerializesUsedRange(t *testing.T) {
	svc := New(slog.Default())

	file := buildWorkbook(t, map[string]any{
		"A1": "id",
		"B1": "name",
		"A2": 1,
		"B2": "widget",
	})

	res, err := svc.Parse(nova_ctx.New(), file)
	require.Nil(t, err)
	require.Len(t, res.Sheets, 1)

	got := res.Sheets[0]
	assert.Equal(t, "Sheet1", got.Name)
	assert.Equal(t, "A1:B2", got.Range)
	assert.Equal(t, 4, got.CellCount)
	assert.Equal(t, "id\tname\t\n1\twidget\t\n", got.Text)
}

func TestParseSparseSheetKeepsRowStructure(t *testing.T) {
	svc := New(slog.Default())

	// Value only in C3: rows 1 and 2 serialize as blank lines.
	file := buildWorkbook(t, map[string]any{"C3": "x"})

	res, err := svc.Parse(nova_ctx.New(), file)
	require.Nil(t, err)
	require.Len(t, res.Sheets, 1)

	got := res.Sheets[0]
	assert.Equal(t, "A1:C3", got.Range)
	assert.Equal(t, 1, got.CellCount)
	assert.Equal(t, "\n\nx\t\n", got.Text)
}

func TestParseExpandsMergedCells(t *testing.T) {
	svc := New(slog.Default())

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "region"))
	require.NoError(t, f.MergeCell("Sheet1", "A1", "B2"))
	buf, werr := f.WriteToBuffer()
	require.NoError(t, werr)
	require.NoError(t, f.Close())

	res, err := svc.Parse(nova_ctx.New(), buf.Bytes())
	require.Nil(t, err)
	require.Len(t, res.Sheets, 1)

	got := res.Sheets[0]
	assert.Equal(t, "A1:B2", got.Range)
	assert.Equal(t, 4, got.CellCount)
	assert.Equal(t, "region\tregion\t\nregion\tregion\t\n", got.Text)
}

func TestParseRejectsNonWorkbookBytes(t *testing.T) {
	svc := New(slog.Default())

	_, err := svc.Parse(nova_ctx.New(), []byte("definitely not a zip archive"))
	assert.NotNil(t, err)
}

func TestParseRejectsWorkbookWithOnlyEmptySheets(t *testing.T) {
	svc := New(slog.Default())

	f := excelize.NewFile()
	buf, werr := f.WriteToBuffer()
	require.NoError(t, werr)
	require.NoError(t, f.Close())

	_, err := svc.Parse(nova_ctx.New(), buf.Bytes())
	assert.NotNil(t, err)
}

func TestParseTrimsCellWhitespace(t *testing.T) {
	svc := New(slog.Default())

	file := buildWorkbook(t, map[string]any{
		"A1": "  padded  ",
		"B1": "   ",
	})

	res, err := svc.Parse(nova_ctx.New(), file)
	require.Nil(t, err)

	got := res.Sheets[0]
	assert.Equal(t, 1, got.CellCount)
	assert.True(t, strings.HasPrefix(got.Text, "padded\t"))
}
