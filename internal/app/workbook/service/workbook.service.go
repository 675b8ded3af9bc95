package workbook_service

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"

	"github.com/sheetsql/sheetsql/domain/app"
	"github.com/sheetsql/sheetsql/internal/sheet"

	"github.com/init-pkg/nova/errs"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"

	"github.com/xuri/excelize/v2"
)

// WorkbookService turns an uploaded workbook into per-sheet prompt text.
type WorkbookService struct {
	log *slog.Logger
}

var _ app.WorkbookService = &WorkbookService{}

func New(log *slog.Logger) *WorkbookService {
	return &WorkbookService{log}
}

func (this *WorkbookService) Parse(ctx nova_ctx.Ctx, file []byte) (*app.ParseWorkbookResult, errs.Error) {
	res, err := this.parse(file)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	return res, nil
}

func (this *WorkbookService) parse(file []byte) (*app.ParseWorkbookResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sheets []*app.SerializedSheet
	for _, name := range f.GetSheetList() {
		s, used, err := sheetFromFile(f, name)
		if err != nil {
			this.log.Error("failed to read sheet", "sheet", name, "error", err)
			continue
		}
		if len(s) == 0 {
			this.log.Info("skipping empty sheet", "sheet", name)
			continue
		}

		text, err := sheet.Serialize(s, used)
		if err != nil {
			return nil, err
		}

		sheets = append(sheets, &app.SerializedSheet{
			Name:      name,
			Range:     used.Start.String() + ":" + used.End.String(),
			Text:      text,
			CellCount: len(s),
		})

		this.log.Info("serialized sheet",
			"sheet", name,
			"range", used.Start.String()+":"+used.End.String(),
			"cells", len(s))
	}

	if len(sheets) == 0 {
		return nil, errors.New("workbook contains no non-empty sheets")
	}

	return &app.ParseWorkbookResult{Sheets: sheets}, nil
}

// sheetFromFile builds the sparse sheet model and its used range. Merged
// cells are expanded so every covered address carries the merge value.
func sheetFromFile(f *excelize.File, name string) (sheet.Sheet, sheet.Range, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, sheet.Range{}, err
	}

	s := sheet.Sheet{}
	maxCol, maxRow := 0, 0
	for i, row := range rows {
		for j, cell := range row {
			val := strings.TrimSpace(cell)
			if val == "" {
				continue
			}
			s.Set(sheet.Address{Col: j + 1, Row: i + 1}, val)
			if j+1 > maxCol {
				maxCol = j + 1
			}
			if i+1 > maxRow {
				maxRow = i + 1
			}
		}
	}

	merges, err := f.GetMergeCells(name)
	if err != nil {
		return nil, sheet.Range{}, err
	}
	for _, merge := range merges {
		val := strings.TrimSpace(merge.GetCellValue())
		if val == "" {
			continue
		}
		startCol, startRow, err := excelize.CellNameToCoordinates(merge.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(merge.GetEndAxis())
		if err != nil {
			continue
		}
		for r := startRow; r <= endRow; r++ {
			for c := startCol; c <= endCol; c++ {
				s.Set(sheet.Address{Col: c, Row: r}, val)
			}
		}
		if endCol > maxCol {
			maxCol = endCol
		}
		if endRow > maxRow {
			maxRow = endRow
		}
	}

	if len(s) == 0 {
		return s, sheet.Range{}, nil
	}

	used := sheet.Range{
		Start: sheet.Address{Col: 1, Row: 1},
		End:   sheet.Address{Col: maxCol, Row: maxRow},
	}
	return s, used, nil
}
