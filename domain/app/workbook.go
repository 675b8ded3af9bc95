package app

import (
	"github.com/init-pkg/nova/errs"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"
)

// SerializedSheet is one worksheet rendered as tab/newline delimited text,
// ready for embedding in a model prompt.
type SerializedSheet struct {
	Name      string `json:"name"`
	Range     string `json:"range"`
	Text      string `json:"text"`
	CellCount int    `json:"cell_count"`
}

type ParseWorkbookResult struct {
	Sheets []*SerializedSheet `json:"sheets"`
}

type WorkbookService interface {
	Parse(ctx nova_ctx.Ctx, file []byte) (*ParseWorkbookResult, errs.Error)
}
