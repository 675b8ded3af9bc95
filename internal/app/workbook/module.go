package workbook_module

import (
	"github.com/sheetsql/sheetsql/domain/app"
	workbook_service "github.com/sheetsql/sheetsql/internal/app/workbook/service"
	workbook_http_handler "github.com/sheetsql/sheetsql/internal/app/workbook/transports/http"

	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(workbook_service.New, fx.As(new(app.WorkbookService))),
		workbook_http_handler.New,
	)
}
