package querygen_module

import (
	"github.com/sheetsql/sheetsql/domain/app"
	querygen_service "github.com/sheetsql/sheetsql/internal/app/querygen/service"
	querygen_http_handler "github.com/sheetsql/sheetsql/internal/app/querygen/transports/http"

	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(querygen_service.New, fx.As(new(app.QueryGenService))),
		querygen_http_handler.New,
	)
}
