package bootstrap

import (
	chat_module "github.com/sheetsql/sheetsql/internal/app/chat"
	knowledge_module "github.com/sheetsql/sheetsql/internal/app/knowledge"
	querygen_module "github.com/sheetsql/sheetsql/internal/app/querygen"
	workbook_module "github.com/sheetsql/sheetsql/internal/app/workbook"

	"go.uber.org/fx"
)

func appOptions() fx.Option {
	return fx.Options(
		workbook_module.Register(),
		knowledge_module.Register(),
		chat_module.Register(),
		querygen_module.Register(),

		fx.Invoke(
			registerRoutes,
		),
	)
}
