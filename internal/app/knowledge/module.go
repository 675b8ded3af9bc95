package knowledge_module

import (
	"github.com/sheetsql/sheetsql/domain/app"
	knowledge_service "github.com/sheetsql/sheetsql/internal/app/knowledge/service"
	knowledge_http_handler "github.com/sheetsql/sheetsql/internal/app/knowledge/transports/http"

	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(knowledge_service.New, fx.As(new(app.KnowledgeService))),
		knowledge_http_handler.New,
	)
}
