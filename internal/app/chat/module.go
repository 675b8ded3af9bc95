package chat_module

import (
	"github.com/sheetsql/sheetsql/domain/app"
	chat_service "github.com/sheetsql/sheetsql/internal/app/chat/service"
	chat_http_handler "github.com/sheetsql/sheetsql/internal/app/chat/transports/http"

	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		chat_service.NewSemanticTemplateSearch,
		fx.Annotate(chat_service.New, fx.As(new(app.ChatService))),
		chat_http_handler.New,
	)
}
