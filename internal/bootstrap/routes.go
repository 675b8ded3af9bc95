package bootstrap

import (
	chat_http_handler "github.com/sheetsql/sheetsql/internal/app/chat/transports/http"
	knowledge_http_handler "github.com/sheetsql/sheetsql/internal/app/knowledge/transports/http"
	querygen_http_handler "github.com/sheetsql/sheetsql/internal/app/querygen/transports/http"
	workbook_http_handler "github.com/sheetsql/sheetsql/internal/app/workbook/transports/http"

	"github.com/gofiber/fiber/v3"
)

func registerRoutes(
	app *fiber.App,
	workbook *workbook_http_handler.WorkbookHttpHandler,
	knowledge *knowledge_http_handler.KnowledgeHttpHandler,
	chat *chat_http_handler.ChatHttpHandler,
	querygen *querygen_http_handler.QueryGenHttpHandler,
) {
	workbook.Register(app)
	knowledge.Register(app)
	chat.Register(app)
	querygen.Register(app)
}
