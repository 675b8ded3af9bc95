package knowledge_http_handler

import (
	"github.com/sheetsql/sheetsql/domain/app"
	"github.com/sheetsql/sheetsql/domain/dtos"

	nova_ctx "github.com/init-pkg/nova/shared/ctx"

	"github.com/gofiber/fiber/v3"
)

type KnowledgeHttpHandler struct {
	service app.KnowledgeService
}

func New(service app.KnowledgeService) *KnowledgeHttpHandler {
	return &KnowledgeHttpHandler{service}
}

func (this *KnowledgeHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/knowledge")

	app.Post("/extract", this.extract)
}

func (this *KnowledgeHttpHandler) extract(fctx fiber.Ctx) error {
	var ctx = nova_ctx.Wrap(fctx.Context())

	var req dtos.KnowledgeExtractRequest
	if err := fctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Sheets) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "sheets are required")
	}

	sheets := make([]*app.SerializedSheet, 0, len(req.Sheets))
	for _, s := range req.Sheets {
		sheets = append(sheets, &app.SerializedSheet{Name: s.Name, Text: s.Text})
	}

	kb, e := this.service.Extract(ctx, sheets)
	if e != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, e.Error())
	}

	return fctx.JSON(kb)
}
