package querygen_http_handler

import (
	"github.com/sheetsql/sheetsql/domain/app"
	"github.com/sheetsql/sheetsql/domain/dtos"

	nova_ctx "github.com/init-pkg/nova/shared/ctx"

	"github.com/gofiber/fiber/v3"
)

type QueryGenHttpHandler struct {
	service app.QueryGenService
}

func New(service app.QueryGenService) *QueryGenHttpHandler {
	return &QueryGenHttpHandler{service}
}

func (this *QueryGenHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/queries")

	app.Post("/generate", this.generate)
}

func (this *QueryGenHttpHandler) generate(fctx fiber.Ctx) error {
	var ctx = nova_ctx.Wrap(fctx.Context())

	var req dtos.GenerateQueryRequest
	if err := fctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Question == "" {
		return fiber.NewError(fiber.StatusBadRequest, "question is required")
	}

	result, e := this.service.Generate(ctx, &req.Knowledge, req.Question)
	if e != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, e.Error())
	}

	return fctx.JSON(result)
}
