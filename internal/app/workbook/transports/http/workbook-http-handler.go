package workbook_http_handler

import (
	"io"

	"github.com/sheetsql/sheetsql/domain/app"

	nova_ctx "github.com/init-pkg/nova/shared/ctx"

	"github.com/gofiber/fiber/v3"
)

type WorkbookHttpHandler struct {
	service app.WorkbookService
}

func New(service app.WorkbookService) *WorkbookHttpHandler {
	return &WorkbookHttpHandler{service}
}

func (this *WorkbookHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/workbooks")

	app.Post("/parse", this.parse)
}

func (this *WorkbookHttpHandler) parse(fctx fiber.Ctx) error {
	var ctx = nova_ctx.Wrap(fctx.Context())

	fileHeader, err := fctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot read uploaded file")
	}

	res, e := this.service.Parse(ctx, data)
	if e != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, e.Error())
	}

	return fctx.JSON(res)
}
