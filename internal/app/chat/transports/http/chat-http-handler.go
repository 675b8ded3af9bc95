package chat_http_handler

import (
	"github.com/sheetsql/sheetsql/domain/app"
	"github.com/sheetsql/sheetsql/domain/dtos"

	nova_ctx "github.com/init-pkg/nova/shared/ctx"

	"github.com/gofiber/fiber/v3"
)

type ChatHttpHandler struct {
	service app.ChatService
}

func New(service app.ChatService) *ChatHttpHandler {
	return &ChatHttpHandler{service}
}

func (this *ChatHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/chat")

	app.Post("/messages", this.message)
}

func (this *ChatHttpHandler) message(fctx fiber.Ctx) error {
	var ctx = nova_ctx.Wrap(fctx.Context())

	var req dtos.ChatMessageRequest
	if err := fctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}

	reply, e := this.service.Reply(ctx, req.Message)
	if e != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, e.Error())
	}

	return fctx.JSON(reply)
}
