package dtos

type ChatMessageRequest struct {
	Message string `form:"message" json:"message" validate:"required"`
}
