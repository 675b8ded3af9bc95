package dtos

type SheetText struct {
	Name string `json:"name" validate:"required"`
	Text string `json:"text" validate:"required"`
}

type KnowledgeExtractRequest struct {
	Sheets []SheetText `json:"sheets" validate:"required"`
}
