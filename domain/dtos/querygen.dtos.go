package dtos

import "github.com/sheetsql/sheetsql/domain/app"

type GenerateQueryRequest struct {
	Question  string            `json:"question" validate:"required"`
	Knowledge app.KnowledgeBase `json:"knowledge" validate:"required"`
}
