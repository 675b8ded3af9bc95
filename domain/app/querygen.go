package app

import (
	"github.com/init-pkg/nova/errs"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"
)

type GeneratedQuery struct {
	SQL         string `json:"sql"`
	Explanation string `json:"explanation,omitempty"`
}

type QueryGenService interface {
	Generate(ctx nova_ctx.Ctx, kb *KnowledgeBase, question string) (*GeneratedQuery, errs.Error)
}
