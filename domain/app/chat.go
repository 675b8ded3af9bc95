package app

import (
	"github.com/init-pkg/nova/errs"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"
)

const (
	ChatMatchKeyword  = "keyword"
	ChatMatchSemantic = "semantic"
	ChatMatchNone     = "none"
)

type ChatReply struct {
	Answer   string  `json:"answer"`
	SQL      string  `json:"sql,omitempty"`
	Template string  `json:"template,omitempty"`
	Match    string  `json:"match"`
	Score    float64 `json:"score,omitempty"`
}

type ChatService interface {
	Reply(ctx nova_ctx.Ctx, message string) (*ChatReply, errs.Error)
}
