package chat_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sheetsql/sheetsql/domain/app"

	"github.com/init-pkg/nova/errs"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"
)

// ChatService answers messages from the fixed template table. When no
// keyword matches and a semantic search is configured, it falls back to a
// kNN lookup over the template index.
type ChatService struct {
	semantic  *SemanticTemplateSearch
	templates []QueryTemplate
	log       *slog.Logger
}

var _ app.ChatService = &ChatService{}

func New(semantic *SemanticTemplateSearch, log *slog.Logger) *ChatService {
	return &ChatService{
		semantic:  semantic,
		templates: BuiltinTemplates(),
		log:       log,
	}
}

func (this *ChatService) Reply(ctx nova_ctx.Ctx, message string) (*app.ChatReply, errs.Error) {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return nil, errs.WrapAppError(errors.New("message is empty"), &errs.ErrorOpts{})
	}

	if tpl, ok := this.matchKeyword(normalized); ok {
		this.log.Info("chat keyword match", "template", tpl.ID)
		return &app.ChatReply{
			Answer:   tpl.Answer,
			SQL:      tpl.SQL,
			Template: tpl.ID,
			Match:    app.ChatMatchKeyword,
		}, nil
	}

	if this.semantic != nil {
		lookupCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		hit, err := this.semantic.FindBestTemplate(lookupCtx, message)
		if err != nil {
			// Semantic lookup is best effort; a keyword miss plus a search
			// failure still yields a usable "no match" reply.
			this.log.Warn("semantic template search failed", "error", err)
		} else if hit != nil {
			this.log.Info("chat semantic match", "template", hit.Template.ID, "score", hit.Score)
			return &app.ChatReply{
				Answer:   hit.Template.Answer,
				SQL:      hit.Template.SQL,
				Template: hit.Template.ID,
				Match:    app.ChatMatchSemantic,
				Score:    hit.Score,
			}, nil
		}
	}

	return &app.ChatReply{
		Answer: "I don't have a canned query for that. Try asking about counts, previews, top N, grouping, duplicates, missing values, date ranges, joins, distinct values or averages — or upload a workbook and generate a query from its knowledge base.",
		Match:  app.ChatMatchNone,
	}, nil
}

// matchKeyword returns the first template with a keyword contained in the
// normalized message. Template order is the priority order.
func (this *ChatService) matchKeyword(normalized string) (QueryTemplate, bool) {
	for _, tpl := range this.templates {
		for _, kw := range tpl.Keywords {
			if strings.Contains(normalized, kw) {
				return tpl, true
			}
		}
	}
	return QueryTemplate{}, false
}
