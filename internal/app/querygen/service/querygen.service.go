package querygen_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sheetsql/sheetsql/domain/app"
	"github.com/sheetsql/sheetsql/internal/config"
	"github.com/sheetsql/sheetsql/internal/llmjson"

	"github.com/init-pkg/nova/errs"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"

	"github.com/openai/openai-go/v2"
)

// QueryGenService generates read-only SQL from an extracted knowledge base
// and a natural-language question.
type QueryGenService struct {
	openaiClient *openai.Client
	model        string
	temperature  float64
	maxTokens    int64
	ctxTimeout   time.Duration
	log          *slog.Logger
}

var _ app.QueryGenService = &QueryGenService{}

func New(openaiClient *openai.Client, cfg *config.Config, log *slog.Logger) *QueryGenService {
	return &QueryGenService{
		openaiClient: openaiClient,
		model:        cfg.Clients.OpenAI.Model,
		temperature:  cfg.Clients.OpenAI.Temperature,
		maxTokens:    cfg.Clients.OpenAI.MaxTokens,
		ctxTimeout:   45 * time.Second,
		log:          log,
	}
}

func (this *QueryGenService) Generate(ctx nova_ctx.Ctx, kb *app.KnowledgeBase, question string) (*app.GeneratedQuery, errs.Error) {
	q, err := this.generate(kb, question)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	return q, nil
}

func (this *QueryGenService) generate(kb *app.KnowledgeBase, question string) (*app.GeneratedQuery, error) {
	if kb == nil || len(kb.Tables) == 0 {
		return nil, errors.New("knowledge base has no tables")
	}
	if strings.TrimSpace(question) == "" {
		return nil, errors.New("question is empty")
	}

	user, err := buildGenerationPrompt(kb, question)
	if err != nil {
		return nil, fmt.Errorf("build generation prompt: %w", err)
	}

	callCtx, cancel := context.WithTimeout(context.Background(), this.ctxTimeout)
	defer cancel()

	chat, err := this.openaiClient.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(this.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(sqlGeneratorSystemPrompt),
			openai.UserMessage(user),
		},
		Temperature:         openai.Float(this.temperature),
		MaxCompletionTokens: openai.Int(this.maxTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}

	if len(chat.Choices) == 0 {
		return nil, errors.New("openai: empty choices")
	}

	result, err := decodeGeneratedQuery(chat.Choices[0].Message.Content)
	if err != nil {
		this.log.Error("failed to decode generated query", "error", err)
		return nil, err
	}

	this.log.Info("generated query", "question", question, "sql", result.SQL)
	return result, nil
}

// decodeGeneratedQuery recovers {sql, explanation} from the completion.
// Models regularly wrap the JSON in a fence or lead with prose; the
// tolerant extractor handles both. A completion that turns out to be bare
// SQL (no JSON at all) is accepted as the query itself.
func decodeGeneratedQuery(content string) (*app.GeneratedQuery, error) {
	var q app.GeneratedQuery
	if err := llmjson.ExtractInto(content, &q); err == nil && strings.TrimSpace(q.SQL) != "" {
		q.SQL = strings.TrimSpace(q.SQL)
		return &q, nil
	}

	candidate := strings.TrimSpace(llmjson.Candidate(content))
	// A plain ``` fence keeps its language tag in the interior; drop it.
	if rest, ok := strings.CutPrefix(candidate, "sql\n"); ok {
		candidate = strings.TrimSpace(rest)
	}
	if isSelectStatement(candidate) {
		return &app.GeneratedQuery{SQL: candidate}, nil
	}

	return nil, &llmjson.MalformedPayloadError{Raw: content}
}

func isSelectStatement(s string) bool {
	upper := strings.ToUpper(s)
	return strings.HasPrefix(upper, "SELECT") || strings.HasPrefix(upper, "WITH")
}
