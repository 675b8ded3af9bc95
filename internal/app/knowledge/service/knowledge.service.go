package knowledge_service

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

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v2"
)

func GenerateSchema[T any]() interface{} {
	// Structured Outputs uses a subset of JSON schema
	// These flags are necessary to comply with the subset
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return schema
}

var KnowledgeBaseSchema = GenerateSchema[app.KnowledgeBase]()

var schemaParam = openai.ResponseFormatJSONSchemaJSONSchemaParam{
	Name:        "knowledge_base",
	Description: openai.String("Knowledge base extracted from spreadsheet data"),
	Schema:      KnowledgeBaseSchema,
	Strict:      openai.Bool(true),
}

// KnowledgeService asks the model to distill serialized sheet text into a
// knowledge base: table definitions, business rules and test scenarios.
type KnowledgeService struct {
	openaiClient *openai.Client
	model        string
	maxTokens    int64
	ctxTimeout   time.Duration
	log          *slog.Logger
}

var _ app.KnowledgeService = &KnowledgeService{}

func New(openaiClient *openai.Client, cfg *config.Config, log *slog.Logger) *KnowledgeService {
	return &KnowledgeService{
		openaiClient: openaiClient,
		model:        cfg.Clients.OpenAI.Model,
		maxTokens:    cfg.Clients.OpenAI.MaxTokens,
		ctxTimeout:   60 * time.Second,
		log:          log,
	}
}

func (this *KnowledgeService) Extract(ctx nova_ctx.Ctx, sheets []*app.SerializedSheet) (*app.KnowledgeBase, errs.Error) {
	kb, err := this.extract(sheets)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	return kb, nil
}

func (this *KnowledgeService) extract(sheets []*app.SerializedSheet) (*app.KnowledgeBase, error) {
	if len(sheets) == 0 {
		return nil, errors.New("no sheets to extract from")
	}

	user := buildExtractionPrompt(sheets)

	callCtx, cancel := context.WithTimeout(context.Background(), this.ctxTimeout)
	defer cancel()

	chat, err := this.openaiClient.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(this.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(extractionSystemPrompt),
			openai.UserMessage(user),
		},
		MaxCompletionTokens: openai.Int(this.maxTokens),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schemaParam,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}

	if len(chat.Choices) == 0 {
		return nil, errors.New("openai: empty choices")
	}

	kb, err := decodeKnowledge(chat.Choices[0].Message.Content)
	if err != nil {
		this.log.Error("failed to decode knowledge base", "error", err)
		return nil, err
	}

	this.log.Info("extracted knowledge base",
		"tables", len(kb.Tables),
		"businessRules", len(kb.BusinessRules),
		"testScenarios", len(kb.TestScenarios))

	return kb, nil
}

// decodeKnowledge recovers the knowledge base from a completion. With
// structured outputs the content is plain JSON, but some models fence or
// decorate their output anyway, so decoding goes through the tolerant
// extractor.
func decodeKnowledge(content string) (*app.KnowledgeBase, error) {
	var kb app.KnowledgeBase
	if err := llmjson.ExtractInto(strings.TrimSpace(content), &kb); err != nil {
		return nil, err
	}
	return &kb, nil
}
