package chat_service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sheetsql/sheetsql/internal/config"

	"github.com/openai/openai-go/v2"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

// TemplateHit is a semantic search result above the score floor.
type TemplateHit struct {
	Template QueryTemplate
	Score    float64
}

// SemanticTemplateSearch finds the closest canned template by embedding the
// message and running a kNN query against the template index.
type SemanticTemplateSearch struct {
	openaiClient     *openai.Client
	opensearchClient *opensearchapi.Client
	index            string
	embeddingModel   string
	minScore         float64
	log              *slog.Logger
}

func NewSemanticTemplateSearch(
	openaiClient *openai.Client,
	opensearchClient *opensearchapi.Client,
	cfg *config.Config,
	log *slog.Logger,
) *SemanticTemplateSearch {
	return &SemanticTemplateSearch{
		openaiClient:     openaiClient,
		opensearchClient: opensearchClient,
		index:            cfg.Clients.OpenSearch.TemplateIndex,
		embeddingModel:   cfg.Clients.OpenAI.EmbeddingModel,
		minScore:         0.5,
		log:              log,
	}
}

func (s *SemanticTemplateSearch) generateEmbedding(ctx context.Context, text string) ([]float64, error) {
	response, err := s.openaiClient.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{text},
		},
		Model: s.embeddingModel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(response.Data) == 0 {
		return nil, errors.New("no embedding data received")
	}

	return response.Data[0].Embedding, nil
}

// FindBestTemplate returns the closest template, or nil when nothing clears
// the score floor.
func (s *SemanticTemplateSearch) FindBestTemplate(ctx context.Context, message string) (*TemplateHit, error) {
	if strings.TrimSpace(message) == "" {
		return nil, errors.New("message cannot be empty")
	}

	embedding, err := s.generateEmbedding(ctx, message)
	if err != nil {
		return nil, err
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"knn": map[string]interface{}{
				"embedding": map[string]interface{}{
					"vector": embedding,
					"k":      3,
				},
			},
		},
		"size":      3,
		"_source":   []string{"id", "title", "sql", "answer"},
		"min_score": s.minScore,
	}

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	searchResp, err := s.opensearchClient.Search(ctx, &opensearchapi.SearchReq{
		Indices: []string{s.index},
		Body:    strings.NewReader(string(queryJSON)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search template index %s: %w", s.index, err)
	}

	for _, hit := range searchResp.Hits.Hits {
		var source struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			SQL    string `json:"sql"`
			Answer string `json:"answer"`
		}
		if err := json.Unmarshal(hit.Source, &source); err != nil {
			continue
		}

		return &TemplateHit{
			Template: QueryTemplate{
				ID:     source.ID,
				Title:  source.Title,
				SQL:    source.SQL,
				Answer: source.Answer,
			},
			Score: float64(hit.Score),
		}, nil
	}

	return nil, nil
}

// IndexTemplates (re)creates the template index and stores every template
// with its embedding. Used by cmd/index-templates before the semantic
// fallback is usable.
func (s *SemanticTemplateSearch) IndexTemplates(ctx context.Context, templates []QueryTemplate) error {
	mapping := `{
		"settings": {"index": {"knn": true}},
		"mappings": {
			"properties": {
				"id":        {"type": "keyword"},
				"title":     {"type": "text"},
				"sql":       {"type": "text"},
				"answer":    {"type": "text"},
				"embedding": {"type": "knn_vector", "dimension": 1536}
			}
		}
	}`

	if _, err := s.opensearchClient.Indices.Create(ctx, opensearchapi.IndicesCreateReq{
		Index: s.index,
		Body:  strings.NewReader(mapping),
	}); err != nil {
		// The index may already exist; indexing below still overwrites docs.
		s.log.Warn("template index create failed", "index", s.index, "error", err)
	}

	for _, tpl := range templates {
		seed := tpl.Title + "\n" + strings.Join(tpl.Keywords, " ") + "\n" + tpl.SQL
		embedding, err := s.generateEmbedding(ctx, seed)
		if err != nil {
			return fmt.Errorf("embed template %s: %w", tpl.ID, err)
		}

		doc := map[string]interface{}{
			"id":        tpl.ID,
			"title":     tpl.Title,
			"sql":       tpl.SQL,
			"answer":    tpl.Answer,
			"embedding": embedding,
		}
		body, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal template %s: %w", tpl.ID, err)
		}

		if _, err := s.opensearchClient.Index(ctx, opensearchapi.IndexReq{
			Index:      s.index,
			DocumentID: tpl.ID,
			Body:       bytes.NewReader(body),
		}); err != nil {
			return fmt.Errorf("index template %s: %w", tpl.ID, err)
		}

		s.log.Info("indexed template", "template", tpl.ID)
	}

	return nil
}
