package main

import (
	"context"
	"log/slog"
	"os"

	chat_service "github.com/sheetsql/sheetsql/internal/app/chat/service"
	openai_client "github.com/sheetsql/sheetsql/internal/clients/openai"
	opensearch_client "github.com/sheetsql/sheetsql/internal/clients/opensearch"
	"github.com/sheetsql/sheetsql/internal/config"

	nova_config_loader "github.com/init-pkg/nova/tools/config-loader"
)

func main() {
	var (
		cfg = nova_config_loader.MustLoad[config.Config]()
		log = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	)

	search := chat_service.NewSemanticTemplateSearch(
		openai_client.New(cfg),
		opensearch_client.New(cfg),
		cfg,
		log,
	)

	if err := search.IndexTemplates(context.Background(), chat_service.BuiltinTemplates()); err != nil {
		log.Error("failed to index templates", "error", err)
		os.Exit(1)
	}

	log.Info("templates indexed", "index", cfg.Clients.OpenSearch.TemplateIndex)
}
