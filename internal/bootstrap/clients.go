package bootstrap

import (
	openai_client "github.com/sheetsql/sheetsql/internal/clients/openai"
	opensearch_client "github.com/sheetsql/sheetsql/internal/clients/opensearch"

	"go.uber.org/fx"
)

func clientsOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			openai_client.New,
			opensearch_client.New,
		),
	)
}
