package opensearch_client

import (
	"crypto/tls"
	"net/http"

	"github.com/sheetsql/sheetsql/internal/config"

	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

func New(cfg *config.Config) *opensearchapi.Client {
	osCfg := cfg.Clients.OpenSearch

	var transport http.RoundTripper
	if osCfg.Insecure {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	client, err := opensearchapi.NewClient(
		opensearchapi.Config{
			Client: opensearch.Config{
				Transport: transport,
				Addresses: []string{osCfg.Address},
				Username:  osCfg.Username,
				Password:  osCfg.Password,
			},
		},
	)
	if err != nil {
		panic(err)
	}

	return client
}
