package config

type Config struct {
	Server  ServerConfig
	Clients ClientsConfig
}

type ServerConfig struct {
	Port int `env:"SERVER_PORT" env-default:"8080"`
}

type ClientsConfig struct {
	OpenAI     OpenAIConfig
	OpenSearch OpenSearchConfig
}

type OpenAIConfig struct {
	ApiKey         string  `env:"OPENAI_API_KEY" env-required:"true"`
	Model          string  `env:"OPENAI_MODEL" env-default:"gpt-5-nano"`
	EmbeddingModel string  `env:"OPENAI_EMBEDDING_MODEL" env-default:"text-embedding-3-small"`
	Temperature    float64 `env:"OPENAI_TEMPERATURE" env-default:"0.2"`
	MaxTokens      int64   `env:"OPENAI_MAX_TOKENS" env-default:"4000"`
}

type OpenSearchConfig struct {
	Address       string `env:"OPENSEARCH_ADDRESS" env-default:"https://localhost:9200"`
	Username      string `env:"OPENSEARCH_USERNAME" env-default:"admin"`
	Password      string `env:"OPENSEARCH_PASSWORD"`
	Insecure      bool   `env:"OPENSEARCH_INSECURE" env-default:"false"`
	TemplateIndex string `env:"OPENSEARCH_TEMPLATE_INDEX" env-default:"query-templates"`
}
