package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Auth       AuthConfig       `json:"auth"`
	Metadata   MetadataConfig   `json:"metadata"`
	Pagination PaginationConfig `json:"pagination"`
	Search     SearchConfig     `json:"search"`
	Logging    LoggingConfig    `json:"logging"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	AllowOrigins []string      `json:"allow_origins"`
}

type DatabaseConfig struct {
	Host              string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port              int           `json:"port" env:"DB_PORT" default:"5432"`
	User              string        `json:"user" env:"DB_USER" default:"readlog"`
	Password          string        `json:"-" env:"DB_PASSWORD"`
	Name              string        `json:"name" env:"DB_NAME" default:"readlog"`
	SSLMode           string        `json:"ssl_mode" env:"DB_SSL_MODE" default:"prefer"`
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type AuthConfig struct {
	// ServiceURL is the internal identity-provider endpoint used to validate
	// session cookies and delete identities.
	ServiceURL         string        `json:"service_url" env:"AUTH_SERVICE_URL" default:"http://auth-service:8080"`
	ValidateTimeout    time.Duration `json:"validate_timeout" env:"AUTH_VALIDATE_TIMEOUT" default:"2s"`
	ServiceTokenSecret string        `json:"-" env:"SERVICE_TOKEN_SECRET"`
	ServiceTokenIssuer string        `json:"service_token_issuer" env:"SERVICE_TOKEN_ISSUER" default:"readlog-ops"`
}

type MetadataConfig struct {
	FetchTimeout     time.Duration `json:"fetch_timeout" env:"METADATA_FETCH_TIMEOUT" default:"10s"`
	UserAgent        string        `json:"user_agent" env:"METADATA_USER_AGENT" default:"readlog-bot/1.0 (+https://readlog.example)"`
	HostRateInterval time.Duration `json:"host_rate_interval" env:"METADATA_HOST_RATE_INTERVAL" default:"1s"`
	MaxBodyBytes     int64         `json:"max_body_bytes" env:"METADATA_MAX_BODY_BYTES" default:"2097152"`
}

type PaginationConfig struct {
	DefaultPageSize int `json:"default_page_size" env:"PAGINATION_DEFAULT_PAGE_SIZE" default:"20"`
	MaxPageSize     int `json:"max_page_size" env:"PAGINATION_MAX_PAGE_SIZE" default:"100"`
}

type SearchConfig struct {
	DebounceInterval time.Duration `json:"debounce_interval" env:"SEARCH_DEBOUNCE_INTERVAL" default:"300ms"`
	MinQueryLength   int           `json:"min_query_length" env:"SEARCH_MIN_QUERY_LENGTH" default:"2"`
	ResultLimit      int           `json:"result_limit" env:"SEARCH_RESULT_LIMIT" default:"10"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// NewConfig loads configuration from environment variables with fallback to
// the tag defaults, then validates it.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	config.Server.AllowOrigins = splitOrigins(os.Getenv("SERVER_ALLOW_ORIGINS"))

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Docker Secrets support: a mounted file wins over the env var.
	if path := os.Getenv("SERVICE_TOKEN_SECRET_FILE"); path != "" {
		content, err := os.ReadFile(path)
		if err == nil {
			config.Auth.ServiceTokenSecret = strings.TrimSpace(string(content))
		}
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"http://localhost:3000"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
