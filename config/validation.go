package config

import "fmt"

// validateConfig rejects values that would make the service misbehave
// silently at runtime.
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}
	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}
	if err := validateMetadataConfig(&config.Metadata); err != nil {
		return fmt.Errorf("metadata config validation failed: %w", err)
	}
	if err := validatePaginationConfig(&config.Pagination); err != nil {
		return fmt.Errorf("pagination config validation failed: %w", err)
	}
	if err := validateSearchConfig(&config.Search); err != nil {
		return fmt.Errorf("search config validation failed: %w", err)
	}
	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}
	if config.ReadTimeout <= 0 || config.WriteTimeout <= 0 || config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive")
	}
	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.Host == "" {
		return fmt.Errorf("database host must not be empty")
	}
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("database port must be between 1 and 65535, got %d", config.Port)
	}
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}
	return nil
}

func validateMetadataConfig(config *MetadataConfig) error {
	if config.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %v", config.FetchTimeout)
	}
	if config.MaxBodyBytes < 1024 {
		return fmt.Errorf("max body bytes must be at least 1024, got %d", config.MaxBodyBytes)
	}
	return nil
}

func validatePaginationConfig(config *PaginationConfig) error {
	if config.DefaultPageSize < 1 {
		return fmt.Errorf("default page size must be at least 1, got %d", config.DefaultPageSize)
	}
	if config.MaxPageSize < config.DefaultPageSize {
		return fmt.Errorf("max page size %d must not be smaller than default page size %d",
			config.MaxPageSize, config.DefaultPageSize)
	}
	return nil
}

func validateSearchConfig(config *SearchConfig) error {
	if config.DebounceInterval < 0 {
		return fmt.Errorf("debounce interval must not be negative, got %v", config.DebounceInterval)
	}
	if config.MinQueryLength < 1 {
		return fmt.Errorf("min query length must be at least 1, got %d", config.MinQueryLength)
	}
	if config.ResultLimit < 1 {
		return fmt.Errorf("result limit must be at least 1, got %d", config.ResultLimit)
	}
	return nil
}
