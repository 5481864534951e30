package config

import "time"

// Fallback values applied by [StructuredConfig.applyDefaults] when no source
// provided the corresponding field.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultTokenIssuer    = "rua-api"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultDBDriver       = "postgres"
)

// applyDefaults fills fields that remained zero after all sources were
// merged. Secrets have no defaults: an absent token sign key or DSN is a
// validation error, not something to invent.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver != "postgres" && cfg.Storage.DB.Driver != "sqlite" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
