// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Server.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimitRPS < 0 || cfg.Server.RateLimitBurst < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}

	if strings.TrimSpace(cfg.Adapter.AI.BaseURL) == "" || strings.TrimSpace(cfg.Adapter.AI.Model) == "" {
		return fmt.Errorf("%w: base url and model are required", ErrInvalidAdapterConfigs)
	}
	if strings.TrimSpace(cfg.Adapter.AI.APIKey) == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidAdapterConfigs)
	}

	return cfg.Storage.validate()
}

func (s Storage) validate() error {
	if strings.TrimSpace(s.Slot) == "" {
		return fmt.Errorf("%w: empty slot", ErrInvalidStorageConfigs)
	}

	switch s.Backend {
	case BackendMemory:
		return nil
	case BackendFile:
		if s.Files.Dir == "" {
			return fmt.Errorf("%w: file backend needs a directory", ErrInvalidStorageConfigs)
		}
	case BackendSQLite, BackendPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: %s backend needs a DSN", ErrInvalidStorageConfigs, s.Backend)
		}
	case BackendRedis:
		if s.Redis.Address == "" {
			return fmt.Errorf("%w: redis backend needs an address", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}

	return nil
}
