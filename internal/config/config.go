// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage backend names accepted in [Storage.Backend].
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// StructuredConfig is the top-level configuration container for the levelup
// service. It is populated by merging defaults, a .env file, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the document slot backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds outbound integrations, currently the text-generation API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a .env file loaded before the
	// environment is parsed. Env: ENV_FILE
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage configures the persistence of the document collection.
type Storage struct {
	// Backend is one of memory, file, sqlite, postgres, redis.
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Slot is the key under which the whole document collection is stored.
	// Env: STORAGE_SLOT
	Slot string `env:"SLOT"`

	// DB holds SQL connection settings for the sqlite and postgres backends.
	DB DB `envPrefix:"DB_"`

	// Files holds settings of the file backend.
	Files Files `envPrefix:"FILES_"`

	// Redis holds settings of the redis backend.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for SQL backends.
type DB struct {
	// DSN is a sqlite file path or a PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings of the file backend.
type Files struct {
	// Dir is the directory holding one JSON file per slot.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`
}

// Redis holds connection settings of the redis backend.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
	// Prefix is prepended to the slot name to build the redis key.
	// Env: STORAGE_REDIS_PREFIX
	Prefix string `env:"PREFIX"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimitRPS is the per-client rate of AI requests per second.
	// Env: SERVER_RATE_LIMIT_RPS
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS"`

	// RateLimitBurst is the per-client token bucket size.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`
}

// Adapter holds configuration for outbound integrations.
type Adapter struct {
	AI AI `envPrefix:"AI_"`
}

// AI configures the hosted text-generation endpoint.
type AI struct {
	// Env: ADAPTER_AI_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// Env: ADAPTER_AI_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: ADAPTER_AI_MODEL
	Model string `env:"MODEL"`
	// RequestTimeout bounds one generation call. Zero keeps the transport
	// default. Env: ADAPTER_AI_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults returns the baseline configuration every other source is merged
// on top of.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Backend: BackendFile,
			Slot:    "levelup_documents",
			Files:   Files{Dir: "data"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 60 * time.Second,
			RateLimitRPS:   2,
			RateLimitBurst: 5,
		},
		Adapter: Adapter{
			AI: AI{
				BaseURL: "https://generativelanguage.googleapis.com",
				Model:   "gemini-2.0-flash-001",
			},
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources in the following priority order (last source wins for
// non-zero fields):
//  1. Defaults
//  2. .env file (values never override variables already set)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(os.Getenv("ENV_FILE")).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
