package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line arguments into a partial config.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g. "30s")
//	-rate-limit-rps per-client AI requests per second
//	-rate-limit-burst per-client AI burst size
//	-ai-base-url text-generation endpoint base URL
//	-ai-api-key text-generation API key
//	-ai-model text-generation model id
//	-ai-timeout outbound generation timeout
//	-storage storage backend (memory, file, sqlite, postgres, redis)
//	-slot storage slot name
//	-d database DSN (sqlite path or postgres URI)
//	-f directory of the file backend
//	-redis redis address
//	-redis-prefix redis key prefix
//	-version application version
//	-log-level log level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("levelup", flag.ContinueOnError)

	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&cfg.Server.RateLimitRPS, "rate-limit-rps", 0, "AI requests per second per client")
	fs.IntVar(&cfg.Server.RateLimitBurst, "rate-limit-burst", 0, "AI request burst per client")
	fs.StringVar(&cfg.Adapter.AI.BaseURL, "ai-base-url", "", "Text-generation endpoint base URL")
	fs.StringVar(&cfg.Adapter.AI.APIKey, "ai-api-key", "", "Text-generation API key")
	fs.StringVar(&cfg.Adapter.AI.Model, "ai-model", "", "Text-generation model")
	fs.DurationVar(&cfg.Adapter.AI.RequestTimeout, "ai-timeout", 0, "Text-generation timeout (e.g., 30s)")
	fs.StringVar(&cfg.Storage.Backend, "storage", "", "Storage backend")
	fs.StringVar(&cfg.Storage.Slot, "slot", "", "Storage slot name")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Files.Dir, "f", "", "File storage directory")
	fs.StringVar(&cfg.Storage.Redis.Address, "redis", "", "Redis address")
	fs.StringVar(&cfg.Storage.Redis.Prefix, "redis-prefix", "", "Redis key prefix")
	fs.StringVar(&cfg.App.Version, "version", "", "Application version")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format is invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)

