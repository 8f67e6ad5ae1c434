package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		Slot    string `json:"slot"`
		DB      struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Files struct {
			Dir string `json:"dir"`
		} `json:"files,omitempty"`
		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
			Prefix   string `json:"prefix"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string    `json:"http_address"`
		RequestTimeout *Duration `json:"request_timeout"`
		RateLimitRPS   float64   `json:"rate_limit_rps"`
		RateLimitBurst int       `json:"rate_limit_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		AI struct {
			BaseURL        string    `json:"base_url"`
			APIKey         string    `json:"api_key"`
			Model          string    `json:"model"`
			RequestTimeout *Duration `json:"request_timeout"`
		} `json:"ai,omitempty"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			Slot:    jsonCfg.Storage.Slot,
			DB:      DB{DSN: jsonCfg.Storage.DB.DSN},
			Files:   Files{Dir: jsonCfg.Storage.Files.Dir},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
				Prefix:   jsonCfg.Storage.Redis.Prefix,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: durationOrZero(jsonCfg.Server.RequestTimeout),
			RateLimitRPS:   jsonCfg.Server.RateLimitRPS,
			RateLimitBurst: jsonCfg.Server.RateLimitBurst,
		},
		Adapter: Adapter{
			AI: AI{
				BaseURL:        jsonCfg.Adapter.AI.BaseURL,
				APIKey:         jsonCfg.Adapter.AI.APIKey,
				Model:          jsonCfg.Adapter.AI.Model,
				RequestTimeout: durationOrZero(jsonCfg.Adapter.AI.RequestTimeout),
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func durationOrZero(d *Duration) time.Duration {
	if d == nil {
		return 0
	}
	return time.Duration(*d)
}
