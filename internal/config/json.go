package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version       string `json:"version"`
		LogLevel      string `json:"log_level"`
		TestMode      bool   `json:"test_mode"`
		EncryptionKey string `json:"encryption_key"`
		FrontendURL   string `json:"frontend_url"`
	} `json:"app,omitempty"`

	Auth struct {
		SecretKey     string `json:"secret_key"`
		Algorithm     string `json:"algorithm"`
		ExpireMinutes int    `json:"expire_minutes"`
		Issuer        string `json:"issuer"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
		RateLimitPerMinute int      `json:"rate_limit_per_minute"`
	} `json:"server,omitempty"`

	Adapter struct {
		LLM struct {
			APIKey      string   `json:"api_key"`
			Model       string   `json:"model"`
			BaseURL     string   `json:"base_url"`
			Temperature *float64 `json:"temperature"`
			Timeout     Duration `json:"timeout"`
		} `json:"llm,omitempty"`
		Mail struct {
			AWSRegion string `json:"aws_region"`
			From      string `json:"from"`
		} `json:"mail,omitempty"`
	} `json:"adapter,omitempty"`

	Recommend struct {
		MaxResults int `json:"max_results"`
	} `json:"recommend,omitempty"`

	Workers struct {
		LimiterCleanupInterval Duration `json:"limiter_cleanup_interval"`
		LimiterIdleTTL         Duration `json:"limiter_idle_ttl"`
	} `json:"workers,omitempty"`
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
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
			TestMode:      jsonCfg.App.TestMode,
			EncryptionKey: jsonCfg.App.EncryptionKey,
			FrontendURL:   jsonCfg.App.FrontendURL,
		},
		Auth: Auth{
			SecretKey:     jsonCfg.Auth.SecretKey,
			Algorithm:     jsonCfg.Auth.Algorithm,
			ExpireMinutes: jsonCfg.Auth.ExpireMinutes,
			Issuer:        jsonCfg.Auth.Issuer,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
			RateLimitPerMinute: jsonCfg.Server.RateLimitPerMinute,
		},
		Adapter: Adapter{
			LLM: LLM{
				APIKey:      jsonCfg.Adapter.LLM.APIKey,
				Model:       jsonCfg.Adapter.LLM.Model,
				BaseURL:     jsonCfg.Adapter.LLM.BaseURL,
				Temperature: jsonCfg.Adapter.LLM.Temperature,
				Timeout:     time.Duration(jsonCfg.Adapter.LLM.Timeout),
			},
			Mail: Mail{
				AWSRegion: jsonCfg.Adapter.Mail.AWSRegion,
				From:      jsonCfg.Adapter.Mail.From,
			},
		},
		Recommend: Recommend{MaxResults: jsonCfg.Recommend.MaxResults},
		Workers: Workers{
			LimiterCleanupInterval: time.Duration(jsonCfg.Workers.LimiterCleanupInterval),
			LimiterIdleTTL:         time.Duration(jsonCfg.Workers.LimiterIdleTTL),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
