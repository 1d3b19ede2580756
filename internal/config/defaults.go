package config

import "time"

const (
	defaultAlgorithm          = "HS256"
	defaultExpireMinutes      = 30
	defaultIssuer             = "nutri-keeper"
	defaultFrontendURL        = "http://localhost:3000"
	defaultRateLimitPerMinute = 5
	defaultLLMModel           = "gemini-1.5-flash"
	defaultLLMBaseURL         = "https://generativelanguage.googleapis.com/v1beta"
	defaultLLMTemperature     = 0.2
	defaultLLMTimeout         = 10 * time.Second
	defaultAWSRegion          = "us-east-1"
	defaultMailFrom           = "no-reply@localhost"
	defaultHTTPAddress        = ":8000"
	defaultRequestTimeout     = 30 * time.Second
	defaultMaxResults         = 10
	defaultLogLevel           = "info"
	defaultVersion            = "dev"
	defaultCleanupInterval    = 5 * time.Minute
	defaultLimiterIdleTTL     = 10 * time.Minute
)

func defaultConfig() *StructuredConfig {
	temperature := defaultLLMTemperature

	return &StructuredConfig{
		App: App{
			Version:     defaultVersion,
			LogLevel:    defaultLogLevel,
			FrontendURL: defaultFrontendURL,
		},
		Auth: Auth{
			Algorithm:     defaultAlgorithm,
			ExpireMinutes: defaultExpireMinutes,
			Issuer:        defaultIssuer,
		},
		Server: Server{
			HTTPAddress:        defaultHTTPAddress,
			RequestTimeout:     defaultRequestTimeout,
			RateLimitPerMinute: defaultRateLimitPerMinute,
		},
		Adapter: Adapter{
			LLM: LLM{
				Model:       defaultLLMModel,
				BaseURL:     defaultLLMBaseURL,
				Temperature: &temperature,
				Timeout:     defaultLLMTimeout,
			},
			Mail: Mail{
				AWSRegion: defaultAWSRegion,
				From:      defaultMailFrom,
			},
		},
		Recommend: Recommend{MaxResults: defaultMaxResults},
		Workers: Workers{
			LimiterCleanupInterval: defaultCleanupInterval,
			LimiterIdleTTL:         defaultLimiterIdleTTL,
		},
	}
}
