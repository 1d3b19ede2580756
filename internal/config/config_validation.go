// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var supportedAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
}

// validate checks that the merged [StructuredConfig] is usable at startup.
// All problems are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: DATABASE_URL is required", ErrInvalidStorageConfigs))
	}

	if cfg.Auth.SecretKey == "" {
		errs = append(errs, fmt.Errorf("%w: JWT_SECRET_KEY is required", ErrInvalidAuthConfigs))
	}
	if _, ok := supportedAlgorithms[cfg.Auth.Algorithm]; !ok {
		errs = append(errs, fmt.Errorf("%w: unsupported JWT_ALGORITHM %q", ErrInvalidAuthConfigs, cfg.Auth.Algorithm))
	}
	if cfg.Auth.ExpireMinutes <= 0 {
		errs = append(errs, fmt.Errorf("%w: JWT_ACCESS_TOKEN_EXPIRE_MINUTES must be positive", ErrInvalidAuthConfigs))
	}

	if cfg.App.EncryptionKey == "" {
		errs = append(errs, fmt.Errorf("%w: ENCRYPTION_KEY is required", ErrInvalidAppConfigs))
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: LOG_LEVEL: %w", ErrInvalidAppConfigs, err))
	}

	if cfg.Server.RateLimitPerMinute <= 0 {
		errs = append(errs, fmt.Errorf("%w: RATE_LIMIT_PER_MINUTE must be positive", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: SERVER_REQUEST_TIMEOUT must be positive", ErrInvalidServerConfigs))
	}

	if t := cfg.Adapter.LLM.Temperature; t != nil && (*t < 0 || *t > 2) {
		errs = append(errs, fmt.Errorf("%w: LLM_TEMPERATURE must be within [0, 2]", ErrInvalidAdapterConfigs))
	}
	if cfg.Adapter.LLM.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: LLM_TIMEOUT must be positive", ErrInvalidAdapterConfigs))
	}

	if cfg.Recommend.MaxResults <= 0 {
		errs = append(errs, fmt.Errorf("%w: RECOMMEND_MAX_RESULTS must be positive", ErrInvalidRecommendConfigs))
	}

	return errors.Join(errs...)
}
