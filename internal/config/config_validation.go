// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied by [StructuredConfig.setDefaults] to unset fields.
const (
	DefaultBcryptCost     = bcrypt.DefaultCost
	DefaultUploadMaxBytes = 10 << 20
	DefaultRequestTimeout = 30 * time.Second
	DefaultImageHostURL   = "https://api.cloudinary.com"
	DefaultImageFolder    = "portfolio"
	DefaultImageTimeout   = 30 * time.Second
)

func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.App.UploadMaxBytes == 0 {
		cfg.App.UploadMaxBytes = DefaultUploadMaxBytes
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.ImageHost.BaseURL == "" {
		cfg.Adapter.ImageHost.BaseURL = DefaultImageHostURL
	}
	if cfg.Adapter.ImageHost.Folder == "" {
		cfg.Adapter.ImageHost.Folder = DefaultImageFolder
	}
	if cfg.Adapter.ImageHost.Timeout == 0 {
		cfg.Adapter.ImageHost.Timeout = DefaultImageTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database URI is required", ErrInvalidStorageConfigs)
	}

	app := cfg.App
	switch {
	case app.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	case app.TokenIssuer == "":
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	case app.TokenDuration <= 0:
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	case app.AdminUsername == "" || app.AdminPassword == "":
		return fmt.Errorf("%w: admin username and password are required", ErrInvalidAppConfigs)
	case app.BcryptCost < bcrypt.MinCost || app.BcryptCost > bcrypt.MaxCost:
		return fmt.Errorf("%w: bcrypt cost must be in [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	case app.UploadMaxBytes < 0:
		return fmt.Errorf("%w: upload max bytes must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: at least one of HTTP or gRPC address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.ImageHost.Timeout < 0 {
		return fmt.Errorf("%w: image host timeout must not be negative", ErrInvalidAdapterConfigs)
	}

	return nil
}
