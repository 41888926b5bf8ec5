// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides abstractions for the external services the
// portfolio server talks to.
//
// The primary abstraction is [ImageHost], which decouples the upload service
// from the hosting provider. The package ships a Cloudinary implementation
// built on resty ([NewImageHost]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of provider
// (e.g. [ErrImageHostRejected] for 4xx, [ErrImageHostUnavailable] for 5xx).
package adapter

import (
	"context"

	"github.com/MKhiriev/portfolio-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/image_host_mock.go -package=mock

// ImageHost stores an image with an external provider and returns its
// public URL.
type ImageHost interface {
	// UploadImage sends upload.Data to the provider. The reader is consumed
	// once. Returns an error wrapping one of the package sentinels when the
	// provider is not configured, unreachable or refuses the image.
	UploadImage(ctx context.Context, upload models.ImageUpload) (models.UploadResult, error)
}
