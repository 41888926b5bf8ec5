package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/portfolio-server/internal/adapter"
	"github.com/MKhiriev/portfolio-server/internal/config"
	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/models"
)

// sniffLength is the number of leading bytes inspected by http.DetectContentType.
const sniffLength = 512

type uploadService struct {
	imageHost adapter.ImageHost
	maxBytes  int64

	logger *logger.Logger
}

func NewUploadService(imageHost adapter.ImageHost, cfg config.App, logger *logger.Logger) UploadService {
	maxBytes := cfg.UploadMaxBytes
	if maxBytes <= 0 {
		maxBytes = config.DefaultUploadMaxBytes
	}

	return &uploadService{
		imageHost: imageHost,
		maxBytes:  maxBytes,
		logger:    logger,
	}
}

func (u *uploadService) MaxBytes() int64 {
	return u.maxBytes
}

// UploadImage buffers at most maxBytes of upload.Data, checks that the
// content is an image and forwards it to the image host.
func (u *uploadService) UploadImage(ctx context.Context, upload models.ImageUpload) (models.UploadResult, error) {
	log := logger.FromContext(ctx)

	if upload.Data == nil {
		return models.UploadResult{}, ErrNoFileUploaded
	}

	data, err := io.ReadAll(io.LimitReader(upload.Data, u.maxBytes+1))
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("%w: error reading file: %w", ErrBadRequest, err)
	}
	if len(data) == 0 {
		return models.UploadResult{}, ErrNoFileUploaded
	}
	if int64(len(data)) > u.maxBytes {
		return models.UploadResult{}, validationError(fmt.Errorf("%w: limit is %d bytes", ErrImageTooLarge, u.maxBytes))
	}

	contentType := http.DetectContentType(data[:min(len(data), sniffLength)])
	if !strings.HasPrefix(contentType, "image/") {
		log.Info().Str("content_type", contentType).Msg("upload rejected: not an image")
		return models.UploadResult{}, validationError(fmt.Errorf("%w: detected %s", ErrUnsupportedImageType, contentType))
	}

	result, err := u.imageHost.UploadImage(ctx, models.ImageUpload{
		Filename:    upload.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        bytes.NewReader(data),
	})
	if err != nil {
		log.Err(err).Str("filename", upload.Filename).Msg("image host upload failed")
		return models.UploadResult{}, mapAdapterError(err)
	}

	return result, nil
}
