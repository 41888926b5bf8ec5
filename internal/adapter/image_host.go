package adapter

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/portfolio-server/internal/config"
	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/internal/utils"
	"github.com/MKhiriev/portfolio-server/models"
)

const uploadPath = "/v1_1/{cloud}/image/upload"

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// cloudinaryImageHost uploads images with the Cloudinary signed upload API.
type cloudinaryImageHost struct {
	client *utils.HTTPClient

	cloudName string
	apiKey    string
	apiSecret string
	folder    string

	now    func() time.Time
	logger *logger.Logger
}

// NewImageHost builds the Cloudinary [ImageHost] from cfg. When cfg lacks
// credentials the returned host fails every upload with
// [ErrImageHostNotConfigured].
func NewImageHost(cfg config.ImageHost, logger *logger.Logger) ImageHost {
	if !cfg.Enabled() {
		logger.Warn().Msg("image host credentials are not set, uploads are disabled")
		return disabledImageHost{}
	}

	return &cloudinaryImageHost{
		client:    utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.Timeout),
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    cfg.Folder,
		now:       time.Now,
		logger:    logger,
	}
}

// UploadImage implements [ImageHost].
func (h *cloudinaryImageHost) UploadImage(ctx context.Context, upload models.ImageUpload) (models.UploadResult, error) {
	log := logger.FromContext(ctx)

	params := map[string]string{
		"timestamp": strconv.FormatInt(h.now().Unix(), 10),
	}
	if h.folder != "" {
		params["folder"] = h.folder
	}

	form := make(map[string]string, len(params)+2)
	for k, v := range params {
		form[k] = v
	}
	form["api_key"] = h.apiKey
	form["signature"] = sign(params, h.apiSecret)

	var result cloudinaryUploadResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("cloud", h.cloudName).
		SetMultipartFormData(form).
		SetFileReader("file", upload.Filename, upload.Data).
		SetResult(&result).
		SetError(&cloudinaryError{}).
		Post(uploadPath)
	if err != nil {
		log.Err(err).Str("func", "cloudinaryImageHost.UploadImage").Msg("upload request failed")
		return models.UploadResult{}, fmt.Errorf("%w: %w", ErrImageHostUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "cloudinaryImageHost.UploadImage").Int("status", resp.StatusCode()).Msg("upload was not accepted")
		return models.UploadResult{}, err
	}
	if result.SecureURL == "" {
		return models.UploadResult{}, fmt.Errorf("%w: response has no secure_url", ErrImageHostRejected)
	}

	log.Info().Str("public_id", result.PublicID).Msg("image uploaded")
	return models.UploadResult{URL: result.SecureURL}, nil
}

// sign computes the upload signature: the params sorted by name, joined as
// k=v pairs with '&', followed by the secret, hashed with SHA-1.
func sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	return utils.HashSHA1Hex(strings.Join(pairs, "&") + secret)
}

type disabledImageHost struct{}

func (disabledImageHost) UploadImage(context.Context, models.ImageUpload) (models.UploadResult, error) {
	return models.UploadResult{}, ErrImageHostNotConfigured
}
