// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/portfolio-server/internal/config"
	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/internal/utils"
	"github.com/MKhiriev/portfolio-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Unix(1700000000, 0)

// newTestImageHost points a Cloudinary host at the test server.
func newTestImageHost(t *testing.T, serverURL, folder string) *cloudinaryImageHost {
	t.Helper()

	host := NewImageHost(config.ImageHost{
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "secret",
		Folder:    folder,
		BaseURL:   serverURL,
		Timeout:   5 * time.Second,
	}, logger.Nop())

	h, ok := host.(*cloudinaryImageHost)
	require.True(t, ok)
	h.now = func() time.Time { return fixedNow }
	return h
}

func testUpload() models.ImageUpload {
	return models.ImageUpload{
		Filename:    "cover.png",
		ContentType: "image/png",
		Size:        4,
		Data:        strings.NewReader("\x89PNG"),
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// ── UploadImage ─────────────────────────────────────────────────────────────

func TestUploadImage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1_1/demo/image/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "key", r.FormValue("api_key"))
		assert.Equal(t, "1700000000", r.FormValue("timestamp"))
		assert.Equal(t, "portfolio", r.FormValue("folder"))
		assert.Equal(t, utils.HashSHA1Hex("folder=portfolio&timestamp=1700000000secret"), r.FormValue("signature"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "cover.png", header.Filename)
		assert.Equal(t, "\x89PNG", string(data))

		writeJSON(w, http.StatusOK, `{"secure_url":"https://res.cloudinary.com/demo/cover.png","public_id":"portfolio/cover"}`)
	}))
	defer srv.Close()

	h := newTestImageHost(t, srv.URL, "portfolio")
	got, err := h.UploadImage(context.Background(), testUpload())

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/cover.png", got.URL)
}

func TestUploadImage_NoFolder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Empty(t, r.FormValue("folder"))
		assert.Equal(t, utils.HashSHA1Hex("timestamp=1700000000secret"), r.FormValue("signature"))
		writeJSON(w, http.StatusOK, `{"secure_url":"https://cdn/x.png"}`)
	}))
	defer srv.Close()

	h := newTestImageHost(t, srv.URL, "")
	_, err := h.UploadImage(context.Background(), testUpload())
	require.NoError(t, err)
}

func TestUploadImage_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":{"message":"Invalid image file"}}`, wantErr: ErrImageHostRejected, wantMsg: "Invalid image file"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":{"message":"Invalid Signature"}}`, wantErr: ErrImageHostRejected},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{}`, wantErr: ErrImageHostUnavailable},
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, wantErr: ErrImageHostUnavailable},
		{name: "missing url", status: http.StatusOK, body: `{"public_id":"x"}`, wantErr: ErrImageHostRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			}))
			defer srv.Close()

			h := newTestImageHost(t, srv.URL, "portfolio")
			_, err := h.UploadImage(context.Background(), testUpload())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestUploadImage_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	h := newTestImageHost(t, url, "portfolio")
	_, err := h.UploadImage(context.Background(), testUpload())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImageHostUnavailable)
}

func TestNewImageHost_NotConfigured(t *testing.T) {
	host := NewImageHost(config.ImageHost{CloudName: "demo"}, logger.Nop())

	_, err := host.UploadImage(context.Background(), testUpload())
	assert.ErrorIs(t, err, ErrImageHostNotConfigured)
}

func Test_sign_SortsParams(t *testing.T) {
	params := map[string]string{"timestamp": "1", "folder": "f", "eager": "w_100"}

	assert.Equal(t, utils.HashSHA1Hex("eager=w_100&folder=f&timestamp=1s"), sign(params, "s"))
}
