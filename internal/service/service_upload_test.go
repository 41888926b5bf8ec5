package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/portfolio-server/internal/adapter"
	"github.com/MKhiriev/portfolio-server/internal/config"
	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/internal/mock"
	"github.com/MKhiriev/portfolio-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// pngHeader is enough for http.DetectContentType to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestUploadSvc(t *testing.T, maxBytes int64) (UploadService, *mock.MockImageHost) {
	t.Helper()
	ctrl := gomock.NewController(t)
	host := mock.NewMockImageHost(ctrl)
	return NewUploadService(host, config.App{UploadMaxBytes: maxBytes}, logger.Nop()), host
}

func TestUploadService_Success(t *testing.T) {
	svc, host := newTestUploadSvc(t, 1024)
	ctx := context.Background()

	host.EXPECT().UploadImage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, upload models.ImageUpload) (models.UploadResult, error) {
			assert.Equal(t, "image/png", upload.ContentType)
			assert.Equal(t, int64(len(pngHeader)), upload.Size)
			data, err := io.ReadAll(upload.Data)
			require.NoError(t, err)
			assert.Equal(t, pngHeader, data)
			return models.UploadResult{URL: "https://cdn/x.png"}, nil
		},
	)

	got, err := svc.UploadImage(ctx, models.ImageUpload{Filename: "x.png", ContentType: "application/octet-stream", Data: bytes.NewReader(pngHeader)})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/x.png", got.URL)
}

func TestUploadService_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		data    io.Reader
		wantErr error
	}{
		{name: "no file", data: nil, wantErr: ErrNoFileUploaded},
		{name: "empty file", data: strings.NewReader(""), wantErr: ErrBadRequest},
		{name: "too large", data: bytes.NewReader(append(pngHeader, make([]byte, 64)...)), wantErr: ErrImageTooLarge},
		{name: "not an image", data: strings.NewReader("plain text, not pixels"), wantErr: ErrUnsupportedImageType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestUploadSvc(t, 32)

			_, err := svc.UploadImage(context.Background(), models.ImageUpload{Filename: "f", Data: tt.data})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUploadService_SizeErrorsAreValidation(t *testing.T) {
	svc, _ := newTestUploadSvc(t, 4)

	_, err := svc.UploadImage(context.Background(), models.ImageUpload{Data: bytes.NewReader(pngHeader)})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUploadService_HostFailureIsUpstream(t *testing.T) {
	svc, host := newTestUploadSvc(t, 1024)

	host.EXPECT().UploadImage(gomock.Any(), gomock.Any()).Return(models.UploadResult{}, adapter.ErrImageHostUnavailable)

	_, err := svc.UploadImage(context.Background(), models.ImageUpload{Data: bytes.NewReader(pngHeader)})
	require.ErrorIs(t, err, ErrUpstreamFailure)
	assert.ErrorIs(t, err, adapter.ErrImageHostUnavailable)
}

func TestNewUploadService_DefaultLimit(t *testing.T) {
	svc := NewUploadService(nil, config.App{}, logger.Nop())
	assert.Equal(t, int64(config.DefaultUploadMaxBytes), svc.MaxBytes())

	svc, _ = newTestUploadSvc(t, 2048)
	assert.Equal(t, int64(2048), svc.MaxBytes())
}
