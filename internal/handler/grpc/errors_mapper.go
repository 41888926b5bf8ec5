package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrNotFound:        codes.NotFound,
	service.ErrValidation:      codes.InvalidArgument,
	service.ErrBadRequest:      codes.InvalidArgument,
	service.ErrUnauthorized:    codes.Unauthenticated,
	service.ErrUpstreamFailure: codes.Unavailable,
}

func codeFromError(err error) codes.Code {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codes.Internal
}

// toStatus converts a service error to a gRPC status. Internal errors are
// logged and replaced by a generic message.
func toStatus(ctx context.Context, err error) error {
	code := codeFromError(err)
	if code == codes.Internal {
		logger.FromContext(ctx).Err(err).Msg("gRPC request failed")
		return status.Error(code, "internal server error")
	}
	return status.Error(code, err.Error())
}
