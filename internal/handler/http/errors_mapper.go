package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/internal/service"
	"github.com/MKhiriev/portfolio-server/internal/utils"
	"github.com/MKhiriev/portfolio-server/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusUnprocessableEntity,
	service.ErrNotFound:           http.StatusNotFound,
	service.ErrUnauthorized:       http.StatusUnauthorized,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrBadRequest:         http.StatusBadRequest,
	service.ErrUpstreamFailure:    http.StatusBadGateway,
}

var errorKindMap = map[error]string{
	service.ErrValidation:         kindValidation,
	service.ErrNotFound:           kindNotFound,
	service.ErrUnauthorized:       kindUnauthorized,
	service.ErrInvalidCredentials: kindInvalidCredentials,
	service.ErrBadRequest:         kindBadRequest,
	service.ErrUpstreamFailure:    kindUpstreamFailure,
}

// fixedMessages hides the error text of kinds whose details must not reach
// the caller.
var fixedMessages = map[string]string{
	kindInvalidCredentials: service.ErrInvalidCredentials.Error(),
	kindUpstreamFailure:    "upstream service failure",
	kindInternal:           "internal server error",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func kindFromError(err error) string {
	for target, kind := range errorKindMap {
		if errors.Is(err, target) {
			return kind
		}
	}
	return kindInternal
}

// writeError maps err to its status and kind and writes the error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	kind := kindFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("kind", kind).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("kind", kind).Msg("request rejected")
	}

	writeErrorKind(w, status, kind, err.Error())
}

func writeErrorKind(w http.ResponseWriter, status int, kind, message string) {
	if fixed, ok := fixedMessages[kind]; ok {
		message = fixed
	}
	utils.WriteJSON(w, models.ErrorResponse{Error: kind, Message: message}, status)
}

// writeBadRequest reports a payload that could not be decoded. A body cut
// off by a size limit is answered with 413.
func writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Debug().Err(err).Msg("malformed request payload")

	status := http.StatusBadRequest
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	writeErrorKind(w, status, kindBadRequest, err.Error())
}
