package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/internal/service"
	"github.com/MKhiriev/portfolio-server/internal/utils"
)

// auth is an HTTP middleware that enforces session authentication.
//
// It extracts the bearer token from the "Authorization" header and checks
// it via [service.AuthService.ParseToken], which also rejects tokens issued
// before the last credential rotation. On success the administrator ID is
// stored in the request context under [utils.AdminIDCtxKey].
//
// Rejected sessions are answered with 401 and the Unauthorized error kind.
// Any other ParseToken failure goes through the regular error mapping.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeErrorKind(w, http.StatusUnauthorized, kindUnauthorized, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			writeErrorKind(w, http.StatusUnauthorized, kindUnauthorized, ErrInvalidAuthorizationHeader.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if errors.Is(err, service.ErrUnauthorized) {
			log.Debug().Err(err).Msg("session rejected")
			writeErrorKind(w, http.StatusUnauthorized, kindUnauthorized, "invalid or expired session")
			return
		}
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.AdminIDCtxKey, token.AdminID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
