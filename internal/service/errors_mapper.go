package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/portfolio-server/internal/store"
)

// mapStoreError attaches an error kind to repository errors. Failures to
// reach or query the database are upstream failures; query building and
// column encoding bugs stay internal.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrPostNotFound),
		errors.Is(err, store.ErrProjectNotFound),
		errors.Is(err, store.ErrResumeNotFound),
		errors.Is(err, store.ErrAdminNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrSlugAlreadyExists):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, store.ErrBuildingSQLQuery),
		errors.Is(err, store.ErrEncodingColumn):
		return err
	}

	return fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
}

// mapAdapterError marks every image host failure as an upstream failure.
// The adapter sentinels stay reachable with errors.Is.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
}

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
