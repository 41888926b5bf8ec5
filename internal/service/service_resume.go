package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/internal/store"
	"github.com/MKhiriev/portfolio-server/internal/validators"
	"github.com/MKhiriev/portfolio-server/models"
)

type resumeService struct {
	resumeRepository store.ResumeRepository
	validator        validators.Validator
	now              func() time.Time

	logger *logger.Logger
}

func NewResumeService(resumeRepository store.ResumeRepository, validator validators.Validator, logger *logger.Logger) ResumeService {
	return &resumeService{
		resumeRepository: resumeRepository,
		validator:        validator,
		now:              utcNow,
		logger:           logger,
	}
}

// GetResume returns the stored resume. On first access the default
// document is inserted; a concurrent first read inserting it too is fine.
func (r *resumeService) GetResume(ctx context.Context) (models.Resume, error) {
	resume, err := r.resumeRepository.GetResume(ctx, models.ResumeSlug)
	if err == nil {
		return resume, nil
	}
	if !errors.Is(err, store.ErrResumeNotFound) {
		return models.Resume{}, mapStoreError(err)
	}

	seed := models.Resume{
		Slug:           models.ResumeSlug,
		ResumeDocument: models.DefaultResume(),
		UpdatedAt:      r.now(),
	}
	if err = r.resumeRepository.CreateResumeIfAbsent(ctx, seed); err != nil {
		logger.FromContext(ctx).Err(err).Msg("resume seeding failed")
		return models.Resume{}, mapStoreError(err)
	}
	logger.FromContext(ctx).Info().Msg("default resume stored")

	resume, err = r.resumeRepository.GetResume(ctx, models.ResumeSlug)
	if err != nil {
		return models.Resume{}, mapStoreError(err)
	}
	return resume, nil
}

// UpdateResume merges update over the stored document, or over the default
// one when nothing is stored yet, and upserts the result.
func (r *resumeService) UpdateResume(ctx context.Context, update models.ResumeUpdate) (models.Resume, error) {
	current := models.DefaultResume()
	stored, err := r.resumeRepository.GetResume(ctx, models.ResumeSlug)
	switch {
	case err == nil:
		current = stored.ResumeDocument
	case !errors.Is(err, store.ErrResumeNotFound):
		return models.Resume{}, mapStoreError(err)
	}

	document := update.Apply(current)
	document.Normalize()
	if err := r.validator.Validate(ctx, document); err != nil {
		return models.Resume{}, validationError(err)
	}

	resume, err := r.resumeRepository.UpsertResume(ctx, models.Resume{
		Slug:           models.ResumeSlug,
		ResumeDocument: document,
		UpdatedAt:      r.now(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("resume update failed")
		return models.Resume{}, mapStoreError(err)
	}
	return resume, nil
}
