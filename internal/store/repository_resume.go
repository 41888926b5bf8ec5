package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/models"
)

// resumeRepository is the SQL-backed implementation of [ResumeRepository].
// The document body is stored as one JSON column keyed by slug.
type resumeRepository struct {
	*DB
	logger *logger.Logger
}

func NewResumeRepository(db *DB, logger *logger.Logger) ResumeRepository {
	logger.Debug().Msg("creating resume repository")
	return &resumeRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *resumeRepository) GetResume(ctx context.Context, slug string) (models.Resume, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectResumeQuery(r.builder, slug)
	if err != nil {
		return models.Resume{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		resume   models.Resume
		document []byte
	)
	err = r.QueryRowContext(ctx, query, args...).Scan(&resume.Slug, &document, &resume.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Resume{}, ErrResumeNotFound
		}
		log.Err(err).Str("func", "resumeRepository.GetResume").Msg("failed to scan resume")
		return models.Resume{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = fromJSONColumn(document, &resume.ResumeDocument); err != nil {
		log.Err(err).Str("func", "resumeRepository.GetResume").Msg("failed to decode resume document")
		return models.Resume{}, err
	}
	resume.Normalize()

	return resume, nil
}

// CreateResumeIfAbsent inserts resume with ON CONFLICT DO NOTHING, so a
// concurrent first read that already stored the default is not an error.
func (r *resumeRepository) CreateResumeIfAbsent(ctx context.Context, resume models.Resume) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertResumeQuery(r.builder, resume, resumeInsertIfAbsentSuffix)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "resumeRepository.CreateResumeIfAbsent").Msg("failed to insert resume")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpsertResume replaces the document stored under resume.Slug and returns
// the stored state. Writing an identical document keeps the previous UpdatedAt.
func (r *resumeRepository) UpsertResume(ctx context.Context, resume models.Resume) (models.Resume, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertResumeQuery(r.builder, resume, resumeUpsertSuffix)
	if err != nil {
		return models.Resume{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "resumeRepository.UpsertResume").Msg("failed to upsert resume")
		return models.Resume{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.GetResume(ctx, resume.Slug)
}
