package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/models"
)

// projectRepository is the SQL-backed implementation of [ProjectRepository].
// Tags, steps, features, tech stack and installation are stored in JSON columns.
type projectRepository struct {
	*DB
	logger *logger.Logger
}

func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProjectQuery(r.builder, project)
	if err != nil {
		log.Err(err).Str("func", "projectRepository.CreateProject").Msg("failed to build query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.classify(err) == UniqueViolation {
			return models.Project{}, fmt.Errorf("%w: %s", ErrSlugAlreadyExists, project.Slug)
		}
		log.Err(err).Str("func", "projectRepository.CreateProject").Str("slug", project.Slug).Msg("failed to insert project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return project, nil
}

func (r *projectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProjectsQuery(r.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "projectRepository.ListProjects").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 16)
	for rows.Next() {
		project, scanErr := scanProject(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "projectRepository.ListProjects").Msg("failed to scan project")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		projects = append(projects, project)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "projectRepository.ListProjects").Msg("rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

func (r *projectRepository) GetProject(ctx context.Context, key models.ContentKey) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProjectQuery(r.builder, key)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	project, err := scanProject(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}
		log.Err(err).Str("func", "projectRepository.GetProject").Str("key", key.Value).Msg("failed to scan project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return project, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, key models.ContentKey, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProjectQuery(r.builder, key, project)
	if err != nil {
		log.Err(err).Str("func", "projectRepository.UpdateProject").Msg("failed to build query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		if r.classify(err) == UniqueViolation {
			return models.Project{}, fmt.Errorf("%w: %s", ErrSlugAlreadyExists, project.Slug)
		}
		log.Err(err).Str("func", "projectRepository.UpdateProject").Str("key", key.Value).Msg("failed to update project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Project{}, ErrProjectNotFound
	}

	return project, nil
}

func (r *projectRepository) DeleteProject(ctx context.Context, key models.ContentKey) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProjectQuery(r.builder, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "projectRepository.DeleteProject").Str("key", key.Value).Msg("failed to delete project")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func scanProject(row rowScanner) (models.Project, error) {
	var (
		project                                             models.Project
		tags, howItWorks, features, techStack, installation []byte
	)

	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Slug,
		&project.ShortDescription,
		&project.LongDescription,
		&project.GithubLink,
		&project.DemoLink,
		&project.Status,
		&tags,
		&howItWorks,
		&features,
		&techStack,
		&installation,
		&project.CreatedAt,
	)
	if err != nil {
		return models.Project{}, err
	}

	columns := []struct {
		raw []byte
		dst any
	}{
		{tags, &project.Tags},
		{howItWorks, &project.HowItWorks},
		{features, &project.Features},
		{techStack, &project.TechStack},
		{installation, &project.Installation},
	}
	for _, col := range columns {
		if err = fromJSONColumn(col.raw, col.dst); err != nil {
			return models.Project{}, err
		}
	}
	project.Normalize()

	return project, nil
}
