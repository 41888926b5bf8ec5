package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/internal/store"
	"github.com/MKhiriev/portfolio-server/internal/validators"
	"github.com/MKhiriev/portfolio-server/models"
)

type projectService struct {
	projectRepository store.ProjectRepository
	validator         validators.Validator
	idGenerator       IDGenerator
	now               func() time.Time

	logger *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, validator validators.Validator, idGenerator IDGenerator, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		validator:         validator,
		idGenerator:       idGenerator,
		now:               utcNow,
		logger:            logger,
	}
}

func (p *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := p.projectRepository.ListProjects(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return projects, nil
}

func (p *projectService) GetProject(ctx context.Context, key string) (models.Project, error) {
	contentKey := models.ParseContentKey(key)
	if contentKey.Value == "" {
		return models.Project{}, mapStoreError(store.ErrProjectNotFound)
	}

	project, err := p.projectRepository.GetProject(ctx, contentKey)
	if err != nil {
		return models.Project{}, mapStoreError(err)
	}
	return project, nil
}

// CreateProject assigns the identifier, creation time and default status,
// then stores project.
func (p *projectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	project.ID = p.idGenerator.Generate()
	project.CreatedAt = p.now()
	normalizeProject(&project)

	if err := p.validator.Validate(ctx, project); err != nil {
		return models.Project{}, validationError(err)
	}

	created, err := p.projectRepository.CreateProject(ctx, project)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("slug", project.Slug).Msg("project creation failed")
		return models.Project{}, mapStoreError(err)
	}
	return created, nil
}

func (p *projectService) UpdateProject(ctx context.Context, slug string, update models.ProjectUpdate) (models.Project, error) {
	key := models.SlugKey(slug)
	if key.Value == "" {
		return models.Project{}, mapStoreError(store.ErrProjectNotFound)
	}

	current, err := p.projectRepository.GetProject(ctx, key)
	if err != nil {
		return models.Project{}, mapStoreError(err)
	}

	merged := update.Apply(current)
	normalizeProject(&merged)
	if err = p.validator.Validate(ctx, merged); err != nil {
		return models.Project{}, validationError(err)
	}

	updated, err := p.projectRepository.UpdateProject(ctx, key, merged)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("slug", key.Value).Msg("project update failed")
		return models.Project{}, mapStoreError(err)
	}
	return updated, nil
}

func (p *projectService) DeleteProject(ctx context.Context, slug string) error {
	key := models.SlugKey(slug)
	if key.Value == "" {
		return mapStoreError(store.ErrProjectNotFound)
	}

	return mapStoreError(p.projectRepository.DeleteProject(ctx, key))
}

func normalizeProject(project *models.Project) {
	project.Title = strings.TrimSpace(project.Title)
	project.Slug = strings.TrimSpace(project.Slug)
	project.GithubLink = strings.TrimSpace(project.GithubLink)
	project.DemoLink = strings.TrimSpace(project.DemoLink)
	project.Status = strings.TrimSpace(project.Status)
	if project.Status == "" {
		project.Status = models.DefaultProjectStatus
	}
	project.Normalize()
}
