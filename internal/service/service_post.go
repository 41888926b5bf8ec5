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

type postService struct {
	postRepository store.PostRepository
	validator      validators.Validator
	idGenerator    IDGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, validator validators.Validator, idGenerator IDGenerator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		validator:      validator,
		idGenerator:    idGenerator,
		now:            utcNow,
		logger:         logger,
	}
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.ListPosts(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return posts, nil
}

func (p *postService) GetPost(ctx context.Context, key string) (models.Post, error) {
	contentKey := models.ParseContentKey(key)
	if contentKey.Value == "" {
		return models.Post{}, mapStoreError(store.ErrPostNotFound)
	}

	post, err := p.postRepository.GetPost(ctx, contentKey)
	if err != nil {
		return models.Post{}, mapStoreError(err)
	}
	return post, nil
}

// CreatePost assigns the identifier and creation time, then stores post.
func (p *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	post.ID = p.idGenerator.Generate()
	post.CreatedAt = p.now()
	normalizePost(&post)

	if err := p.validator.Validate(ctx, post); err != nil {
		return models.Post{}, validationError(err)
	}

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("slug", post.Slug).Msg("post creation failed")
		return models.Post{}, mapStoreError(err)
	}
	return created, nil
}

// UpdatePost merges update into the stored post and validates the result
// before writing it back.
func (p *postService) UpdatePost(ctx context.Context, key string, update models.PostUpdate) (models.Post, error) {
	current, err := p.GetPost(ctx, key)
	if err != nil {
		return models.Post{}, err
	}

	merged := update.Apply(current)
	normalizePost(&merged)
	if err = p.validator.Validate(ctx, merged); err != nil {
		return models.Post{}, validationError(err)
	}

	updated, err := p.postRepository.UpdatePost(ctx, models.ContentKey{Kind: models.KeyID, Value: current.ID}, merged)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", current.ID).Msg("post update failed")
		return models.Post{}, mapStoreError(err)
	}
	return updated, nil
}

func (p *postService) DeletePost(ctx context.Context, key string) error {
	contentKey := models.ParseContentKey(key)
	if contentKey.Value == "" {
		return mapStoreError(store.ErrPostNotFound)
	}

	return mapStoreError(p.postRepository.DeletePost(ctx, contentKey))
}

func normalizePost(post *models.Post) {
	post.Title = strings.TrimSpace(post.Title)
	post.Slug = strings.TrimSpace(post.Slug)
	post.Image = strings.TrimSpace(post.Image)
	if post.Tags == nil {
		post.Tags = []string{}
	}
}

func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
