package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/models"
)

// postRepository is the SQL-backed implementation of [PostRepository].
// Tags are stored in a JSON column.
type postRepository struct {
	*DB
	logger *logger.Logger
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts post as is. A duplicate slug is reported as [ErrSlugAlreadyExists].
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(r.builder, post)
	if err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.classify(err) == UniqueViolation {
			return models.Post{}, fmt.Errorf("%w: %s", ErrSlugAlreadyExists, post.Slug)
		}
		log.Err(err).Str("func", "postRepository.CreatePost").Str("slug", post.Slug).Msg("failed to insert post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return post, nil
}

// ListPosts returns every post, newest first.
func (r *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostsQuery(r.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 16)
	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "postRepository.ListPosts").Msg("failed to scan post")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// GetPost resolves key by id or slug.
func (r *postRepository) GetPost(ctx context.Context, key models.ContentKey) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostQuery(r.builder, key)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "postRepository.GetPost").Str("key", key.Value).Msg("failed to scan post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

// UpdatePost overwrites the mutable fields of the post resolved by key.
// id and createdAt are never changed.
func (r *postRepository) UpdatePost(ctx context.Context, key models.ContentKey, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(r.builder, key, post)
	if err != nil {
		log.Err(err).Str("func", "postRepository.UpdatePost").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		if r.classify(err) == UniqueViolation {
			return models.Post{}, fmt.Errorf("%w: %s", ErrSlugAlreadyExists, post.Slug)
		}
		log.Err(err).Str("func", "postRepository.UpdatePost").Str("key", key.Value).Msg("failed to update post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Post{}, ErrPostNotFound
	}

	return post, nil
}

// DeletePost removes the post resolved by key. Zero removed rows is [ErrPostNotFound].
func (r *postRepository) DeletePost(ctx context.Context, key models.ContentKey) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(r.builder, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Str("key", key.Value).Msg("failed to delete post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var (
		post models.Post
		tags []byte
	)

	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Summary,
		&post.Content,
		&post.Image,
		&tags,
		&post.CreatedAt,
	)
	if err != nil {
		return models.Post{}, err
	}

	if err = fromJSONColumn(tags, &post.Tags); err != nil {
		return models.Post{}, err
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	return post, nil
}
