package service

import (
	"context"

	"github.com/MKhiriev/portfolio-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and verifies administrator sessions.
type AuthService interface {
	// Login seeds the administrator on an empty store, then verifies the
	// credentials. Any mismatch is reported as ErrInvalidCredentials.
	Login(ctx context.Context, credentials models.Credentials) (models.Admin, error)
	CreateToken(ctx context.Context, admin models.Admin) (models.Token, error)
	// ParseToken verifies the token and rejects sessions issued before the
	// last credential rotation.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// RotateCredentials replaces the non-empty fields of update and revokes
	// every previously issued session.
	RotateCredentials(ctx context.Context, update models.CredentialsUpdate) error
}

type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	// GetPost resolves key as an identifier or slug.
	GetPost(ctx context.Context, key string) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, key string, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, key string) error
}

type ProjectService interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	// GetProject resolves key as an identifier or slug.
	GetProject(ctx context.Context, key string) (models.Project, error)
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	// UpdateProject and DeleteProject address projects by slug only.
	UpdateProject(ctx context.Context, slug string, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, slug string) error
}

type ResumeService interface {
	// GetResume returns the resume, storing the default document first if
	// none exists yet.
	GetResume(ctx context.Context) (models.Resume, error)
	UpdateResume(ctx context.Context, update models.ResumeUpdate) (models.Resume, error)
}

type UploadService interface {
	UploadImage(ctx context.Context, upload models.ImageUpload) (models.UploadResult, error)
	// MaxBytes is the largest accepted image.
	MaxBytes() int64
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator issues identifiers for new posts and projects.
type IDGenerator interface {
	Generate() string
}
