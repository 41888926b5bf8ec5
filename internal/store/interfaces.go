package store

import (
	"context"

	"github.com/MKhiriev/portfolio-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AdminRepository persists the single administrator record.
type AdminRepository interface {
	// CreateAdmin inserts admin into the singleton slot.
	// Returns ErrAdminAlreadyExists if the slot is taken.
	CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
	// GetAdmin returns the administrator or ErrAdminNotFound when the store is empty.
	GetAdmin(ctx context.Context) (models.Admin, error)
	// FindAdminByUsername returns ErrAdminNotFound when username does not match.
	FindAdminByUsername(ctx context.Context, username string) (models.Admin, error)
	// UpdateAdmin replaces the non-empty fields and bumps the session version
	// in a single statement.
	UpdateAdmin(ctx context.Context, username, passwordHash string) (models.Admin, error)
}

// PostRepository persists blog posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, key models.ContentKey) (models.Post, error)
	UpdatePost(ctx context.Context, key models.ContentKey, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, key models.ContentKey) error
}

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, key models.ContentKey) (models.Project, error)
	UpdateProject(ctx context.Context, key models.ContentKey, project models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, key models.ContentKey) error
}

// ResumeRepository persists the singleton resume document.
type ResumeRepository interface {
	// GetResume returns ErrResumeNotFound when nothing is stored under slug.
	GetResume(ctx context.Context, slug string) (models.Resume, error)
	// CreateResumeIfAbsent stores resume unless a document already exists.
	// A concurrent insert is not an error.
	CreateResumeIfAbsent(ctx context.Context, resume models.Resume) error
	// UpsertResume stores resume, keeping UpdatedAt when the document is unchanged.
	UpsertResume(ctx context.Context, resume models.Resume) (models.Resume, error)
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
