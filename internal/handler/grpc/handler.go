// Package grpc exposes the read-only content API over gRPC.
//
// The service is declared by hand in [ContentServiceDesc] and exchanges
// JSON-encoded messages, so clients call it with the "json" content
// subtype instead of protobuf.
package grpc

import (
	"context"

	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/internal/service"
	"github.com/MKhiriev/portfolio-server/models"
)

// Handler is the root gRPC transport handler. It implements [ContentServer]
// on top of the service layer.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

func (h *Handler) ListPosts(ctx context.Context, _ *ListRequest) (*ListPostsResponse, error) {
	posts, err := h.services.PostService.ListPosts(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &ListPostsResponse{Posts: posts}, nil
}

func (h *Handler) GetPost(ctx context.Context, req *GetRequest) (*models.Post, error) {
	post, err := h.services.PostService.GetPost(ctx, req.Key)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &post, nil
}

func (h *Handler) ListProjects(ctx context.Context, _ *ListRequest) (*ListProjectsResponse, error) {
	projects, err := h.services.ProjectService.ListProjects(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &ListProjectsResponse{Projects: projects}, nil
}

func (h *Handler) GetProject(ctx context.Context, req *GetRequest) (*models.Project, error) {
	project, err := h.services.ProjectService.GetProject(ctx, req.Key)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &project, nil
}

func (h *Handler) GetResume(ctx context.Context, _ *ListRequest) (*models.Resume, error) {
	resume, err := h.services.ResumeService.GetResume(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &resume, nil
}
