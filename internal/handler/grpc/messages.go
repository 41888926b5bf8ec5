package grpc

import "github.com/MKhiriev/portfolio-server/models"

// ListRequest is the empty request of the list and singleton methods.
type ListRequest struct{}

// GetRequest addresses one document by id or slug.
type GetRequest struct {
	Key string `json:"key"`
}

type ListPostsResponse struct {
	Posts []models.Post `json:"posts"`
}

type ListProjectsResponse struct {
	Projects []models.Project `json:"projects"`
}
