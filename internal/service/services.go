package service

import (
	"github.com/MKhiriev/portfolio-server/internal/adapter"
	"github.com/MKhiriev/portfolio-server/internal/config"
	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/internal/store"
	"github.com/MKhiriev/portfolio-server/internal/utils"
	"github.com/MKhiriev/portfolio-server/internal/validators"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	ProjectService ProjectService
	ResumeService  ResumeService
	UploadService  UploadService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, imageHost adapter.ImageHost, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewContentValidator()
	idGenerator := utils.NewUUIDGenerator()

	return &Services{
		AuthService:    NewAuthService(storages.AdminRepository, cfg, logger),
		PostService:    NewPostService(storages.PostRepository, validator, idGenerator, logger),
		ProjectService: NewProjectService(storages.ProjectRepository, validator, idGenerator, logger),
		ResumeService:  NewResumeService(storages.ResumeRepository, validator, logger),
		UploadService:  NewUploadService(imageHost, cfg, logger),
		AppInfoService: appInfoService,
	}, nil
}
