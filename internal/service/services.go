package service

import (
	"github.com/MKhiriev/levelup/internal/adapter"
	"github.com/MKhiriev/levelup/internal/config"
	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/store"
	"github.com/MKhiriev/levelup/internal/utils"
	"github.com/MKhiriev/levelup/models"
)

type Services struct {
	AIService       AIService
	DocumentService DocumentService
	LibraryService  LibraryService
	UserService     UserService
	AppInfoService  AppInfoService
}

func NewServices(generator adapter.TextGenerator, storages *store.Storages, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	idGenerator := utils.NewUUIDGenerator()

	aiService := NewAIService(generator, logger)
	documentService := NewDocumentValidationService().Wrap(
		NewDocumentService(storages.DocumentRepository, idGenerator, logger),
	)

	return &Services{
		AIService:       aiService,
		DocumentService: documentService,
		LibraryService:  NewLibraryService(aiService, documentService, logger),
		UserService:     NewUserService(storages.UserRepository, idGenerator, logger),
		AppInfoService:  NewAppInfoService(buildInfo, cfg.App, logger),
	}
}
