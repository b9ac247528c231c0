package service

// This set of methods is only available when testing so tests can
// access internal Service struct fields.

import (
	"time"

	"github.com/ONSdigital/dp-download-all/catalog"
	"github.com/ONSdigital/dp-download-all/content"
	"github.com/ONSdigital/dp-download-all/downloadall"
	"github.com/gorilla/mux"
)

func (svc *Service) GetCatalogClient() catalog.Client {
	return svc.catalogClient
}

func (svc *Service) GetDownloadClient() content.Doer {
	return svc.downloadClient
}

func (svc *Service) GetArchiveStore() ArchiveStore {
	return svc.archiveStore
}

func (svc *Service) GetUpdater() *downloadall.Updater {
	return svc.updater
}

func (svc *Service) GetRouter() *mux.Router {
	return svc.router
}

func (svc *Service) GetShutdownTimeout() time.Duration {
	return svc.shutdown
}

func (svc *Service) GetHealthChecker() HealthChecker {
	return svc.healthCheck
}
