package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ONSdigital/dp-api-clients-go/v2/middleware"
	"github.com/ONSdigital/dp-download-all/api"
	"github.com/ONSdigital/dp-download-all/catalog"
	"github.com/ONSdigital/dp-download-all/config"
	"github.com/ONSdigital/dp-download-all/content"
	"github.com/ONSdigital/dp-download-all/downloadall"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Service represents the configuration to run the download all service
type Service struct {
	catalogClient  catalog.Client
	downloadClient content.Doer
	archiveStore   ArchiveStore
	updater        *downloadall.Updater
	archive        *api.Archive
	router         *mux.Router
	server         HTTPServer
	shutdown       time.Duration
	healthCheck    HealthChecker
}

// Generate mocks of dependencies
//
//go:generate moq -pkg service_test -out moq_service_test.go . Dependencies HealthChecker HTTPServer ArchiveStore

// Dependencies holds constructors/factories for all external dependencies
type Dependencies interface {
	CatalogClient(*config.Config) catalog.Client
	DownloadClient(*config.Config) content.Doer
	ArchiveStore(context.Context, *config.Config) (ArchiveStore, error)
	HealthCheck(*config.Config, string, string, string) (HealthChecker, error)
	HttpServer(*config.Config, http.Handler) HTTPServer
}

// HealthChecker abstracts healthcheck.HealthCheck so we can create a mock.
type HealthChecker interface {
	AddCheck(string, healthcheck.Checker) error
	Start(context.Context)
	Stop()
	Handler(http.ResponseWriter, *http.Request)
}

// HTTPServer defines the required methods from the HTTP server
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// ArchiveStore is the S3 bucket archives are uploaded to when one is configured.
type ArchiveStore interface {
	Upload(ctx context.Context, key string, r io.Reader) (string, error)
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}

// New returns a new Service with dependencies initialised based on cfg and deps.
func New(ctx context.Context, buildTime, gitCommit, version string, cfg *config.Config, deps Dependencies) (*Service, error) {
	svc := &Service{
		catalogClient:  deps.CatalogClient(cfg),
		downloadClient: deps.DownloadClient(cfg),
		shutdown:       cfg.GracefulShutdownTimeout,
	}

	// The archive store is set up only when a bucket is configured.
	if cfg.UsesObjectStore() {
		store, err := deps.ArchiveStore(ctx, cfg)
		if err != nil {
			log.Error(ctx, "could not create the archive store", err)
			return nil, err
		}
		svc.archiveStore = store
	}

	hc, err := deps.HealthCheck(cfg, buildTime, gitCommit, version)
	if err != nil {
		log.Error(ctx, "could not create health checker", err)
		return nil, err
	}
	svc.healthCheck = hc
	if err = svc.registerCheckers(ctx); err != nil {
		return nil, err
	}

	locks := api.NewDatasetLocks()
	svc.updater = NewUpdater(cfg, svc.catalogClient, svc.downloadClient, svc.archiveStore)
	svc.updater.Locker = locks
	svc.archive = api.NewArchive(svc.updater)

	router := mux.NewRouter()
	if cfg.OtelEnabled {
		router.Use(otelmux.Middleware(cfg.OTServiceName))
	}
	router.Path("/datasets/{id}/archive").Methods(http.MethodPut).HandlerFunc(svc.archive.DoPutArchive())
	router.Path("/archives").Methods(http.MethodPost).HandlerFunc(svc.archive.DoPostArchives())
	router.HandleFunc("/health", hc.Handler)
	svc.router = router

	// Create new middleware chain with whitelisted handler for /health endpoint
	middlewareChain := alice.New(
		middleware.Whitelist(middleware.HealthcheckFilter(hc.Handler)),
		gorillahandlers.RecoveryHandler(gorillahandlers.PrintRecoveryStack(true)),
		api.Limiter(cfg.MaxConcurrentHandlers),
	)

	var r http.Handler = middlewareChain.Then(router)
	if cfg.OtelEnabled {
		r = otelhttp.NewHandler(r, "/")
	}

	svc.server = deps.HttpServer(cfg, r)

	return svc, nil
}

// NewUpdater wires the archive pipeline. store may be nil, in which case archives are
// uploaded to the catalog itself.
func NewUpdater(cfg *config.Config, cli catalog.Client, downloads content.Doer, store ArchiveStore) *downloadall.Updater {
	archiver := content.NewArchiveWriter(content.NewStreamWriter(downloads, cfg.DownloadTimeout))
	archiver.TempDir = cfg.TempDir

	u := &downloadall.Updater{
		Catalog:        cli,
		Builder:        downloadall.NewBuilder(cli, cfg.ExcludedResourceFormats, cfg.DatasetFieldsToAdd),
		Archiver:       archiver,
		TempDir:        cfg.TempDir,
		ResourceName:   cfg.ArchiveResourceName,
		ResourceFormat: cfg.ArchiveResourceFormat,
	}
	if store != nil {
		u.Store = store
	}
	return u
}

func (svc *Service) registerCheckers(ctx context.Context) error {
	var hasErrors bool
	hc := svc.healthCheck

	if err := hc.AddCheck("Catalog API", svc.catalogClient.Checker); err != nil {
		hasErrors = true
		log.Error(ctx, "error adding check for catalog api", err)
	}

	if svc.archiveStore != nil {
		if err := hc.AddCheck("S3", svc.archiveStore.Checker); err != nil {
			hasErrors = true
			log.Error(ctx, "error adding check for s3", err)
		}
	}

	if hasErrors {
		return errors.New("Error(s) registering checkers for healthcheck")
	}
	return nil
}

// Run starts the health checks and the http server.
func (svc *Service) Run(ctx context.Context, svcErrors chan error) {
	svc.healthCheck.Start(ctx)
	go func() {
		log.Info(ctx, "starting download all service...")
		if err := svc.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "download all service http server returned an error", err)
			svcErrors <- err
		}
	}()
}

// Close gracefully shuts the service down, stopping any background archive run.
func (svc *Service) Close(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, svc.shutdown)
	defer cancel()

	log.Info(shutdownCtx, "shutdown with timeout", log.Data{"timeout": svc.shutdown})

	shutdownStart := time.Now()
	svc.healthCheck.Stop()

	var errs []error
	if err := svc.server.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "failed to shutdown http server", err)
		errs = append(errs, err)
	}

	if err := svc.archive.Close(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "background archive update did not stop in time", err)
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.Info(shutdownCtx, "shutdown complete", log.Data{"duration": time.Since(shutdownStart)})
	return nil
}
