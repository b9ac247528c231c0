package steps

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ONSdigital/dp-download-all/catalog"
	"github.com/ONSdigital/dp-download-all/config"
	"github.com/ONSdigital/dp-download-all/content"
	"github.com/ONSdigital/dp-download-all/service"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/v3/http"
)

// External provides the component's dependencies: the real catalog client pointed at the
// fake catalog, and the handler served through the component's own server.
type External struct {
	Server *dphttp.Server
}

func (e *External) CatalogClient(cfg *config.Config) catalog.Client {
	return catalog.NewAPIClient(cfg.CatalogAPIURL, cfg.CatalogAPIToken, dphttp.NewClient())
}

func (e *External) DownloadClient(cfg *config.Config) content.Doer {
	return dphttp.ClientWithTimeout(dphttp.NewClient(), cfg.DownloadTimeout)
}

func (e *External) ArchiveStore(ctx context.Context, cfg *config.Config) (service.ArchiveStore, error) {
	return nil, errors.New("component tests publish archives through the catalog")
}

func (e *External) HealthCheck(c *config.Config, s string, s2 string, s3 string) (service.HealthChecker, error) {
	hc := healthcheck.New(healthcheck.VersionInfo{}, time.Second, time.Second)
	return &hc, nil
}

func (e *External) HttpServer(cfg *config.Config, r http.Handler) service.HTTPServer {
	e.Server.Server.Addr = cfg.BindAddr
	e.Server.Server.Handler = r

	return e.Server
}
