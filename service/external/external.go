package external

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ONSdigital/dp-download-all/catalog"
	"github.com/ONSdigital/dp-download-all/config"
	"github.com/ONSdigital/dp-download-all/content"
	"github.com/ONSdigital/dp-download-all/service"
	"github.com/ONSdigital/dp-download-all/storage"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/v3/http"
	s3client "github.com/ONSdigital/dp-s3/v3"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Resource uploads are streamed, so they cannot be replayed by the retrying client.
var catalogPathsWithNoRetries = []string{
	"/api/3/action/resource_create",
	"/api/3/action/resource_patch",
}

// External implements the service.Dependencies interface for actual external services.
type External struct{}

var _ service.Dependencies = &External{}

// CatalogClient bounds metadata calls by CatalogTimeout. Archive uploads use a second client
// where CatalogTimeout only bounds the wait for the response once the body has been sent.
func (*External) CatalogClient(cfg *config.Config) catalog.Client {
	cli := dphttp.ClientWithTimeout(newClient(cfg, 0), cfg.CatalogTimeout)

	upload := newClient(cfg, cfg.CatalogTimeout)
	upload.SetPathsWithNoRetries(catalogPathsWithNoRetries)

	return catalog.NewAPIClient(cfg.CatalogAPIURL, cfg.CatalogAPIToken, cli).WithUploadClient(upload)
}

// DownloadClient has no overall timeout; DownloadTimeout bounds the wait for response
// headers here and the gaps between body reads in content.StreamWriter.
func (*External) DownloadClient(cfg *config.Config) content.Doer {
	return newClient(cfg, cfg.DownloadTimeout)
}

// ArchiveStore obtains an S3 backed archive store, pointed at a local object store when
// LocalObjectStore is set.
func (*External) ArchiveStore(ctx context.Context, cfg *config.Config) (service.ArchiveStore, error) {
	if cfg.LocalObjectStore != "" {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx,
			awsConfig.WithRegion(cfg.AwsRegion),
			awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.MinioAccessKey, cfg.MinioSecretKey, "")),
		)
		if err != nil {
			return nil, fmt.Errorf("could not create aws config: %w", err)
		}

		cli := s3client.NewClientWithConfig(cfg.BucketName, awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.LocalObjectStore)
			o.UsePathStyle = true
		})
		return storage.NewArchiveStore(cli, cfg.BucketName, publicURL(cfg)), nil
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.AwsRegion))
	if err != nil {
		return nil, fmt.Errorf("could not create aws config: %w", err)
	}

	cli := s3client.NewClientWithConfig(cfg.BucketName, awsCfg)
	return storage.NewArchiveStore(cli, cfg.BucketName, publicURL(cfg)), nil
}

func (*External) HealthCheck(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
	versionInfo, err := healthcheck.NewVersionInfo(buildTime, gitCommit, version)
	if err != nil {
		return nil, err
	}
	hc := healthcheck.New(versionInfo, cfg.HealthCheckCriticalTimeout, cfg.HealthCheckInterval)
	return &hc, nil
}

func (*External) HttpServer(cfg *config.Config, r http.Handler) service.HTTPServer {
	s := dphttp.NewServer(cfg.BindAddr, r)
	s.HandleOSSignals = false

	return s
}

// newClient returns a client without an overall request timeout. A non-zero
// responseHeaderTimeout bounds the wait for response headers after the request is written.
func newClient(cfg *config.Config, responseHeaderTimeout time.Duration) dphttp.Clienter {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = responseHeaderTimeout

	var rt http.RoundTripper = transport
	if cfg.OtelEnabled {
		rt = otelhttp.NewTransport(transport)
	}

	cli := dphttp.NewClientWithTransport(rt)
	cli.SetTimeout(0)
	return cli
}

func publicURL(cfg *config.Config) *url.URL {
	if cfg.PublicBucketURL.String() == "" {
		return nil
	}
	return &cfg.PublicBucketURL.URL
}
