package config

import (
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ConfigUrl is a url.URL that envconfig can decode from an environment variable
type ConfigUrl struct {
	url.URL
}

// Decode implements envconfig.Decoder
func (c *ConfigUrl) Decode(value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return err
	}
	c.URL = *u
	return nil
}

// Config represents the configuration required for the dp-download-all service
type Config struct {
	BindAddr                   string        `envconfig:"BIND_ADDR"`
	CatalogAPIURL              string        `envconfig:"CATALOG_API_URL"`
	CatalogAPIToken            string        `envconfig:"CATALOG_API_TOKEN"                    json:"-"`
	CatalogTimeout             time.Duration `envconfig:"CATALOG_TIMEOUT"`
	ExcludedResourceFormats    []string      `envconfig:"EXCLUDED_RESOURCE_FORMATS"`
	DatasetFieldsToAdd         []string      `envconfig:"DATASET_FIELDS_TO_ADD_TO_DATAPACKAGE"`
	DownloadTimeout            time.Duration `envconfig:"DOWNLOAD_TIMEOUT"`
	TempDir                    string        `envconfig:"TEMP_DIR"`
	ArchiveResourceName        string        `envconfig:"ARCHIVE_RESOURCE_NAME"`
	ArchiveResourceFormat      string        `envconfig:"ARCHIVE_RESOURCE_FORMAT"`
	GracefulShutdownTimeout    time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval        time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
	MaxConcurrentHandlers      int           `envconfig:"MAX_CONCURRENT_HANDLERS"`
	AwsRegion                  string        `envconfig:"AWS_REGION"`
	BucketName                 string        `envconfig:"BUCKET_NAME"`
	PublicBucketURL            ConfigUrl     `envconfig:"PUBLIC_BUCKET_URL"`
	LocalObjectStore           string        `envconfig:"LOCAL_OBJECT_STORE"`
	MinioAccessKey             string        `envconfig:"MINIO_ACCESS_KEY"                     json:"-"`
	MinioSecretKey             string        `envconfig:"MINIO_SECRET_KEY"                     json:"-"`
	OtelEnabled                bool          `envconfig:"OTEL_ENABLED"`
	OTExporterOTLPEndpoint     string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTServiceName              string        `envconfig:"OTEL_SERVICE_NAME"`
	OTBatchTimeout             time.Duration `envconfig:"OTEL_BATCH_TIMEOUT"`
}

var cfg *Config

// Get retrieves the config from the environment for the dp-download-all service
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		BindAddr:                   ":26900",
		CatalogAPIURL:              "http://localhost:5000",
		CatalogTimeout:             30 * time.Second,
		ExcludedResourceFormats:    []string{"API"},
		DownloadTimeout:            300 * time.Second,
		ArchiveResourceName:        "All resource data",
		ArchiveResourceFormat:      "ZIP",
		GracefulShutdownTimeout:    5 * time.Second,
		HealthCheckInterval:        30 * time.Second,
		HealthCheckCriticalTimeout: 90 * time.Second,
		MaxConcurrentHandlers:      0,
		AwsRegion:                  "eu-west-2",
		OTExporterOTLPEndpoint:     "localhost:4317",
		OTServiceName:              "dp-download-all",
		OTBatchTimeout:             5 * time.Second,
	}

	return cfg, envconfig.Process("", cfg)
}

// UsesObjectStore reports whether archives are uploaded to S3 rather than to the catalog
func (c *Config) UsesObjectStore() bool {
	return c.BucketName != ""
}
