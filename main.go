package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/ONSdigital/dp-download-all/config"
	"github.com/ONSdigital/dp-download-all/service"
	"github.com/ONSdigital/dp-download-all/service/external"
	dpotelgo "github.com/ONSdigital/dp-otel-go"
	"github.com/ONSdigital/log.go/v2/log"
)

const serviceName = "dp-download-all"

var (
	// BuildTime represents the time in which the service was built
	BuildTime string
	// GitCommit represents the commit (SHA-1) hash of the service that is running
	GitCommit string
	// Version represents the version of the service that is running
	Version string
)

func main() {
	log.Namespace = serviceName
	ctx := context.Background()

	if err := run(ctx); err != nil {
		log.Fatal(ctx, "fatal runtime error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	cfg, err := config.Get()
	if err != nil {
		log.Error(ctx, "error getting config", err)
		return err
	}
	log.Info(ctx, "config on startup", log.Data{"config": cfg, "build_time": BuildTime, "git-commit": GitCommit})

	if cfg.OtelEnabled {
		otelShutdown, oErr := dpotelgo.SetupOTelSDK(ctx, dpotelgo.Config{
			OtelServiceName:          cfg.OTServiceName,
			OtelExporterOtlpEndpoint: cfg.OTExporterOTLPEndpoint,
			OtelBatchTimeout:         cfg.OTBatchTimeout,
		})
		if oErr != nil {
			log.Error(ctx, "error setting up open telemetry", oErr)
			return oErr
		}
		defer func() {
			err = errors.Join(err, otelShutdown(context.Background()))
		}()
	}

	svc, err := service.New(ctx, BuildTime, GitCommit, Version, cfg, &external.External{})
	if err != nil {
		log.Error(ctx, "could not initialise service", err)
		return err
	}

	svcErrors := make(chan error, 1)
	svc.Run(ctx, svcErrors)

	select {
	case err = <-svcErrors:
		log.Error(ctx, "service error received", err)
	case sig := <-signals:
		log.Info(ctx, "os signal received", log.Data{"signal": sig})
	}

	if cErr := svc.Close(ctx); cErr != nil {
		err = errors.Join(err, cErr)
	}
	return err
}
