// Command downloadall regenerates "download all" archives from the command line.
//
//	downloadall update-zip <dataset> [--force]
//	downloadall update-all-zips [--force]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ONSdigital/dp-download-all/config"
	"github.com/ONSdigital/dp-download-all/downloadall"
	"github.com/ONSdigital/dp-download-all/service"
	"github.com/ONSdigital/dp-download-all/service/external"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/spf13/pflag"
)

const (
	updateZip     = "update-zip"
	updateAllZips = "update-all-zips"
)

var errUsage = errors.New("usage: downloadall update-zip <dataset> [--force] | update-all-zips [--force]")

type command struct {
	name    string
	dataset string
	force   bool
}

func main() {
	log.Namespace = "dp-download-all-cli"

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd, err := parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(ctx, cmd, os.Stdout); err != nil {
		log.Error(ctx, "command failed", err, log.Data{"command": cmd.name, "dataset": cmd.dataset})
		os.Exit(1)
	}
}

func parse(args []string, output io.Writer) (command, error) {
	if len(args) == 0 {
		return command{}, errUsage
	}

	cmd := command{name: args[0]}
	flagSet := pflag.NewFlagSet(cmd.name, pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.BoolVarP(&cmd.force, "force", "f", false, "rebuild the archive even when the dataset has not changed")

	if err := flagSet.Parse(args[1:]); err != nil {
		return command{}, err
	}

	switch cmd.name {
	case updateZip:
		if flagSet.NArg() != 1 {
			return command{}, errUsage
		}
		cmd.dataset = flagSet.Arg(0)
	case updateAllZips:
		if flagSet.NArg() != 0 {
			return command{}, errUsage
		}
	default:
		return command{}, fmt.Errorf("unknown command %q: %w", cmd.name, errUsage)
	}
	return cmd, nil
}

func run(ctx context.Context, cmd command, stdout io.Writer) error {
	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("error getting config: %w", err)
	}

	updater, err := newUpdater(ctx, cfg)
	if err != nil {
		return err
	}

	skipIfNoChanges := !cmd.force
	switch cmd.name {
	case updateZip:
		outcome, err := updater.UpdateArchive(ctx, cmd.dataset, skipIfNoChanges)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: %s\n", outcome.DatasetID, outcome.Status())
	case updateAllZips:
		if err := updater.UpdateAll(ctx, skipIfNoChanges); err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, "SUCCESS")
	return nil
}

func newUpdater(ctx context.Context, cfg *config.Config) (*downloadall.Updater, error) {
	deps := &external.External{}

	var store service.ArchiveStore
	if cfg.UsesObjectStore() {
		s, err := deps.ArchiveStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store = s
	}

	return service.NewUpdater(cfg, deps.CatalogClient(cfg), deps.DownloadClient(cfg), store), nil
}
