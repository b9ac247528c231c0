package downloadall

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ONSdigital/dp-download-all/catalog"
	"github.com/ONSdigital/dp-download-all/content"
	"github.com/ONSdigital/dp-download-all/datapackage"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/google/uuid"
)

//go:generate moq -rm -pkg downloadall_test -out moq_updater_test.go . Archiver ArchiveStore

// Archiver writes a dataset archive into a file.
type Archiver interface {
	WriteReport(ctx context.Context, f *os.File, dp *datapackage.DataPackage, entries []content.Entry) (*content.Report, error)
}

// ArchiveStore keeps archive files outside the catalog and returns their public URL.
type ArchiveStore interface {
	Upload(ctx context.Context, key string, r io.Reader) (string, error)
}

// Locker serializes work on a single dataset.
type Locker interface {
	Lock(key string) (unlock func())
}

// Outcome describes what an update did.
type Outcome struct {
	DatasetID   string `json:"dataset_id"`
	DatasetName string `json:"dataset_name"`
	Skipped     bool   `json:"skipped"`
	Created     bool   `json:"created,omitempty"`
	ResourceID  string `json:"resource_id,omitempty"`
	Hash        string `json:"datapackage_hash,omitempty"`
	Size        int64  `json:"size,omitempty"`
	Downloaded  int    `json:"downloaded"`
	Failed      int    `json:"failed"`
}

// Status is a short description of the outcome.
func (o Outcome) Status() string {
	switch {
	case o.Skipped:
		return "skipped"
	case o.Created:
		return "created"
	default:
		return "updated"
	}
}

// Updater regenerates and publishes dataset archives.
type Updater struct {
	Catalog  catalog.Client
	Builder  *Builder
	Archiver Archiver

	// Store is optional; without it archives are uploaded to the catalog directly.
	Store ArchiveStore

	// Locker is optional; when set, updates of the same dataset reference run one at a time.
	Locker Locker

	TempDir        string
	ResourceName   string
	ResourceFormat string
}

// UpdateArchive creates or updates the archive resource of a dataset. With skipIfNoChanges
// an existing archive built from an identical manifest is left alone.
func (u *Updater) UpdateArchive(ctx context.Context, datasetID string, skipIfNoChanges bool) (Outcome, error) {
	logData := log.Data{"run_id": uuid.NewString(), "dataset_id": datasetID}
	out := Outcome{DatasetID: datasetID}

	if u.Locker != nil {
		unlock := u.Locker.Lock(datasetID)
		defer unlock()
	}

	ds, err := u.Builder.fetch(ctx, datasetID)
	if err != nil {
		return out, err
	}
	out.DatasetID, out.DatasetName = ds.ID, ds.Name
	logData["dataset"] = ds.Name
	log.Info(ctx, "updating archive", logData)

	dp, entries, existing, err := u.Builder.BuildFromDataset(ctx, ds)
	if err != nil {
		return out, newError("build manifest", datasetID, err, logData)
	}

	if skipIfNoChanges && existing != nil && !HasChangedSignificantly(dp, entries, existing) {
		out.Skipped = true
		out.ResourceID = existing.ID
		out.Hash = existing.DownloadAllDatapackageHash
		log.Info(ctx, "skipping archive update, manifest has not changed", logData)
		return out, nil
	}

	f, err := os.CreateTemp(u.TempDir, ds.Name+"-*.zip")
	if err != nil {
		return out, newError("create temp file", datasetID, err, logData)
	}
	defer removeTemp(ctx, f)

	rep, err := u.Archiver.WriteReport(ctx, f, dp, entries)
	if err != nil {
		return out, newError("write archive", datasetID, err, logData)
	}
	out.Size = rep.Size
	out.Downloaded = rep.Downloaded()
	out.Failed = rep.Skipped()
	out.Hash = datapackage.Hash(dp)

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return out, newError("write archive", datasetID, err, logData)
	}

	req, err := u.resourceRequest(ctx, ds, f, out.Hash)
	if err != nil {
		return out, newError("publish archive", datasetID, fmt.Errorf("%w: %w", ErrPublish, err), logData)
	}

	var res *catalog.Resource
	if existing == nil {
		log.Info(ctx, "creating archive resource", logData)
		res, err = u.Catalog.CreateResource(ctx, req)
		out.Created = err == nil
	} else {
		log.Info(ctx, "patching archive resource", logData)
		req.ID = existing.ID
		res, err = u.Catalog.PatchResource(ctx, req)
	}
	if err != nil {
		return out, newError("publish archive", datasetID, fmt.Errorf("%w: %w", ErrPublish, err), logData)
	}
	if res != nil {
		out.ResourceID = res.ID
	}

	logData["resource_id"] = out.ResourceID
	logData["size"] = out.Size
	logData["datapackage_hash"] = out.Hash
	log.Info(ctx, "archive published", logData)
	return out, nil
}

// resourceRequest describes the archive resource, uploading the file to the store first
// when one is configured.
func (u *Updater) resourceRequest(ctx context.Context, ds *catalog.Dataset, f *os.File, hash string) (catalog.ResourceRequest, error) {
	req := catalog.ResourceRequest{
		PackageID:        ds.ID,
		Name:             u.ResourceName,
		Format:           u.ResourceFormat,
		MetadataModified: ds.MetadataModified,
		DatapackageHash:  hash,
	}

	if u.Store == nil {
		req.URL = filepath.Base(f.Name())
		req.Upload = f
		req.UploadFilename = filepath.Base(f.Name())
		return req, nil
	}

	url, err := u.Store.Upload(ctx, archiveKey(ds, hash), f)
	if err != nil {
		return req, err
	}
	req.URL = url
	return req, nil
}

// archiveKey names each build's object after its manifest hash, so the object the catalog
// points at is never overwritten before the resource has been patched.
func archiveKey(ds *catalog.Dataset, hash string) string {
	if len(hash) > archiveKeyHashLen {
		hash = hash[:archiveKeyHashLen]
	}
	return ds.ID + "/" + ds.Name + "-" + hash + ".zip"
}

const archiveKeyHashLen = 12

// DatasetNames lists the names of every dataset in the catalog.
func (u *Updater) DatasetNames(ctx context.Context) ([]string, error) {
	return u.Catalog.ListDatasets(ctx)
}

// UpdateAll updates the archive of every dataset in the catalog, one at a time. A failing
// dataset does not stop the run; all failures are returned together.
func (u *Updater) UpdateAll(ctx context.Context, skipIfNoChanges bool) error {
	names, err := u.DatasetNames(ctx)
	if err != nil {
		return fmt.Errorf("list datasets: %w", err)
	}

	var errs []error
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		logData := log.Data{"dataset": name, "position": fmt.Sprintf("%d/%d", i+1, len(names))}
		log.Info(ctx, "processing dataset", logData)

		if _, err := u.UpdateArchive(ctx, name, skipIfNoChanges); err != nil {
			log.Error(ctx, "archive update failed", err, logData)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func removeTemp(ctx context.Context, f *os.File) {
	if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		log.Warn(ctx, "error closing temp file", log.Data{"file": f.Name(), "error": err.Error()})
	}
	if err := os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn(ctx, "error removing temp file", log.Data{"file": f.Name(), "error": err.Error()})
	}
}
