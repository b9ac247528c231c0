package downloadall

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ONSdigital/dp-download-all/catalog"
	"github.com/ONSdigital/dp-download-all/content"
	"github.com/ONSdigital/dp-download-all/datapackage"
	"github.com/ONSdigital/log.go/v2/log"
)

// Builder generates a dataset's manifest from the catalog.
type Builder struct {
	Catalog catalog.Client

	// ExcludedFormats are resource formats never bundled, compared case-insensitively.
	ExcludedFormats []string

	// FieldsToAdd are dataset fields mirrored as top-level manifest keys.
	FieldsToAdd []string
}

// NewBuilder creates a Builder.
func NewBuilder(cli catalog.Client, excludedFormats, fieldsToAdd []string) *Builder {
	return &Builder{
		Catalog:         cli,
		ExcludedFormats: excludedFormats,
		FieldsToAdd:     fieldsToAdd,
	}
}

// Build fetches the dataset and generates its manifest. Alongside the manifest it returns
// the entries to bundle, aligned with the manifest's resources, and the dataset's existing
// archive resource, if any.
func (b *Builder) Build(ctx context.Context, datasetID string) (*datapackage.DataPackage, []content.Entry, *catalog.Resource, error) {
	ds, err := b.fetch(ctx, datasetID)
	if err != nil {
		return nil, nil, nil, err
	}
	return b.BuildFromDataset(ctx, ds)
}

// BuildFromDataset generates the manifest of an already fetched dataset.
func (b *Builder) BuildFromDataset(ctx context.Context, ds *catalog.Dataset) (*datapackage.DataPackage, []content.Entry, *catalog.Resource, error) {
	resources, archive := b.partition(ctx, ds)

	dp := datapackage.FromDataset(ds, resources)

	entries := make([]content.Entry, len(resources))
	for i, r := range resources {
		entries[i] = content.Entry{Resource: r, Manifest: dp.Resources[i]}
		if r.DatastoreActive && entries[i].Manifest.Schema == nil {
			b.populateSchema(ctx, ds, entries[i])
		}
	}

	if len(b.FieldsToAdd) > 0 {
		dp.Fields = make(map[string]interface{}, len(b.FieldsToAdd))
		for _, key := range b.FieldsToAdd {
			dp.Fields[key] = ds.Field(key)
		}
	}

	return dp, entries, archive, nil
}

func (b *Builder) fetch(ctx context.Context, datasetID string) (*catalog.Dataset, error) {
	ds, err := b.Catalog.GetDataset(ctx, datasetID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			err = fmt.Errorf("%w: %w", ErrDatasetNotFound, err)
		}
		return nil, newError("fetch dataset", datasetID, err, nil)
	}
	return ds, nil
}

// partition splits the dataset's resources into those to bundle and the existing archive.
func (b *Builder) partition(ctx context.Context, ds *catalog.Dataset) ([]catalog.Resource, *catalog.Resource) {
	var archive *catalog.Resource
	resources := make([]catalog.Resource, 0, len(ds.Resources))

	for i, r := range ds.Resources {
		logData := log.Data{
			"dataset":     ds.Name,
			"resource_id": r.ID,
			"position":    fmt.Sprintf("%d/%d", i+1, len(ds.Resources)),
		}
		if r.IsArchive() {
			log.Info(ctx, "resource skipped, it is the archive itself", logData)
			a := ds.Resources[i]
			archive = &a
			continue
		}
		if b.excluded(r.Format) {
			logData["format"] = r.Format
			log.Info(ctx, "resource skipped, format is excluded", logData)
			continue
		}
		resources = append(resources, r)
	}

	return resources, archive
}

func (b *Builder) excluded(format string) bool {
	for _, f := range b.ExcludedFormats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

func (b *Builder) populateSchema(ctx context.Context, ds *catalog.Dataset, e content.Entry) {
	fields, err := b.Catalog.DatastoreFields(ctx, e.Resource.ID)
	if err != nil {
		log.Warn(ctx, "could not read datastore fields, resource will have no schema", log.Data{
			"dataset":     ds.Name,
			"resource_id": e.Resource.ID,
			"error":       err.Error(),
		})
		return
	}
	e.Manifest.Schema = datapackage.SchemaFromDatastore(fields)
}

// HasChangedSignificantly reports whether a freshly built manifest differs from the one the
// existing archive was built from. existing must not be nil.
func HasChangedSignificantly(dp *datapackage.DataPackage, entries []content.Entry, existing *catalog.Resource) bool {
	if existing == nil {
		panic("downloadall: HasChangedSignificantly called without an existing archive resource")
	}
	return datapackage.Hash(dp) != existing.DownloadAllDatapackageHash
}
