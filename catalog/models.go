package catalog

import (
	"encoding/json"
	"io"
)

// Archive resource marker fields, persisted on the catalog resource.
const (
	FieldMetadataModified = "downloadall_metadata_modified"
	FieldDatapackageHash  = "downloadall_datapackage_hash"
)

// Dataset is a catalog dataset as returned by package_show.
type Dataset struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Title            string     `json:"title"`
	Notes            string     `json:"notes"`
	LicenseID        string     `json:"license_id"`
	LicenseTitle     string     `json:"license_title"`
	LicenseURL       string     `json:"license_url"`
	Version          string     `json:"version"`
	URL              string     `json:"url"`
	MetadataModified string     `json:"metadata_modified"`
	Tags             []Tag      `json:"tags"`
	Extras           []Extra    `json:"extras"`
	Resources        []Resource `json:"resources"`

	// Fields holds every top-level field of the dataset exactly as the catalog returned it.
	Fields map[string]interface{} `json:"-"`
}

// UnmarshalJSON decodes the typed fields and keeps the raw dataset fields alongside them.
func (d *Dataset) UnmarshalJSON(b []byte) error {
	type plain Dataset
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	var fields map[string]interface{}
	if err := unmarshalUseNumber(b, &fields); err != nil {
		return err
	}

	*d = Dataset(p)
	d.Fields = fields
	return nil
}

// Field returns the raw value of a top-level dataset field, or nil when absent.
func (d *Dataset) Field(key string) interface{} {
	if d.Fields == nil {
		return nil
	}
	return d.Fields[key]
}

// Tag is a dataset keyword.
type Tag struct {
	Name string `json:"name"`
}

// Extra is a free-form dataset key/value pair.
type Extra struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Resource is a single file or link belonging to a dataset.
type Resource struct {
	ID                          string `json:"id"`
	PackageID                   string `json:"package_id"`
	URL                         string `json:"url"`
	Name                        string `json:"name"`
	Title                       string `json:"title"`
	Description                 string `json:"description"`
	Format                      string `json:"format"`
	URLType                     string `json:"url_type"`
	DatastoreActive             bool   `json:"datastore_active"`
	DownloadAllMetadataModified string `json:"downloadall_metadata_modified"`
	DownloadAllDatapackageHash  string `json:"downloadall_datapackage_hash"`
}

// IsArchive reports whether r is the dataset's generated "download all" archive.
func (r Resource) IsArchive() bool {
	return r.DownloadAllMetadataModified != ""
}

// DatastoreField describes one column of a resource's datastore table.
type DatastoreField struct {
	ID   string             `json:"id"`
	Type string             `json:"type"`
	Info DatastoreFieldInfo `json:"info"`
}

// DatastoreFieldInfo is the data dictionary entry of a datastore column.
type DatastoreFieldInfo struct {
	Label string `json:"label"`
	Notes string `json:"notes"`
}

// ResourceRequest is the payload for creating or patching a resource. When Upload is set
// the file content is sent as a multipart upload and URL is ignored by the catalog.
type ResourceRequest struct {
	ID               string
	PackageID        string
	Name             string
	Format           string
	URL              string
	MetadataModified string
	DatapackageHash  string
	Upload           io.Reader
	UploadFilename   string
}

func (r ResourceRequest) fields() map[string]string {
	f := map[string]string{
		"package_id":          r.PackageID,
		"name":                r.Name,
		"format":              r.Format,
		"url":                 r.URL,
		FieldMetadataModified: r.MetadataModified,
		FieldDatapackageHash:  r.DatapackageHash,
	}
	if r.ID != "" {
		f["id"] = r.ID
	}
	return f
}
