package datapackage

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ONSdigital/dp-download-all/catalog"
	"github.com/gosimple/slug"
)

// FromDataset converts a catalog dataset into a manifest. Only the given resources are
// included, in order; the dataset's own resource list is ignored.
func FromDataset(ds *catalog.Dataset, resources []catalog.Resource) *DataPackage {
	dp := &DataPackage{
		Name:        ds.Name,
		Title:       ds.Title,
		Description: ds.Notes,
		Version:     ds.Version,
		Homepage:    ds.URL,
		Resources:   make([]*Resource, 0, len(resources)),
	}

	if ds.LicenseID != "" {
		dp.License = &License{
			Type:  ds.LicenseID,
			Title: ds.LicenseTitle,
			URL:   ds.LicenseURL,
		}
	}

	for _, t := range ds.Tags {
		if t.Name != "" {
			dp.Keywords = append(dp.Keywords, t.Name)
		}
	}

	if len(ds.Extras) > 0 {
		dp.Extras = make(map[string]interface{}, len(ds.Extras))
		for _, e := range ds.Extras {
			dp.Extras[e.Key] = decodeExtra(e.Value)
		}
	}

	seen := map[string]int{}
	for _, r := range resources {
		res := fromResource(r)
		if n, ok := seen[res.Name]; ok {
			seen[res.Name] = n + 1
			res.Name += strconv.Itoa(n)
		} else {
			seen[res.Name] = 0
		}
		dp.Resources = append(dp.Resources, res)
	}

	return dp
}

func fromResource(r catalog.Resource) *Resource {
	res := &Resource{
		Path:        r.URL,
		Format:      strings.ToUpper(r.Format),
		Description: r.Description,
	}
	if r.Name != "" {
		res.Name = slug.Make(r.Name)
		res.Title = r.Name
	} else {
		res.Name = r.ID
	}
	return res
}

// decodeExtra returns the JSON value held by an extra, or the raw string when it is not JSON.
func decodeExtra(s string) interface{} {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil || dec.More() {
		return s
	}
	return v
}

// ResourceFilename is the name a resource's file gets inside the archive: the manifest
// name with any trailing format slug dropped, plus the lower-case format as extension.
// "annual-csv" in CSV format becomes "annual-.csv".
func ResourceFilename(r *Resource) string {
	ext := strings.ToLower(slug.Make(r.Format))
	if ext == "" {
		return r.Name
	}
	return strings.TrimSuffix(r.Name, ext) + "." + ext
}
