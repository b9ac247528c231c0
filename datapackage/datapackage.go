// Package datapackage models the datapackage.json manifest bundled in a dataset archive.
//
// Manifests are typed records, but they serialize and hash through a generic
// JSON-compatible tree (see Value) so that key order never depends on struct layout.
package datapackage

import (
	"bytes"
	"encoding/json"
)

// Filename is the name of the manifest entry inside the archive.
const Filename = "datapackage.json"

// DataPackage is the manifest describing a dataset's downloadable contents.
type DataPackage struct {
	Name        string
	Title       string
	Description string
	License     *License
	Version     string
	Homepage    string
	Keywords    []string
	Extras      map[string]interface{}

	// Fields are dataset fields mirrored as top-level manifest keys.
	Fields map[string]interface{}

	Resources []*Resource
}

// License of the dataset.
type License struct {
	Type  string
	Title string
	URL   string
}

// Resource is one entry of the manifest's resource list. Path is the remote URL until the
// file has been bundled, after which it is the archive filename and Sources holds the URL.
type Resource struct {
	Format      string
	Name        string
	Path        string
	Title       string
	Description string
	Schema      *Schema
	Sources     []Source
}

// Schema describes the columns of a tabular resource.
type Schema struct {
	Fields []Field
}

// Field is a single schema column.
type Field struct {
	Name        string
	Type        string
	Title       string
	Description string
}

// Source records where a bundled resource was downloaded from.
type Source struct {
	Title string
	Path  string
}

// IsLocal reports whether the resource points at a file inside the archive.
func (r *Resource) IsLocal() bool {
	return len(r.Sources) > 0
}

// Localize rewrites r to point at filename inside the archive, keeping its remote path as
// the single source.
func (r *Resource) Localize(title, filename string) {
	r.Sources = []Source{{Title: title, Path: r.Path}}
	r.Path = filename
}

// Value returns the manifest as a JSON-compatible tree of maps, slices and scalars.
// Optional keys are omitted when empty, the resource list included.
func (dp *DataPackage) Value() map[string]interface{} {
	v := make(map[string]interface{}, len(dp.Fields)+8)

	putString(v, "name", dp.Name)
	putString(v, "title", dp.Title)
	putString(v, "description", dp.Description)
	putString(v, "version", dp.Version)
	putString(v, "homepage", dp.Homepage)

	if dp.License != nil {
		l := map[string]interface{}{}
		putString(l, "type", dp.License.Type)
		putString(l, "title", dp.License.Title)
		putString(l, "url", dp.License.URL)
		v["license"] = l
	}

	if len(dp.Keywords) > 0 {
		kw := make([]interface{}, len(dp.Keywords))
		for i, k := range dp.Keywords {
			kw[i] = k
		}
		v["keywords"] = kw
	}

	if len(dp.Extras) > 0 {
		extras := make(map[string]interface{}, len(dp.Extras))
		for k, e := range dp.Extras {
			extras[k] = e
		}
		v["extras"] = extras
	}

	// mirrored fields take precedence over the converted ones, except the resource list
	for k, f := range dp.Fields {
		v[k] = f
	}

	delete(v, "resources")
	if len(dp.Resources) > 0 {
		resources := make([]interface{}, len(dp.Resources))
		for i, r := range dp.Resources {
			resources[i] = r.Value()
		}
		v["resources"] = resources
	}

	return v
}

// Value returns the resource as a JSON-compatible tree.
func (r *Resource) Value() map[string]interface{} {
	v := map[string]interface{}{
		"name": r.Name,
		"path": r.Path,
	}
	putString(v, "format", r.Format)
	putString(v, "title", r.Title)
	putString(v, "description", r.Description)

	if r.Schema != nil {
		fields := make([]interface{}, len(r.Schema.Fields))
		for i, f := range r.Schema.Fields {
			fv := map[string]interface{}{"name": f.Name}
			putString(fv, "type", f.Type)
			putString(fv, "title", f.Title)
			putString(fv, "description", f.Description)
			fields[i] = fv
		}
		v["schema"] = map[string]interface{}{"fields": fields}
	}

	if len(r.Sources) > 0 {
		sources := make([]interface{}, len(r.Sources))
		for i, s := range r.Sources {
			sources[i] = map[string]interface{}{"title": s.Title, "path": s.Path}
		}
		v["sources"] = sources
	}

	return v
}

// MarshalJSON encodes the manifest with keys sorted at every level.
func (dp *DataPackage) MarshalJSON() ([]byte, error) {
	return json.Marshal(dp.Value())
}

// Pretty returns the manifest as it is stored in the archive: 2-space indented, keys
// sorted, UTF-8 without HTML escaping. Identical manifests give identical bytes.
func (dp *DataPackage) Pretty() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dp.Value()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Clone returns a deep copy of the manifest.
func (dp *DataPackage) Clone() *DataPackage {
	c := *dp
	if dp.License != nil {
		l := *dp.License
		c.License = &l
	}
	c.Keywords = append([]string(nil), dp.Keywords...)
	c.Extras = cloneMap(dp.Extras)
	c.Fields = cloneMap(dp.Fields)
	if dp.Resources != nil {
		c.Resources = make([]*Resource, len(dp.Resources))
		for i, r := range dp.Resources {
			c.Resources[i] = r.Clone()
		}
	}
	return &c
}

// Clone returns a deep copy of the resource.
func (r *Resource) Clone() *Resource {
	c := *r
	if r.Schema != nil {
		c.Schema = &Schema{Fields: append([]Field(nil), r.Schema.Fields...)}
	}
	c.Sources = append([]Source(nil), r.Sources...)
	return &c
}

func putString(m map[string]interface{}, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func cloneMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	c := make(map[string]interface{}, len(m))
	for k, v := range m {
		c[k] = cloneValue(v)
	}
	return c
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return cloneMap(t)
	case []interface{}:
		c := make([]interface{}, len(t))
		for i, e := range t {
			c[i] = cloneValue(e)
		}
		return c
	default:
		return v
	}
}
