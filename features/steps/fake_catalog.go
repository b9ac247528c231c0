package steps

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"

	"github.com/ONSdigital/dp-download-all/catalog"
	"github.com/gorilla/mux"
)

// FakeCatalog is an in-memory catalog action API.
type FakeCatalog struct {
	Server *httptest.Server

	mu       sync.Mutex
	datasets map[string]*catalog.Dataset
	uploads  map[string][]byte
	nextID   int
}

type actionResult struct {
	Success bool         `json:"success"`
	Result  interface{}  `json:"result,omitempty"`
	Error   *actionError `json:"error,omitempty"`
}

type actionError struct {
	Type    string `json:"__type"`
	Message string `json:"message"`
}

// datasetDoc is how package_show renders a dataset.
type datasetDoc struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Title            string             `json:"title"`
	Notes            string             `json:"notes"`
	MetadataModified string             `json:"metadata_modified"`
	Resources        []catalog.Resource `json:"resources"`
}

func NewFakeCatalog() *FakeCatalog {
	c := &FakeCatalog{}
	c.Reset()

	r := mux.NewRouter()
	r.HandleFunc("/api/3/action/status_show", c.statusShow)
	r.HandleFunc("/api/3/action/package_show", c.packageShow)
	r.HandleFunc("/api/3/action/package_list", c.packageList)
	r.HandleFunc("/api/3/action/datastore_search", c.datastoreSearch)
	r.HandleFunc("/api/3/action/resource_create", c.resourceCreate).Methods(http.MethodPost)
	r.HandleFunc("/api/3/action/resource_patch", c.resourcePatch).Methods(http.MethodPost)
	c.Server = httptest.NewServer(r)

	return c
}

func (c *FakeCatalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.datasets = map[string]*catalog.Dataset{}
	c.uploads = map[string][]byte{}
	c.nextID = 0
}

func (c *FakeCatalog) Close() {
	c.Server.Close()
}

// AddDataset stores ds, assigning resource ids where they are missing.
func (c *FakeCatalog) AddDataset(ds *catalog.Dataset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range ds.Resources {
		if ds.Resources[i].ID == "" {
			ds.Resources[i].ID = c.newID()
		}
		ds.Resources[i].PackageID = ds.ID
	}
	c.datasets[ds.ID] = ds
}

// ArchiveResource returns the archive resource of a dataset and its uploaded bytes.
func (c *FakeCatalog) ArchiveResource(name string) (*catalog.Resource, []byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ds := c.find(name)
	if ds == nil {
		return nil, nil, fmt.Errorf("dataset %q not found", name)
	}
	var found []catalog.Resource
	for _, r := range ds.Resources {
		if r.IsArchive() {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 0:
		return nil, nil, fmt.Errorf("dataset %q has no archive resource", name)
	case 1:
		return &found[0], c.uploads[found[0].ID], nil
	default:
		return nil, nil, fmt.Errorf("dataset %q has %d archive resources", name, len(found))
	}
}

func (c *FakeCatalog) newID() string {
	c.nextID++
	return fmt.Sprintf("resource-%d", c.nextID)
}

func (c *FakeCatalog) find(ref string) *catalog.Dataset {
	if ds, ok := c.datasets[ref]; ok {
		return ds
	}
	for _, ds := range c.datasets {
		if ds.Name == ref {
			return ds
		}
	}
	return nil
}

func (c *FakeCatalog) statusShow(w http.ResponseWriter, req *http.Request) {
	writeAction(w, http.StatusOK, map[string]string{"site_title": "fake catalog"})
}

func (c *FakeCatalog) packageShow(w http.ResponseWriter, req *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ds := c.find(req.URL.Query().Get("id"))
	if ds == nil {
		writeNotFound(w)
		return
	}
	writeAction(w, http.StatusOK, datasetDoc{
		ID:               ds.ID,
		Name:             ds.Name,
		Title:            ds.Title,
		Notes:            ds.Notes,
		MetadataModified: ds.MetadataModified,
		Resources:        ds.Resources,
	})
}

func (c *FakeCatalog) packageList(w http.ResponseWriter, req *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.datasets))
	for _, ds := range c.datasets {
		names = append(names, ds.Name)
	}
	sort.Strings(names)
	writeAction(w, http.StatusOK, names)
}

func (c *FakeCatalog) datastoreSearch(w http.ResponseWriter, req *http.Request) {
	writeNotFound(w)
}

func (c *FakeCatalog) resourceCreate(w http.ResponseWriter, req *http.Request) {
	c.writeResource(w, req, false)
}

func (c *FakeCatalog) resourcePatch(w http.ResponseWriter, req *http.Request) {
	c.writeResource(w, req, true)
}

func (c *FakeCatalog) writeResource(w http.ResponseWriter, req *http.Request, patch bool) {
	fields, upload, err := readResourceRequest(req)
	if err != nil {
		writeAction(w, http.StatusBadRequest, nil)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ds := c.find(fields["package_id"])
	if ds == nil {
		writeNotFound(w)
		return
	}

	res := catalog.Resource{
		ID:                          fields["id"],
		PackageID:                   ds.ID,
		Name:                        fields["name"],
		Format:                      fields["format"],
		URL:                         fields["url"],
		DownloadAllMetadataModified: fields[catalog.FieldMetadataModified],
		DownloadAllDatapackageHash:  fields[catalog.FieldDatapackageHash],
	}

	if patch {
		i := resourceIndex(ds, res.ID)
		if i < 0 {
			writeNotFound(w)
			return
		}
		ds.Resources[i] = res
	} else {
		res.ID = c.newID()
		ds.Resources = append(ds.Resources, res)
	}
	if upload != nil {
		c.uploads[res.ID] = upload
	}

	writeAction(w, http.StatusOK, res)
}

func resourceIndex(ds *catalog.Dataset, id string) int {
	for i, r := range ds.Resources {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func readResourceRequest(req *http.Request) (map[string]string, []byte, error) {
	fields := map[string]string{}

	if req.Header.Get("Content-Type") == "application/json" {
		err := json.NewDecoder(req.Body).Decode(&fields)
		return fields, nil, err
	}

	if err := req.ParseMultipartForm(32 << 20); err != nil {
		return nil, nil, err
	}
	for k, v := range req.MultipartForm.Value {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}

	f, _, err := req.FormFile("upload")
	if err != nil {
		return fields, nil, nil
	}
	defer f.Close()
	upload, err := io.ReadAll(f)
	return fields, upload, err
}

func writeNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(actionResult{Error: &actionError{Type: "Not Found Error", Message: "Not found"}})
}

func writeAction(w http.ResponseWriter, status int, result interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(actionResult{Success: status == http.StatusOK, Result: result})
}
