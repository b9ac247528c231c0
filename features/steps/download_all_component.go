package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	componenttest "github.com/ONSdigital/dp-component-test"
	"github.com/ONSdigital/dp-download-all/config"
	"github.com/ONSdigital/dp-download-all/service"
	dphttp "github.com/ONSdigital/dp-net/v3/http"
	"github.com/ONSdigital/log.go/v2/log"
)

type DownloadAllComponent struct {
	DpHttpServer *dphttp.Server
	ApiFeature   *componenttest.APIFeature
	Catalog      *FakeCatalog
	Files        *FileServer
	svc          *service.Service
	lastResponse *archiveResponse
	errChan      chan error
	cfg          *config.Config
	deps         *External
}

func NewDownloadAllComponent() *DownloadAllComponent {
	s := dphttp.NewServer("", http.NewServeMux())
	s.HandleOSSignals = false

	d := &DownloadAllComponent{
		DpHttpServer: s,
		Catalog:      NewFakeCatalog(),
		Files:        NewFileServer(),
		errChan:      make(chan error, 1),
	}

	log.Namespace = "dp-download-all"

	os.Setenv("CATALOG_API_URL", d.Catalog.Server.URL)
	os.Setenv("CATALOG_API_TOKEN", "component-token")
	os.Setenv("BUCKET_NAME", "")

	d.cfg, _ = config.Get()
	d.cfg.CatalogAPIURL = d.Catalog.Server.URL
	d.cfg.BucketName = ""
	d.cfg.DownloadTimeout = 5 * time.Second
	d.cfg.TempDir = os.TempDir()

	d.deps = &External{Server: d.DpHttpServer}

	return d
}

func (d *DownloadAllComponent) Initialiser() (http.Handler, error) {
	if d.svc != nil {
		return d.DpHttpServer.Handler, nil
	}

	var err error
	d.svc, err = service.New(context.Background(), "1", "1", "1", d.cfg, d.deps)
	if err != nil {
		return nil, err
	}
	d.svc.Run(context.Background(), d.errChan)

	return d.DpHttpServer.Handler, nil
}

func (d *DownloadAllComponent) Reset() {
	d.Catalog.Reset()
	d.Files.Reset()
	d.lastResponse = nil
}

func (d *DownloadAllComponent) Close() error {
	defer d.Files.Server.Close()
	defer d.Catalog.Close()

	if d.svc == nil {
		return nil
	}
	return d.svc.Close(context.Background())
}

// FileServer serves resource files from memory. Unknown paths answer 404.
type FileServer struct {
	Server *httptest.Server

	mu    sync.Mutex
	files map[string]string
}

func NewFileServer() *FileServer {
	f := &FileServer{files: map[string]string{}}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		body, ok := f.files[req.URL.Path]
		f.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(body))
	}))
	return f
}

func (f *FileServer) Put(path, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = body
}

func (f *FileServer) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files = map[string]string{}
}

func (f *FileServer) URL(path string) string {
	return f.Server.URL + path
}
