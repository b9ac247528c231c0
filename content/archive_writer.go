package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/ONSdigital/dp-download-all/catalog"
	"github.com/ONSdigital/dp-download-all/datapackage"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/klauspost/compress/zip"
	"github.com/opencontainers/go-digest"
)

// Entry pairs a catalog resource with its manifest resource. Downloading the resource
// localizes the manifest resource in place.
type Entry struct {
	Resource catalog.Resource
	Manifest *datapackage.Resource
}

// Result is the outcome of bundling one entry. Err is set when the file was skipped.
type Result struct {
	Filename string
	URL      string
	Size     int64
	Digest   digest.Digest
	Err      error
}

// Downloaded reports whether the file made it into the archive.
func (r Result) Downloaded() bool {
	return r.Err == nil
}

// Report summarises a written archive.
type Report struct {
	Size    int64
	Results []Result
}

// Downloaded returns the number of files bundled into the archive.
func (r *Report) Downloaded() int {
	n := 0
	for _, res := range r.Results {
		if res.Downloaded() {
			n++
		}
	}
	return n
}

// Skipped returns the number of files left out of the archive.
func (r *Report) Skipped() int {
	return len(r.Results) - r.Downloaded()
}

// Fetcher streams a remote file into a lazily opened writer.
type Fetcher interface {
	StreamAndWrite(ctx context.Context, url string, open func() (io.Writer, error)) (int64, digest.Digest, error)
}

// ArchiveWriter writes the "download all" zip for a dataset. Each file is staged in
// TempDir and only added to the zip once it has downloaded completely.
type ArchiveWriter struct {
	Fetcher Fetcher
	Now     func() time.Time
	TempDir string
}

// NewArchiveWriter creates an ArchiveWriter downloading files with f.
func NewArchiveWriter(f Fetcher) *ArchiveWriter {
	return &ArchiveWriter{Fetcher: f, Now: time.Now}
}

// Write writes the archive into f and returns its size in bytes.
func (a *ArchiveWriter) Write(ctx context.Context, f *os.File, dp *datapackage.DataPackage, entries []Entry) (int64, error) {
	rep, err := a.WriteReport(ctx, f, dp, entries)
	if err != nil {
		return 0, err
	}
	return rep.Size, nil
}

// WriteReport writes the archive into f: each entry's file in order, then the manifest.
// Files that cannot be downloaded are left out and keep their remote path in the manifest.
func (a *ArchiveWriter) WriteReport(ctx context.Context, f *os.File, dp *datapackage.DataPackage, entries []Entry) (*Report, error) {
	now := a.Now()
	zw := zip.NewWriter(f)

	rep := &Report{Results: make([]Result, 0, len(entries))}
	used := make(map[string]bool, len(entries))
	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := a.writeEntry(ctx, zw, now, used, e)
		if err != nil {
			return nil, err
		}
		rep.Results = append(rep.Results, res)

		logData := log.Data{
			"dataset":  dp.Name,
			"url":      res.URL,
			"filename": res.Filename,
			"entry":    i + 1,
			"entries":  len(entries),
		}
		if !res.Downloaded() {
			var dlErr *DownloadError
			if errors.As(res.Err, &dlErr) {
				for k, v := range dlErr.LogData() {
					logData[k] = v
				}
			}
			log.Error(ctx, "resource could not be downloaded, it will stay a remote resource", res.Err, logData)
			continue
		}
		logData["size"] = res.Size
		logData["digest"] = res.Digest.String()
		log.Info(ctx, "resource added to archive", logData)
	}

	if err := writeManifest(zw, now, dp); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	rep.Size = info.Size()

	log.Info(ctx, "archive written", log.Data{
		"dataset":    dp.Name,
		"file":       f.Name(),
		"size":       rep.Size,
		"downloaded": rep.Downloaded(),
		"skipped":    rep.Skipped(),
	})
	return rep, nil
}

// writeEntry bundles a single file. Download failures are reported in the Result; only a
// failure to write the archive itself is returned as an error.
func (a *ArchiveWriter) writeEntry(ctx context.Context, zw *zip.Writer, now time.Time, used map[string]bool, e Entry) (Result, error) {
	res := Result{
		Filename: uniqueFilename(used, datapackage.ResourceFilename(e.Manifest)),
		URL:      e.Resource.URL,
	}

	var staged *os.File
	defer func() { discardStaged(ctx, staged) }()
	open := func() (io.Writer, error) {
		f, err := os.CreateTemp(a.TempDir, "resource-*")
		if err != nil {
			return nil, err
		}
		staged = f
		return f, nil
	}

	res.Size, res.Digest, res.Err = a.Fetcher.StreamAndWrite(ctx, e.Resource.URL, open)
	if res.Err != nil {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		var dlErr *DownloadError
		if !errors.As(res.Err, &dlErr) {
			return res, res.Err
		}
		return res, nil
	}

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     res.Filename,
		Method:   zip.Deflate,
		Modified: now,
	})
	if err != nil {
		return res, err
	}
	if staged != nil {
		if _, err := staged.Seek(0, io.SeekStart); err != nil {
			return res, err
		}
		if _, err := io.Copy(w, staged); err != nil {
			return res, err
		}
	}

	used[res.Filename] = true
	e.Manifest.Localize(sourceTitle(e), res.Filename)
	return res, nil
}

// uniqueFilename suffixes name with a counter before its extension until it is not in used.
func uniqueFilename(used map[string]bool, name string) string {
	if !used[name] && name != datapackage.Filename {
		return name
	}
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s%d%s", base, i, ext)
		if !used[candidate] {
			return candidate
		}
	}
}

func discardStaged(ctx context.Context, f *os.File) {
	if f == nil {
		return
	}
	if err := f.Close(); err != nil {
		log.Warn(ctx, "could not close staged resource file", log.Data{"file": f.Name(), "error": err.Error()})
	}
	if err := os.Remove(f.Name()); err != nil {
		log.Warn(ctx, "could not remove staged resource file", log.Data{"file": f.Name(), "error": err.Error()})
	}
}

func sourceTitle(e Entry) string {
	switch {
	case e.Manifest.Title != "":
		return e.Manifest.Title
	case e.Resource.Title != "":
		return e.Resource.Title
	default:
		return e.Resource.Name
	}
}

func writeManifest(zw *zip.Writer, now time.Time, dp *datapackage.DataPackage) error {
	b, err := dp.Pretty()
	if err != nil {
		return err
	}

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     datapackage.Filename,
		Method:   zip.Deflate,
		Modified: now,
	})
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}
