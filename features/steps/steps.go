package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/ONSdigital/dp-download-all/catalog"
	"github.com/ONSdigital/dp-download-all/datapackage"
	"github.com/cucumber/godog"
	"github.com/klauspost/compress/zip"
	"github.com/rdumont/assistdog"
	"github.com/stretchr/testify/assert"
)

func (d *DownloadAllComponent) RegisterSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the catalog has a dataset "([^"]*)" with resources:$`, d.theCatalogHasADatasetWithResources)
	ctx.Step(`^the file "([^"]*)" has the content "([^"]*)"$`, d.theFileHasTheContent)
	ctx.Step(`^I update the archive of "([^"]*)"$`, d.iUpdateTheArchiveOf)
	ctx.Step(`^I force an update of the archive of "([^"]*)"$`, d.iForceAnUpdateOfTheArchiveOf)
	ctx.Step(`^I update all archives$`, d.iUpdateAllArchives)
	ctx.Step(`^the archive status should be "([^"]*)"$`, d.theArchiveStatusShouldBe)
	ctx.Step(`^the response should report (\d+) downloaded and (\d+) failed resources?$`, d.theResponseShouldReport)
	ctx.Step(`^the archive of "([^"]*)" should contain the files:$`, d.theArchiveShouldContainTheFiles)
	ctx.Step(`^the manifest of "([^"]*)" should list the resources:$`, d.theManifestShouldListTheResources)
	ctx.Step(`^the dataset "([^"]*)" should eventually have an archive$`, d.theDatasetShouldEventuallyHaveAnArchive)
}

func (d *DownloadAllComponent) theCatalogHasADatasetWithResources(name string, table *godog.Table) error {
	rows, err := assistdog.NewDefault().ParseSlice(table)
	if err != nil {
		return err
	}

	ds := &catalog.Dataset{
		ID:               "id-" + name,
		Name:             name,
		Title:            name,
		MetadataModified: "2024-05-01T10:00:00.000000",
	}
	for _, row := range rows {
		ds.Resources = append(ds.Resources, catalog.Resource{
			Name:   row["name"],
			Format: row["format"],
			URL:    d.Files.URL(row["path"]),
		})
	}
	d.Catalog.AddDataset(ds)

	return nil
}

func (d *DownloadAllComponent) theFileHasTheContent(path, body string) error {
	d.Files.Put(path, body)
	return nil
}

func (d *DownloadAllComponent) iUpdateTheArchiveOf(name string) error {
	return d.ApiFeature.IPut(fmt.Sprintf("/datasets/%s/archive", name), &godog.DocString{})
}

func (d *DownloadAllComponent) iForceAnUpdateOfTheArchiveOf(name string) error {
	return d.ApiFeature.IPut(fmt.Sprintf("/datasets/%s/archive?force=true", name), &godog.DocString{})
}

func (d *DownloadAllComponent) iUpdateAllArchives() error {
	return d.ApiFeature.IPostToWithBody("/archives", &godog.DocString{})
}

type archiveResponse struct {
	Status     string `json:"status"`
	Downloaded int    `json:"downloaded"`
	Failed     int    `json:"failed"`
}

func (d *DownloadAllComponent) response() (*archiveResponse, error) {
	if d.lastResponse != nil {
		return d.lastResponse, nil
	}
	b, err := io.ReadAll(d.ApiFeature.HTTPResponse.Body)
	if err != nil {
		return nil, err
	}
	var res archiveResponse
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, fmt.Errorf("unexpected response body %q: %w", b, err)
	}
	d.lastResponse = &res
	return d.lastResponse, nil
}

func (d *DownloadAllComponent) theArchiveStatusShouldBe(expected string) error {
	res, err := d.response()
	if err != nil {
		return err
	}
	assert.Equal(d.ApiFeature, expected, res.Status)
	return d.ApiFeature.StepError()
}

func (d *DownloadAllComponent) theResponseShouldReport(downloaded, failed int) error {
	res, err := d.response()
	if err != nil {
		return err
	}
	assert.Equal(d.ApiFeature, downloaded, res.Downloaded)
	assert.Equal(d.ApiFeature, failed, res.Failed)
	return d.ApiFeature.StepError()
}

func (d *DownloadAllComponent) archive(name string) (*zip.Reader, error) {
	_, b, err := d.Catalog.ArchiveResource(name)
	if err != nil {
		return nil, err
	}
	return zip.NewReader(bytes.NewReader(b), int64(len(b)))
}

func (d *DownloadAllComponent) theArchiveShouldContainTheFiles(name string, table *godog.Table) error {
	rows, err := assistdog.NewDefault().ParseSlice(table)
	if err != nil {
		return err
	}
	zr, err := d.archive(name)
	if err != nil {
		return err
	}

	expected := make([]string, 0, len(rows))
	for _, row := range rows {
		expected = append(expected, row["name"])
	}
	var actual []string
	for _, f := range zr.File {
		actual = append(actual, f.Name)
	}
	sort.Strings(expected)
	sort.Strings(actual)

	assert.Equal(d.ApiFeature, expected, actual)
	return d.ApiFeature.StepError()
}

func (d *DownloadAllComponent) theManifestShouldListTheResources(name string, table *godog.Table) error {
	rows, err := assistdog.NewDefault().ParseSlice(table)
	if err != nil {
		return err
	}
	zr, err := d.archive(name)
	if err != nil {
		return err
	}

	var f io.ReadCloser
	for _, zf := range zr.File {
		if zf.Name == datapackage.Filename {
			if f, err = zf.Open(); err != nil {
				return err
			}
			break
		}
	}
	if f == nil {
		return fmt.Errorf("archive of %q has no %s", name, datapackage.Filename)
	}
	defer f.Close()

	var manifest struct {
		Resources []struct {
			Name string `json:"name"`
			Path string `json:"path"`
		} `json:"resources"`
	}
	if err := json.NewDecoder(f).Decode(&manifest); err != nil {
		return err
	}

	if !assert.Len(d.ApiFeature, manifest.Resources, len(rows)) {
		return d.ApiFeature.StepError()
	}
	for i, row := range rows {
		assert.Equal(d.ApiFeature, row["name"], manifest.Resources[i].Name)
		path := strings.ReplaceAll(row["path"], "{{files}}", d.Files.Server.URL)
		assert.Equal(d.ApiFeature, path, manifest.Resources[i].Path)
	}
	return d.ApiFeature.StepError()
}

func (d *DownloadAllComponent) theDatasetShouldEventuallyHaveAnArchive(name string) error {
	deadline := time.Now().Add(10 * time.Second)
	for {
		_, _, err := d.Catalog.ArchiveResource(name)
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return err
		}
		time.Sleep(100 * time.Millisecond)
	}
}
