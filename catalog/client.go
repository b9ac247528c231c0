package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
)

//go:generate mockgen -destination mocks/mocks.go -package mocks github.com/ONSdigital/dp-download-all/catalog Client

const (
	service         = "catalog"
	actionPath      = "/api/3/action/"
	notFoundType    = "Not Found Error"
	statusAction    = "status_show"
	msgHealthy      = "catalog is ok"
	msgUnhealthy    = "catalog is not responding"
	authHeaderKey   = "Authorization"
	uploadFieldName = "upload"
)

var (
	ErrNotFound       = errors.New("not found in catalog")
	ErrActionFailed   = errors.New("catalog action failed")
	ErrBadResponse    = errors.New("could not decode JSON response from catalog")
	ErrUnexpectedCode = errors.New("unexpected status code from catalog")
)

// Client is the set of catalog actions the archive pipeline relies on.
type Client interface {
	GetDataset(ctx context.Context, id string) (*Dataset, error)
	ListDatasets(ctx context.Context) ([]string, error)
	DatastoreFields(ctx context.Context, resourceID string) ([]DatastoreField, error)
	CreateResource(ctx context.Context, r ResourceRequest) (*Resource, error)
	PatchResource(ctx context.Context, r ResourceRequest) (*Resource, error)
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}

// Doer executes requests. dp-net's http.Clienter satisfies it.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// APIClient talks to a CKAN-style action API.
type APIClient struct {
	url   string
	token string
	cli   Doer

	// uploadCli sends multipart uploads; cli is used when it is nil.
	uploadCli Doer
}

var _ Client = &APIClient{}

// NewAPIClient returns a catalog client for the action API at catalogURL. Every request
// carries token, which should belong to a system user able to manage any dataset.
func NewAPIClient(catalogURL, token string, cli Doer) *APIClient {
	return &APIClient{
		url:   strings.TrimRight(catalogURL, "/"),
		token: token,
		cli:   cli,
	}
}

// WithUploadClient sets the client used for multipart file uploads, which can take far
// longer than the metadata calls.
func (c *APIClient) WithUploadClient(cli Doer) *APIClient {
	c.uploadCli = cli
	return c
}

// actionError is the error document of a failed action.
type actionError struct {
	Type    string `json:"__type"`
	Message string `json:"message"`
}

type actionResponse struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   *actionError    `json:"error"`
}

// GetDataset returns the dataset with the given id or name (package_show).
func (c *APIClient) GetDataset(ctx context.Context, id string) (*Dataset, error) {
	var d Dataset
	q := url.Values{"id": []string{id}}
	if err := c.get(ctx, "package_show", q, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDatasets returns the names of every dataset in the catalog (package_list).
func (c *APIClient) ListDatasets(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.get(ctx, "package_list", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// DatastoreFields probes the datastore table of a resource for its column definitions,
// fetching at most one record (datastore_search).
func (c *APIClient) DatastoreFields(ctx context.Context, resourceID string) ([]DatastoreField, error) {
	var result struct {
		Fields []DatastoreField `json:"fields"`
	}
	q := url.Values{
		"resource_id":   []string{resourceID},
		"limit":         []string{"1"},
		"include_total": []string{"true"},
	}
	if err := c.get(ctx, "datastore_search", q, &result); err != nil {
		return nil, err
	}
	return result.Fields, nil
}

// CreateResource adds a resource to a dataset (resource_create).
func (c *APIClient) CreateResource(ctx context.Context, r ResourceRequest) (*Resource, error) {
	return c.writeResource(ctx, "resource_create", r)
}

// PatchResource updates the given fields of an existing resource (resource_patch).
func (c *APIClient) PatchResource(ctx context.Context, r ResourceRequest) (*Resource, error) {
	if r.ID == "" {
		return nil, errors.New("resource id required to patch a resource")
	}
	return c.writeResource(ctx, "resource_patch", r)
}

// Checker is called by the healthcheck library to check the health state of the catalog
func (c *APIClient) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	var status map[string]interface{}
	if err := c.get(ctx, statusAction, nil, &status); err != nil {
		log.Warn(ctx, "catalog health check failed", log.Data{"error": err.Error()})
		return state.Update(healthcheck.StatusCritical, msgUnhealthy, 0)
	}
	return state.Update(healthcheck.StatusOK, msgHealthy, http.StatusOK)
}

func (c *APIClient) writeResource(ctx context.Context, action string, r ResourceRequest) (*Resource, error) {
	var (
		body        io.Reader
		contentType string
		cli         = c.cli
	)

	if r.Upload != nil {
		body, contentType = multipartBody(r)
		if c.uploadCli != nil {
			cli = c.uploadCli
		}
	} else {
		b, err := json.Marshal(r.fields())
		if err != nil {
			return nil, err
		}
		body, contentType = bytes.NewReader(b), "application/json"
	}

	req, err := http.NewRequest(http.MethodPost, c.actionURL(action, nil), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	var res Resource
	if err := c.doWith(ctx, cli, action, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// multipartBody streams the upload through a pipe so the archive is never held in memory.
func multipartBody(r ResourceRequest) (io.Reader, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := writeMultipart(mw, r)
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	return pr, mw.FormDataContentType()
}

func writeMultipart(mw *multipart.Writer, r ResourceRequest) error {
	for k, v := range r.fields() {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	part, err := mw.CreateFormFile(uploadFieldName, r.UploadFilename)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, r.Upload)
	return err
}

func (c *APIClient) get(ctx context.Context, action string, q url.Values, result interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.actionURL(action, q), nil)
	if err != nil {
		return err
	}
	return c.do(ctx, action, req, result)
}

func (c *APIClient) do(ctx context.Context, action string, req *http.Request, result interface{}) error {
	return c.doWith(ctx, c.cli, action, req, result)
}

func (c *APIClient) doWith(ctx context.Context, cli Doer, action string, req *http.Request, result interface{}) error {
	logData := log.Data{"service": service, "action": action}

	if c.token != "" {
		req.Header.Set(authHeaderKey, c.token)
	}

	resp, err := cli.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", action, err)
	}
	defer closeResponseBody(ctx, resp)

	var ar actionResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		if resp.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		logData["status_code"] = resp.StatusCode
		log.Error(ctx, "cannot decode catalog response", err, logData)
		return ErrBadResponse
	}

	if !ar.Success {
		if resp.StatusCode == http.StatusNotFound || (ar.Error != nil && ar.Error.Type == notFoundType) {
			return ErrNotFound
		}
		if ar.Error != nil {
			return fmt.Errorf("%w: %s: %s", ErrActionFailed, ar.Error.Type, ar.Error.Message)
		}
		return fmt.Errorf("%w: %s", ErrUnexpectedCode, resp.Status)
	}

	if result == nil {
		return nil
	}
	if err := unmarshalUseNumber(ar.Result, result); err != nil {
		log.Error(ctx, "cannot decode catalog result", err, logData)
		return ErrBadResponse
	}
	return nil
}

func (c *APIClient) actionURL(action string, q url.Values) string {
	u := c.url + actionPath + action
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func unmarshalUseNumber(b []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return dec.Decode(v)
}

func closeResponseBody(ctx context.Context, resp *http.Response) {
	if resp.Body == nil {
		return
	}
	if err := resp.Body.Close(); err != nil {
		log.Error(ctx, "error closing http response body", err)
	}
}
