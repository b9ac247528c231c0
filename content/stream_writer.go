package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/opencontainers/go-digest"
)

var (
	// ErrUnexpectedStatus is returned when a resource URL answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrStalled is returned when a resource URL sends nothing for longer than the timeout.
	ErrStalled = errors.New("no data received within the download timeout")
)

// Doer performs outbound HTTP requests. It is satisfied by the dp-net Clienter.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// DownloadError describes why a resource could not be downloaded.
type DownloadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *DownloadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("download %s: %v: %d", e.URL, e.Err, e.StatusCode)
	}
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// LogData returns the fields to log alongside the error.
func (e *DownloadError) LogData() log.Data {
	d := log.Data{"url": e.URL}
	if e.StatusCode != 0 {
		d["status_code"] = e.StatusCode
	}
	return d
}

// StreamWriter downloads resource files, streaming the response body into a writer.
// Timeout is an idle limit: a download fails when the response headers, or the next
// chunk of the body, take longer than Timeout to arrive. A slow but steady transfer
// is never cut off.
type StreamWriter struct {
	Client  Doer
	Timeout time.Duration
}

// NewStreamWriter creates a StreamWriter whose downloads fail after timeout without data.
func NewStreamWriter(cli Doer, timeout time.Duration) *StreamWriter {
	return &StreamWriter{Client: cli, Timeout: timeout}
}

// StreamAndWrite fetches url and copies the body into the writer returned by open. open is
// only called once a 2xx response has been received, so a refused or failed request never
// produces any output. A failure after open has been called leaves partial output behind,
// which the caller must discard. The number of bytes copied and their digest are returned.
func (s *StreamWriter) StreamAndWrite(ctx context.Context, url string, open func() (io.Writer, error)) (int64, digest.Digest, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	idle := newIdleTimer(s.Timeout, cancel)
	defer idle.stop()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", &DownloadError{URL: url, Err: err}
	}

	resp, err := s.Client.Do(ctx, req)
	if err != nil {
		return 0, "", &DownloadError{URL: url, Err: idle.wrap(err)}
	}
	defer closeBody(ctx, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, "", &DownloadError{URL: url, StatusCode: resp.StatusCode, Err: ErrUnexpectedStatus}
	}

	w, err := open()
	if err != nil {
		return 0, "", err
	}

	digester := digest.Canonical.Digester()
	n, err := io.Copy(io.MultiWriter(w, digester.Hash()), idle.reader(resp.Body))
	if err != nil {
		return n, "", &DownloadError{URL: url, Err: idle.wrap(err)}
	}

	return n, digester.Digest(), nil
}

// idleTimer cancels a download when no progress is made for timeout. A zero timeout never
// fires.
type idleTimer struct {
	timeout time.Duration
	timer   *time.Timer
	expired atomic.Bool
}

func newIdleTimer(timeout time.Duration, cancel context.CancelFunc) *idleTimer {
	t := &idleTimer{timeout: timeout}
	if timeout > 0 {
		t.timer = time.AfterFunc(timeout, func() {
			t.expired.Store(true)
			cancel()
		})
	}
	return t
}

func (t *idleTimer) progress() {
	if t.timer != nil && !t.expired.Load() {
		t.timer.Reset(t.timeout)
	}
}

func (t *idleTimer) stop() {
	if t.timer != nil {
		t.timer.Stop()
	}
}

func (t *idleTimer) wrap(err error) error {
	if t.expired.Load() {
		return fmt.Errorf("%w: %w", ErrStalled, err)
	}
	return err
}

func (t *idleTimer) reader(r io.Reader) io.Reader {
	return &idleReader{r: r, timer: t}
}

type idleReader struct {
	r     io.Reader
	timer *idleTimer
}

func (r *idleReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		r.timer.progress()
	}
	return n, err
}

func closeBody(ctx context.Context, closer io.Closer) {
	if err := closer.Close(); err != nil {
		log.Error(ctx, "error closing response body", err)
	}
}
