package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/ONSdigital/dp-download-all/downloadall"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
)

//go:generate moq -rm -pkg api_test -out moq_updater_test.go . Updater

// Updater regenerates dataset archives.
type Updater interface {
	UpdateArchive(ctx context.Context, datasetID string, skipIfNoChanges bool) (downloadall.Outcome, error)
	UpdateAll(ctx context.Context, skipIfNoChanges bool) error
}

// Archive implements the archive trigger handlers.
type Archive struct {
	updater Updater

	// base is the parent context of background runs, cancelled by Close.
	base   context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	running bool
	wg      sync.WaitGroup
}

type archiveResponse struct {
	Status string `json:"status"`
	downloadall.Outcome
}

// NewArchive returns the archive handlers, which use updater to do the work.
func NewArchive(updater Updater) *Archive {
	base, cancel := context.WithCancel(context.Background())
	return &Archive{
		updater: updater,
		base:    base,
		cancel:  cancel,
	}
}

// DoPutArchive is an http handler regenerating the archive of the dataset in the path.
// Unless force=true the archive is only rebuilt when the dataset changed.
func (a *Archive) DoPutArchive() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		datasetID := mux.Vars(req)["id"]
		logData := log.Data{"dataset_id": datasetID}

		force, ok := parseForce(ctx, w, req, logData)
		if !ok {
			return
		}
		logData["force"] = force

		out, err := a.updater.UpdateArchive(ctx, datasetID, !force)
		if err != nil {
			handleError(ctx, "archive update failed", w, err, logData)
			return
		}

		logData["status"] = out.Status()
		log.Info(ctx, "archive update complete", logData)
		writeJSON(ctx, w, http.StatusOK, archiveResponse{Status: out.Status(), Outcome: out})
	}
}

// DoPostArchives is an http handler starting an update of every dataset's archive in the
// background. Only one such run is allowed at a time.
func (a *Archive) DoPostArchives() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		logData := log.Data{}

		force, ok := parseForce(ctx, w, req, logData)
		if !ok {
			return
		}
		logData["force"] = force

		if a.base.Err() != nil {
			logData["setting_response_status"] = http.StatusServiceUnavailable
			log.Warn(ctx, MsgShuttingDown, logData)
			writeError(w, buildErrors(MsgShuttingDown, codeServiceShutdown), http.StatusServiceUnavailable)
			return
		}

		if !a.start() {
			logData["setting_response_status"] = http.StatusConflict
			log.Warn(ctx, MsgAlreadyUpdating, logData)
			writeError(w, buildErrors(MsgAlreadyUpdating, codeConflict), http.StatusConflict)
			return
		}

		go func() {
			defer a.finish()
			log.Info(a.base, "updating all archives", logData)
			if err := a.updater.UpdateAll(a.base, !force); err != nil {
				log.Error(a.base, "update of all archives finished with errors", err, logData)
				return
			}
			log.Info(a.base, "update of all archives complete", logData)
		}()

		writeJSON(ctx, w, http.StatusAccepted, map[string]string{"status": "accepted"})
	}
}

func (a *Archive) start() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running {
		return false
	}
	a.running = true
	a.wg.Add(1)
	return true
}

func (a *Archive) finish() {
	a.mu.Lock()
	a.running = false
	a.mu.Unlock()
	a.wg.Done()
}

// Close cancels any background run and waits for it to stop, or for ctx to be done.
func (a *Archive) Close(ctx context.Context) error {
	a.cancel()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func parseForce(ctx context.Context, w http.ResponseWriter, req *http.Request, logData log.Data) (bool, bool) {
	v := req.URL.Query().Get("force")
	if v == "" {
		return false, true
	}

	force, err := strconv.ParseBool(v)
	if err != nil {
		logData["force"] = v
		logData["setting_response_status"] = http.StatusBadRequest
		log.Error(ctx, MsgInvalidForce, err, logData)
		writeError(w, buildErrors(MsgInvalidForce, codeBadRequest), http.StatusBadRequest)
		return false, false
	}
	return force, true
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	buf, err := json.Marshal(v)
	if err != nil {
		log.Error(ctx, "cannot marshal response", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf)
}
