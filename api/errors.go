package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ONSdigital/dp-download-all/downloadall"
	"github.com/ONSdigital/log.go/v2/log"
)

// These messages are returned to clients in error response bodies.
const (
	MsgDatasetNotFound  = "dataset not found"
	MsgUpdateFailed     = "archive update failed"
	MsgInvalidForce     = "force must be true or false"
	MsgAlreadyUpdating  = "an update of all archives is already running"
	MsgShuttingDown     = "service is shutting down"
	codeNotFound        = "DatasetNotFound"
	codeInternal        = "InternalError"
	codeBadRequest      = "BadRequest"
	codeConflict        = "Conflict"
	codeServiceShutdown = "ServiceUnavailable"
)

type jsonError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type jsonErrors struct {
	Error []jsonError `json:"errors"`
}

// dataLogger is implemented by errors carrying their own log fields.
type dataLogger interface {
	LogData() log.Data
}

// handleError logs err once, with every log field found along its chain, and writes the
// matching JSON error document.
func handleError(ctx context.Context, event string, w http.ResponseWriter, err error, logData log.Data) {
	for k, v := range unwrapLogData(err) {
		logData[k] = v
	}

	status, code, msg := http.StatusInternalServerError, codeInternal, MsgUpdateFailed
	if errors.Is(err, downloadall.ErrDatasetNotFound) {
		status, code, msg = http.StatusNotFound, codeNotFound, MsgDatasetNotFound
	}

	logData["setting_response_status"] = status
	log.Error(ctx, event, err, logData)
	writeError(w, buildErrors(msg, code), status)
}

func writeError(w http.ResponseWriter, errs jsonErrors, httpCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	json.NewEncoder(w).Encode(&errs) // nolint
}

func buildErrors(msg, code string) jsonErrors {
	return jsonErrors{Error: []jsonError{{Description: msg, Code: code}}}
}

// unwrapLogData recursively unwraps logData from an error. Values logged under the same
// key by different errors in the chain are collected into a slice.
func unwrapLogData(err error) log.Data {
	var data []log.Data

	for err != nil {
		if lderr, ok := err.(dataLogger); ok {
			if d := lderr.LogData(); d != nil {
				data = append(data, d)
			}
		}
		err = errors.Unwrap(err)
	}

	logData := log.Data{}
	for _, d := range data {
		for k, v := range d {
			val, ok := logData[k]
			if !ok {
				logData[k] = v
				continue
			}
			if val == v {
				continue
			}
			if s, ok := val.([]interface{}); ok {
				logData[k] = append(s, v)
			} else {
				logData[k] = []interface{}{val, v}
			}
		}
	}

	return logData
}
