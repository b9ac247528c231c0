package downloadall

import (
	"errors"
	"fmt"

	"github.com/ONSdigital/log.go/v2/log"
)

var (
	// ErrDatasetNotFound is returned when the catalog has no dataset with the requested id.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrPublish is returned when the archive resource could not be created or updated.
	ErrPublish = errors.New("failed to publish archive resource")
)

// Error is an update failure for a single dataset.
type Error struct {
	DatasetID string
	Op        string
	Err       error
	logData   log.Data
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.DatasetID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// LogData returns the fields to log alongside the error.
func (e *Error) LogData() log.Data {
	d := log.Data{"dataset_id": e.DatasetID, "op": e.Op}
	for k, v := range e.logData {
		d[k] = v
	}
	return d
}

func newError(op, datasetID string, err error, data log.Data) *Error {
	return &Error{DatasetID: datasetID, Op: op, Err: err, logData: data}
}
