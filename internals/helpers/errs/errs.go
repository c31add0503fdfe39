// Package errs holds the error taxonomy shared by the entity services.
package errs

import (
	"errors"
	"fmt"
)

// ErrNotFound is the defined "no such row" result; controllers map it to 404.
var ErrNotFound = errors.New("record not found")

// BackendError wraps a failed query/insert/delete against the hosted database.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *BackendError) Unwrap() error { return e.Err }

func Backend(op string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Op: op, Err: err}
}

// UploadError wraps an image transform or storage-write failure. It aborts
// the enclosing operation; the row is never written.
type UploadError struct {
	Op  string
	Err error
}

func (e *UploadError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *UploadError) Unwrap() error { return e.Err }

func Upload(op string, err error) error {
	if err == nil {
		return nil
	}
	return &UploadError{Op: op, Err: err}
}

func IsUpload(err error) bool {
	var ue *UploadError
	return errors.As(err, &ue)
}
