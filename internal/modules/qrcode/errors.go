package qrcode

import "errors"

var (
	ErrNotFound = errors.New("not_found")
	ErrEncoding = errors.New("encoding_failed")
)

// ValidationError carries per-field failures so the handler can return them
// to the caller. The request never reaches the encoder or the store.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }
