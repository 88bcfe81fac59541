// Package services holds the gallery's business logic: read-only queries
// over the image records and the admin upload/delete workflow that keeps
// the record table and the blob directory consistent.
package services

import "errors"

// Workflow errors. All but ErrStorageWrite are user-recoverable and are
// turned into a flash message plus a redirect at the controller boundary.
var (
	ErrInvalidTurma      = errors.New("turma is not in the gallery catalog")
	ErrMissingFile       = errors.New("no file was supplied")
	ErrUnsupportedFormat = errors.New("file extension is not allowed")
	ErrNotFound          = errors.New("image not found")

	// ErrStorageWrite wraps disk or database write failures. Wrapped
	// errors carry the cause; match with errors.Is.
	ErrStorageWrite = errors.New("storage write failed")
)
