package service

import (
	"errors"

	"github.com/MKhiriev/levelup/internal/store"
	"github.com/MKhiriev/levelup/internal/validators"
)

var (
	// ErrInvalidDataProvided wraps every input validation failure.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrDocumentNotFound = errors.New("document not found")
)

// Validation failures of the document store. They are always wrapped in
// [ErrInvalidDataProvided].
var (
	ErrEmptyID             = validators.ErrEmptyID
	ErrEmptyTitle          = validators.ErrEmptyTitle
	ErrEmptyContent        = validators.ErrEmptyContent
	ErrInvalidDocumentType = validators.ErrInvalidDocumentType
)

// Storage failures of the document store.
var (
	ErrStorageRead          = store.ErrStorageRead
	ErrStorageWrite         = store.ErrStorageWrite
	ErrStorageQuotaExceeded = store.ErrQuotaExceeded
)
