package store

import "errors"

// Sentinel errors returned by slot storages and repositories. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrSlotNotFound is returned by [SlotStorage.Get] when nothing was ever
	// written to the slot.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrInvalidSlot is returned when a slot name cannot be used as a key by
	// the selected backend.
	ErrInvalidSlot = errors.New("invalid slot name")

	// ErrQuotaExceeded marks write failures caused by the backend running out
	// of space. It is always joined with the driver error.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrStorageRead wraps backend failures while loading the collection.
	ErrStorageRead = errors.New("failed to read document collection")

	// ErrStorageWrite wraps backend failures while rewriting the collection.
	ErrStorageWrite = errors.New("failed to write document collection")

	// ErrUnknownBackend is returned by [NewStorages] for an unsupported
	// backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("no user was found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan slot row")
)
