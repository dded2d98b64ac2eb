package store

import "errors"

// Sentinel errors forming the storage error taxonomy. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrConfiguration is reported once through the open error handler when
	// the store cannot be opened (unreachable shared location, failing
	// migration). The store stays unusable afterwards.
	ErrConfiguration = errors.New("store configuration error")

	// ErrStoreUnusable is returned by every operation on a store whose
	// configuration failed.
	ErrStoreUnusable = errors.New("store is unusable")

	// ErrStoreClosed is returned by operations issued after Close.
	ErrStoreClosed = errors.New("store is closed")

	// ErrPersistence wraps a failed read or write of a single operation.
	// The operation had no effect and may be retried.
	ErrPersistence = errors.New("persistence error")

	// ErrInvalidEntity is returned when an entity cannot be stored, e.g.
	// because its id is empty or it cannot be encoded.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrEmptyUserID is returned when an operation is not scoped to a user.
	ErrEmptyUserID = errors.New("empty owner user id")
)

// Low-level database operation errors. These are wrapped together with
// [ErrPersistence] when an SQL-level operation fails.
var (
	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrBuildingSQLQuery is returned when constructing a query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning record rows fails.
	ErrScanningRows = errors.New("failed to scan record rows")

	// ErrDecodingPayload is returned when a stored payload cannot be decoded
	// into its domain model.
	ErrDecodingPayload = errors.New("failed to decode record payload")
)
