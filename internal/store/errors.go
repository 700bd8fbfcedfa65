package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorage wraps every failure of the OS secret store. Read paths treat
	// it as "no session".
	ErrStorage = errors.New("secure storage failure")

	// ErrDeviceHasNoStoredAuth is returned when a caller tries to persist a
	// credential for the device provider, which has no network session.
	ErrDeviceHasNoStoredAuth = errors.New("device provider cannot have stored auth")

	// ErrCorruptedStoredAuth is returned when the stored credential cannot be
	// decoded or names an unknown provider.
	ErrCorruptedStoredAuth = errors.New("stored auth is corrupted")

	// ErrDeviceFileNotSaved is returned when an upsert completes without
	// error but affects no rows.
	ErrDeviceFileNotSaved = errors.New("device file was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan device file row")
)
