package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAdminNotFound is returned when the administrator record does not
	// exist or does not match the requested username.
	ErrAdminNotFound = errors.New("admin was not found")

	// ErrAdminAlreadyExists is returned when seeding the administrator fails
	// because the singleton slot is already taken.
	ErrAdminAlreadyExists = errors.New("admin already exists")

	// ErrPostNotFound is returned when no post matches the requested key.
	ErrPostNotFound = errors.New("post was not found")

	// ErrProjectNotFound is returned when no project matches the requested key.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrResumeNotFound is returned when the resume document has not been stored yet.
	ErrResumeNotFound = errors.New("resume was not found")

	// ErrSlugAlreadyExists is returned when an INSERT or UPDATE of a post or
	// project violates the unique slug constraint.
	ErrSlugAlreadyExists = errors.New("slug already exists")

	// ErrUnsupportedDatabase is returned when the DSN scheme does not select
	// any known driver.
	ErrUnsupportedDatabase = errors.New("unsupported database")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingColumn is returned when a list or document field cannot be
	// converted to or from its JSON column representation.
	ErrEncodingColumn = errors.New("failed to encode json column")
)
