// Package store defines the storage interface for gf's pattern records.
// A pattern store keeps one record per name and never overwrites an
// existing record.
package store

// PatternStore manages saved pattern records keyed by name.
type PatternStore interface {
	// Dir returns the directory (or equivalent location) backing the store.
	Dir() string

	// Path returns the location a record with the given name lives at,
	// whether or not it exists. Used for error reporting.
	Path(name string) string

	// List returns the names of all saved patterns. A store location
	// that does not exist yet yields an empty list, not an error.
	// No particular order is guaranteed.
	List() ([]string, error)

	// Create persists a new record under the given name. It fails with
	// *AlreadyExistsError if a record with that name exists; creation is
	// atomic, so concurrent saves of the same name cannot both succeed.
	Create(name string, rec *Pattern) error

	// Get loads the record with the given name. It fails with
	// *NotFoundError for unknown names and *MalformedError for records
	// that cannot be decoded.
	Get(name string) (*Pattern, error)
}
