package shared

// Record is implemented by every schema-mapped entity type. The schema is an
// external contract: table names, column names and the id_<table> primary key
// convention must match the relational store exactly.
type Record interface {
	// TableName returns the relational table this record maps to.
	// It doubles as GORM's table name override.
	TableName() string
	// PrimaryKeyColumn returns the name of the identity column.
	// The schema convention is id_<table>; the record service verifies
	// this at construction time.
	PrimaryKeyColumn() string
}

// Sortable is optionally implemented by record types that allow list ordering
// on columns other than the primary key. The returned set is a whitelist;
// anything outside it falls back to the primary key.
type Sortable interface {
	SortColumns() map[string]bool
}

// ListOptions controls pagination and ordering for record listings.
// Pagination is positional (skip Offset rows, take Limit rows); ordering is
// always deterministic - when OrderBy is empty or not whitelisted the primary
// key is used.
type ListOptions struct {
	Offset   int
	Limit    int
	OrderBy  string
	OrderDir string // "asc" or "desc"; anything else normalizes to "asc"
}

// DefaultListOptions returns list options with the default page size.
func DefaultListOptions() ListOptions {
	return ListOptions{
		Offset: 0,
		Limit:  100,
	}
}
