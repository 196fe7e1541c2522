package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/flowershop/backend/internal/domain/shared"
)

// RecordService provides table-level CRUD for a single schema model.
// All row access for plain tables goes through here; only the read-side
// services in the application layer issue joins.
type RecordService[T shared.Record] struct {
	db        *gorm.DB
	tableName string
	pkColumn  string
}

// irregularPrimaryKeys lists the tables whose primary key the schema
// itself names against the id_<table> convention. The schema is a fixed
// external contract, so these keys are accepted as declared.
var irregularPrimaryKeys = map[string]string{
	"warehouse": "id_warehous",
}

// NewRecordService creates a RecordService for the model type T.
// The model's primary key column must follow the id_<table> naming
// convention (or match a known schema irregularity); a mismatch is a
// wiring error and is rejected here rather than surfacing as a broken
// query later.
func NewRecordService[T shared.Record](db *gorm.DB) (*RecordService[T], error) {
	var zero T
	table := zero.TableName()
	pk := zero.PrimaryKeyColumn()

	expected := "id_" + table
	if irregular, ok := irregularPrimaryKeys[table]; ok {
		expected = irregular
	}
	if pk != expected {
		return nil, fmt.Errorf("model for table %q declares primary key %q, expected %q", table, pk, expected)
	}

	return &RecordService[T]{
		db:        db,
		tableName: table,
		pkColumn:  pk,
	}, nil
}

// TableName returns the table this service operates on
func (s *RecordService[T]) TableName() string {
	return s.tableName
}

// Get fetches a single record by primary key.
// Returns shared.ErrNotFound when no row matches.
func (s *RecordService[T]) Get(ctx context.Context, id int64) (*T, error) {
	var record T
	if err := s.db.WithContext(ctx).
		Where(s.pkColumn+" = ?", id).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// List fetches records with pagination and ordering. Ordering always ends
// with the primary key ascending so pages are stable across calls.
func (s *RecordService[T]) List(ctx context.Context, opts shared.ListOptions) ([]T, error) {
	query := s.db.WithContext(ctx).Model(new(T))

	query, err := s.applyListOptions(query, opts)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Create inserts a new record. The generated primary key is written back
// into the passed model.
func (s *RecordService[T]) Create(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Create(record).Error
}

// CreateFromMap inserts a new record from a column-to-value map and
// returns the stored row. Column names are the raw database names.
func (s *RecordService[T]) CreateFromMap(ctx context.Context, fields map[string]any) (*T, error) {
	if len(fields) == 0 {
		return nil, shared.NewDomainError("EMPTY_RECORD", "cannot create a record without fields")
	}
	if _, ok := fields[s.pkColumn]; ok {
		return nil, shared.NewDomainError("PK_NOT_ASSIGNABLE", fmt.Sprintf("%s is generated and cannot be set", s.pkColumn))
	}

	if err := s.db.WithContext(ctx).
		Model(new(T)).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: s.pkColumn}}}).
		Create(fields).Error; err != nil {
		return nil, err
	}

	id, ok := toInt64(fields[s.pkColumn])
	if !ok {
		return nil, fmt.Errorf("insert into %s did not return a primary key", s.tableName)
	}
	return s.Get(ctx, id)
}

// Update applies a partial column-to-value update to the record with the
// given primary key and returns the updated row. An empty field map is a
// no-op that still returns the current row. Returns shared.ErrNotFound
// when no row matches.
func (s *RecordService[T]) Update(ctx context.Context, id int64, fields map[string]any) (*T, error) {
	if len(fields) == 0 {
		return s.Get(ctx, id)
	}
	if _, ok := fields[s.pkColumn]; ok {
		return nil, shared.NewDomainError("PK_NOT_ASSIGNABLE", fmt.Sprintf("%s cannot be updated", s.pkColumn))
	}

	result := s.db.WithContext(ctx).
		Model(new(T)).
		Where(s.pkColumn+" = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}

	return s.Get(ctx, id)
}

// Delete removes the record with the given primary key. Returns false
// without an error when no row matches, true when a row was removed.
func (s *RecordService[T]) Delete(ctx context.Context, id int64) (bool, error) {
	result := s.db.WithContext(ctx).
		Where(s.pkColumn+" = ?", id).
		Delete(new(T))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Query fetches records matching an arbitrary GORM scope. Callers compose
// conditions with parameterized Where clauses inside the scope.
func (s *RecordService[T]) Query(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]T, error) {
	var records []T
	if err := s.db.WithContext(ctx).
		Model(new(T)).
		Scopes(scope).
		Order(s.pkColumn + " ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Count returns the number of rows in the table
func (s *RecordService[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(new(T)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyListOptions validates and applies ordering and pagination
func (s *RecordService[T]) applyListOptions(query *gorm.DB, opts shared.ListOptions) (*gorm.DB, error) {
	orderDir := "ASC"
	switch strings.ToLower(opts.OrderDir) {
	case "", "asc":
	case "desc":
		orderDir = "DESC"
	default:
		return nil, shared.NewDomainError("INVALID_SORT", fmt.Sprintf("unsupported sort direction %q", opts.OrderDir))
	}

	if opts.OrderBy != "" && opts.OrderBy != s.pkColumn {
		if !s.sortableColumn(opts.OrderBy) {
			return nil, shared.NewDomainError("INVALID_SORT", fmt.Sprintf("column %q is not sortable on %s", opts.OrderBy, s.tableName))
		}
		// Primary key as tie-breaker keeps pagination deterministic
		query = query.Order(opts.OrderBy + " " + orderDir).Order(s.pkColumn + " ASC")
	} else {
		query = query.Order(s.pkColumn + " " + orderDir)
	}

	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	return query, nil
}

// sortableColumn reports whether the model whitelists the column for sorting
func (s *RecordService[T]) sortableColumn(column string) bool {
	var zero T
	if sortable, ok := any(zero).(shared.Sortable); ok {
		return sortable.SortColumns()[column]
	}
	return false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}
