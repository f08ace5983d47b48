// Package builder composes the recurring list-endpoint query shape:
// free-text search over whitelisted columns, equality filters, the
// soft-delete guard, whitelisted sorting and pagination. Every list
// handler goes through it instead of hand-assembling GORM clauses.
package builder

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/phealthcare/healthcare-api/utils"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// FieldMap maps an accepted query key to its database column. Keys absent
// from the map never reach the query, so unmapped fields cannot be
// injected into it.
type FieldMap map[string]string

type QueryBuilder struct {
	tx    *gorm.DB
	page  int
	limit int
}

// New wraps a model-scoped query, e.g. New(db.Model(&models.Admin{})).
func New(tx *gorm.DB) *QueryBuilder {
	return &QueryBuilder{tx: tx, page: DefaultPage, limit: DefaultLimit}
}

// Search adds one OR-group of case-insensitive substring matches over the
// searchable columns. No-op when the term is empty.
func (b *QueryBuilder) Search(term string, columns []string) *QueryBuilder {
	if term == "" || len(columns) == 0 {
		return b
	}

	like := "%" + term + "%"
	group := b.tx.Session(&gorm.Session{NewDB: true})
	for i, column := range columns {
		if i == 0 {
			group = group.Where(fmt.Sprintf("%s ILIKE ?", column), like)
		} else {
			group = group.Or(fmt.Sprintf("%s ILIKE ?", column), like)
		}
	}
	b.tx = b.tx.Where(group)
	return b
}

// Filter adds an equality condition per recognized key.
func (b *QueryBuilder) Filter(filters map[string]string, fields FieldMap) *QueryBuilder {
	for key, value := range filters {
		column, ok := fields[key]
		if !ok {
			continue
		}
		b.tx = b.tx.Where(fmt.Sprintf("%s = ?", column), value)
	}
	return b
}

// Where forwards an arbitrary condition for the cases the generic shape
// does not cover (date ranges, joins, exclusion lists).
func (b *QueryBuilder) Where(query interface{}, args ...interface{}) *QueryBuilder {
	b.tx = b.tx.Where(query, args...)
	return b
}

// ExcludeDeleted appends the soft-delete guard. Hard-delete-only entities
// (Schedule) skip this.
func (b *QueryBuilder) ExcludeDeleted() *QueryBuilder {
	b.tx = b.tx.Where("is_deleted = ?", false)
	return b
}

// Sort orders by a whitelisted column, falling back to the default
// descending-by-creation order. sortOrder values other than "desc"
// normalize to "asc".
func (b *QueryBuilder) Sort(sortBy, sortOrder string, fields FieldMap, defaultColumn string) *QueryBuilder {
	column, ok := fields[sortBy]
	if sortBy == "" || !ok {
		b.tx = b.tx.Order(defaultColumn + " DESC")
		return b
	}
	b.tx = b.tx.Order(column + " " + NormalizeSortOrder(sortOrder))
	return b
}

// Count runs the total count against the conditions applied so far.
// Call it before Paginate.
func (b *QueryBuilder) Count() (int64, error) {
	var total int64
	err := b.tx.Session(&gorm.Session{}).Count(&total).Error
	return total, err
}

// Paginate derives skip/take from the raw page and limit parameters.
func (b *QueryBuilder) Paginate(pageStr, limitStr string) *QueryBuilder {
	b.page, b.limit = CalculatePagination(pageStr, limitStr)
	b.tx = b.tx.Offset((b.page - 1) * b.limit).Limit(b.limit)
	return b
}

// Find executes the composed query into dest.
func (b *QueryBuilder) Find(dest interface{}) error {
	return b.tx.Find(dest).Error
}

// Preload forwards association preloading.
func (b *QueryBuilder) Preload(query string, args ...interface{}) *QueryBuilder {
	b.tx = b.tx.Preload(query, args...)
	return b
}

// Meta assembles the pagination envelope for the executed query.
func (b *QueryBuilder) Meta(total int64) *utils.Meta {
	return &utils.Meta{Page: b.page, Limit: b.limit, Total: total}
}

// CalculatePagination parses page/limit with defaults page=1, limit=10.
func CalculatePagination(pageStr, limitStr string) (page, limit int) {
	page = DefaultPage
	limit = DefaultLimit
	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
		limit = l
	}
	return page, limit
}

// NormalizeSortOrder maps anything that is not "desc" to "asc".
func NormalizeSortOrder(order string) string {
	if order == "desc" {
		return "DESC"
	}
	return "ASC"
}
