package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "redcross/internal/errors"
)

const (
	// DefaultPageSize is used when the caller does not send a limit.
	DefaultPageSize = 50
	// MaxPageSize caps the limit query parameter.
	MaxPageSize = 100
)

// ListParams carries the search, filter, sort and paging options shared by
// the admin list endpoints.
type ListParams struct {
	Search   string
	Status   string
	Category string // areaOfInterest for volunteers, membershipType for members
	SortBy   string
	Order    string
	Page     int
	Limit    int
}

// Normalize applies defaults and clamps out of range values.
func (p ListParams) Normalize() ListParams {
	p.Search = strings.TrimSpace(p.Search)
	if p.SortBy == "" {
		p.SortBy = "createdAt"
	}
	if !strings.EqualFold(p.Order, "asc") {
		p.Order = "desc"
	} else {
		p.Order = "asc"
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

// Offset returns the number of rows to skip.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages returns the page count for total rows at the given page size.
func Pages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// listSpec describes how ListParams maps onto a table.
type listSpec struct {
	searchColumns  []string
	categoryColumn string
	sortColumns    map[string]string
}

// scope applies filters and search; it never applies ordering or paging so
// the same query can be counted.
func (s listSpec) scope(p ListParams) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if p.Status != "" {
			q = q.Where("status = ?", p.Status)
		}
		if p.Category != "" && s.categoryColumn != "" {
			q = q.Where(s.categoryColumn+" = ?", p.Category)
		}
		if p.Search != "" && len(s.searchColumns) > 0 {
			pattern := "%" + escapeLike(strings.ToLower(p.Search)) + "%"
			clauses := make([]string, 0, len(s.searchColumns))
			args := make([]interface{}, 0, len(s.searchColumns))
			for _, col := range s.searchColumns {
				clauses = append(clauses, "LOWER("+col+") LIKE ? ESCAPE '"+likeEscape+"'")
				args = append(args, pattern)
			}
			q = q.Where("("+strings.Join(clauses, " OR ")+")", args...)
		}
		return q
	}
}

// orderBy resolves the sort column through the whitelist.
func (s listSpec) orderBy(p ListParams) string {
	col, ok := s.sortColumns[p.SortBy]
	if !ok {
		col = "created_at"
	}
	return col + " " + p.Order
}

// likeEscape is declared explicitly in every LIKE clause; backslash is not
// an escape character in every dialect.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func list[T any](ctx context.Context, db *gorm.DB, spec listSpec, p ListParams) ([]T, int64, error) {
	p = p.Normalize()

	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Scopes(spec.scope(p)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]T, 0)
	if total == 0 {
		return items, 0, nil
	}
	err := db.WithContext(ctx).
		Scopes(spec.scope(p)).
		Order(spec.orderBy(p)).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func create[T any](ctx context.Context, db *gorm.DB, record *T) error {
	if err := db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func findOne[T any](ctx context.Context, db *gorm.DB, query string, args ...interface{}) (*T, error) {
	var record T
	if err := db.WithContext(ctx).Where(query, args...).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// updateStatus writes the status column and returns the fresh row.
// gorm.ErrRecordNotFound is returned when id does not resolve.
func updateStatus[T any](ctx context.Context, db *gorm.DB, id interface{}, status string) (*T, error) {
	var record T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(new(T)).Where("id = ?", id).Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		return tx.Where("id = ?", id).First(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id interface{}) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
