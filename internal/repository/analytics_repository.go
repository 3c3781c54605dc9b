package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Collection names a table the analytics queries run against.
type Collection string

const (
	Volunteers Collection = "volunteers"
	Members    Collection = "members"
	Contacts   Collection = "contacts"
)

// Grouping columns accepted by GroupBy.
const (
	FieldStatus         = "status"
	FieldAreaOfInterest = "area_of_interest"
	FieldMembershipType = "membership_type"
)

var groupableFields = map[Collection]map[string]bool{
	Volunteers: {FieldStatus: true, FieldAreaOfInterest: true},
	Members:    {FieldStatus: true, FieldMembershipType: true},
	Contacts:   {FieldStatus: true},
}

// GroupCount is one bucket of a group-by count.
type GroupCount struct {
	ID    string `json:"id"`
	Count int64  `json:"count"`
}

// MonthCount is the number of rows created in one calendar month.
type MonthCount struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// AnalyticsRepository runs read-only aggregate queries.
type AnalyticsRepository interface {
	Count(ctx context.Context, c Collection) (int64, error)
	CountByStatus(ctx context.Context, c Collection, status string) (int64, error)
	CountSince(ctx context.Context, c Collection, since time.Time) (int64, error)
	GroupBy(ctx context.Context, c Collection, field string) ([]GroupCount, error)
	CountByMonth(ctx context.Context, c Collection, since time.Time) ([]MonthCount, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository builds a GORM-backed analytics repository.
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) table(ctx context.Context, c Collection) *gorm.DB {
	return r.db.WithContext(ctx).Table(string(c))
}

func (r *analyticsRepository) Count(ctx context.Context, c Collection) (int64, error) {
	var n int64
	err := r.table(ctx, c).Count(&n).Error
	return n, err
}

func (r *analyticsRepository) CountByStatus(ctx context.Context, c Collection, status string) (int64, error) {
	var n int64
	err := r.table(ctx, c).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *analyticsRepository) CountSince(ctx context.Context, c Collection, since time.Time) (int64, error) {
	var n int64
	err := r.table(ctx, c).Where("created_at >= ?", since).Count(&n).Error
	return n, err
}

func (r *analyticsRepository) GroupBy(ctx context.Context, c Collection, field string) ([]GroupCount, error) {
	if !groupableFields[c][field] {
		return nil, fmt.Errorf("group %s by %q: unsupported field", c, field)
	}
	groups := make([]GroupCount, 0)
	err := r.table(ctx, c).
		Select(field + " AS id, COUNT(*) AS count").
		Group(field).
		Order("count DESC").
		Scan(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *analyticsRepository) CountByMonth(ctx context.Context, c Collection, since time.Time) ([]MonthCount, error) {
	months := make([]MonthCount, 0)
	err := r.table(ctx, c).
		Select("YEAR(created_at) AS year, MONTH(created_at) AS month, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("YEAR(created_at), MONTH(created_at)").
		Order("year ASC, month ASC").
		Scan(&months).Error
	if err != nil {
		return nil, err
	}
	return months, nil
}
