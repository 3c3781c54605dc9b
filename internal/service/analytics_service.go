package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"redcross/internal/model"
	"redcross/internal/repository"
)

const (
	recentWindow = 7 * 24 * time.Hour
	trendMonths  = 6
)

// Overview holds the headline counters of the admin dashboard.
type Overview struct {
	TotalVolunteers    int64 `json:"totalVolunteers"`
	TotalMembers       int64 `json:"totalMembers"`
	TotalContacts      int64 `json:"totalContacts"`
	PendingVolunteers  int64 `json:"pendingVolunteers"`
	PendingMembers     int64 `json:"pendingMembers"`
	ApprovedVolunteers int64 `json:"approvedVolunteers"`
	ApprovedMembers    int64 `json:"approvedMembers"`
	RecentVolunteers   int64 `json:"recentVolunteers"`
	RecentMembers      int64 `json:"recentMembers"`
}

// Trends holds monthly registration counts, oldest first.
type Trends struct {
	VolunteersByMonth []repository.MonthCount `json:"volunteersByMonth"`
	MembersByMonth    []repository.MonthCount `json:"membersByMonth"`
}

// Distribution holds group-by counts, largest first.
type Distribution struct {
	VolunteersByArea    []repository.GroupCount `json:"volunteersByArea"`
	MembersByType       []repository.GroupCount `json:"membersByType"`
	VolunteerStatusDist []repository.GroupCount `json:"volunteerStatusDist"`
	MemberStatusDist    []repository.GroupCount `json:"memberStatusDist"`
}

// Dashboard is the full admin dashboard payload.
type Dashboard struct {
	Overview     Overview     `json:"overview"`
	Trends       Trends       `json:"trends"`
	Distribution Distribution `json:"distribution"`
}

// VolunteerStats summarises volunteer applications.
type VolunteerStats struct {
	Total    int64                   `json:"total"`
	ByStatus []repository.GroupCount `json:"byStatus"`
	ByArea   []repository.GroupCount `json:"byArea"`
}

// MemberStats summarises memberships.
type MemberStats struct {
	Total    int64                   `json:"total"`
	ByStatus []repository.GroupCount `json:"byStatus"`
	ByType   []repository.GroupCount `json:"byType"`
}

// AnalyticsService computes read-only aggregates for the admin portal.
type AnalyticsService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Volunteers(ctx context.Context) (*VolunteerStats, error)
	Members(ctx context.Context) (*MemberStats, error)
}

type analyticsService struct {
	repo repository.AnalyticsRepository
	now  func() time.Time
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(repo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{repo: repo, now: time.Now}
}

// Dashboard runs every aggregate concurrently and fails if any query fails.
func (s *analyticsService) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := s.now()
	recentSince := now.Add(-recentWindow)
	trendSince := now.AddDate(0, -trendMonths, 0)

	var d Dashboard
	o := &d.Overview
	g, ctx := errgroup.WithContext(ctx)

	count := func(dst *int64, c repository.Collection) {
		g.Go(func() (err error) {
			*dst, err = s.repo.Count(ctx, c)
			return wrap(err, "count %s", c)
		})
	}
	countStatus := func(dst *int64, c repository.Collection, status string) {
		g.Go(func() (err error) {
			*dst, err = s.repo.CountByStatus(ctx, c, status)
			return wrap(err, "count %s with status %s", c, status)
		})
	}
	countSince := func(dst *int64, c repository.Collection) {
		g.Go(func() (err error) {
			*dst, err = s.repo.CountSince(ctx, c, recentSince)
			return wrap(err, "count recent %s", c)
		})
	}
	byMonth := func(dst *[]repository.MonthCount, c repository.Collection) {
		g.Go(func() (err error) {
			*dst, err = s.repo.CountByMonth(ctx, c, trendSince)
			return wrap(err, "monthly %s", c)
		})
	}
	groupBy := func(dst *[]repository.GroupCount, c repository.Collection, field string) {
		g.Go(func() (err error) {
			*dst, err = s.repo.GroupBy(ctx, c, field)
			return wrap(err, "group %s by %s", c, field)
		})
	}

	count(&o.TotalVolunteers, repository.Volunteers)
	count(&o.TotalMembers, repository.Members)
	count(&o.TotalContacts, repository.Contacts)
	countStatus(&o.PendingVolunteers, repository.Volunteers, string(model.VolunteerStatusPending))
	countStatus(&o.PendingMembers, repository.Members, string(model.MemberStatusPending))
	countStatus(&o.ApprovedVolunteers, repository.Volunteers, string(model.VolunteerStatusApproved))
	countStatus(&o.ApprovedMembers, repository.Members, string(model.MemberStatusApproved))
	countSince(&o.RecentVolunteers, repository.Volunteers)
	countSince(&o.RecentMembers, repository.Members)

	byMonth(&d.Trends.VolunteersByMonth, repository.Volunteers)
	byMonth(&d.Trends.MembersByMonth, repository.Members)

	groupBy(&d.Distribution.VolunteersByArea, repository.Volunteers, repository.FieldAreaOfInterest)
	groupBy(&d.Distribution.MembersByType, repository.Members, repository.FieldMembershipType)
	groupBy(&d.Distribution.VolunteerStatusDist, repository.Volunteers, repository.FieldStatus)
	groupBy(&d.Distribution.MemberStatusDist, repository.Members, repository.FieldStatus)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *analyticsService) Volunteers(ctx context.Context) (*VolunteerStats, error) {
	total, err := s.repo.Count(ctx, repository.Volunteers)
	if err != nil {
		return nil, fmt.Errorf("count volunteers: %w", err)
	}
	byStatus, err := s.repo.GroupBy(ctx, repository.Volunteers, repository.FieldStatus)
	if err != nil {
		return nil, fmt.Errorf("group volunteers by status: %w", err)
	}
	byArea, err := s.repo.GroupBy(ctx, repository.Volunteers, repository.FieldAreaOfInterest)
	if err != nil {
		return nil, fmt.Errorf("group volunteers by area: %w", err)
	}
	return &VolunteerStats{Total: total, ByStatus: byStatus, ByArea: byArea}, nil
}

func (s *analyticsService) Members(ctx context.Context) (*MemberStats, error) {
	total, err := s.repo.Count(ctx, repository.Members)
	if err != nil {
		return nil, fmt.Errorf("count members: %w", err)
	}
	byStatus, err := s.repo.GroupBy(ctx, repository.Members, repository.FieldStatus)
	if err != nil {
		return nil, fmt.Errorf("group members by status: %w", err)
	}
	byType, err := s.repo.GroupBy(ctx, repository.Members, repository.FieldMembershipType)
	if err != nil {
		return nil, fmt.Errorf("group members by type: %w", err)
	}
	return &MemberStats{Total: total, ByStatus: byStatus, ByType: byType}, nil
}

func wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
