package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"redcross/internal/repository"
)

func setupDashboardMock(m *MockAnalyticsRepository, now time.Time) {
	recent := now.Add(-7 * 24 * time.Hour)
	trend := now.AddDate(0, -6, 0)

	m.On("Count", mock.Anything, repository.Volunteers).Return(int64(12), nil)
	m.On("Count", mock.Anything, repository.Members).Return(int64(7), nil)
	m.On("Count", mock.Anything, repository.Contacts).Return(int64(3), nil)
	m.On("CountByStatus", mock.Anything, repository.Volunteers, "pending").Return(int64(5), nil)
	m.On("CountByStatus", mock.Anything, repository.Members, "pending").Return(int64(4), nil)
	m.On("CountByStatus", mock.Anything, repository.Volunteers, "approved").Return(int64(6), nil)
	m.On("CountByStatus", mock.Anything, repository.Members, "approved").Return(int64(2), nil)
	m.On("CountSince", mock.Anything, repository.Volunteers, recent).Return(int64(2), nil)
	m.On("CountSince", mock.Anything, repository.Members, recent).Return(int64(1), nil)
	m.On("CountByMonth", mock.Anything, repository.Volunteers, trend).Return([]repository.MonthCount{
		{Year: 2026, Month: 9, Count: 4}, {Year: 2026, Month: 10, Count: 8},
	}, nil)
	m.On("CountByMonth", mock.Anything, repository.Members, trend).Return([]repository.MonthCount{
		{Year: 2026, Month: 10, Count: 7},
	}, nil)
	m.On("GroupBy", mock.Anything, repository.Volunteers, repository.FieldAreaOfInterest).Return([]repository.GroupCount{
		{ID: "first-aid", Count: 9}, {ID: "blood-donation", Count: 3},
	}, nil)
	m.On("GroupBy", mock.Anything, repository.Members, repository.FieldMembershipType).Return([]repository.GroupCount{
		{ID: "individual", Count: 5}, {ID: "family", Count: 2},
	}, nil)
	m.On("GroupBy", mock.Anything, repository.Volunteers, repository.FieldStatus).Return([]repository.GroupCount{
		{ID: "approved", Count: 6}, {ID: "pending", Count: 5}, {ID: "rejected", Count: 1},
	}, nil)
	m.On("GroupBy", mock.Anything, repository.Members, repository.FieldStatus).Return([]repository.GroupCount{
		{ID: "pending", Count: 4}, {ID: "approved", Count: 2}, {ID: "active", Count: 1},
	}, nil)
}

func sum(groups []repository.GroupCount) int64 {
	var n int64
	for _, g := range groups {
		n += g.Count
	}
	return n
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	mockRepo := new(MockAnalyticsRepository)
	setupDashboardMock(mockRepo, now)

	svc := NewAnalyticsService(mockRepo).(*analyticsService)
	svc.now = func() time.Time { return now }

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Overview{
		TotalVolunteers:    12,
		TotalMembers:       7,
		TotalContacts:      3,
		PendingVolunteers:  5,
		PendingMembers:     4,
		ApprovedVolunteers: 6,
		ApprovedMembers:    2,
		RecentVolunteers:   2,
		RecentMembers:      1,
	}, d.Overview)
	assert.Len(t, d.Trends.VolunteersByMonth, 2)
	assert.Equal(t, "first-aid", d.Distribution.VolunteersByArea[0].ID)
	assert.Equal(t, d.Overview.TotalVolunteers, sum(d.Distribution.VolunteerStatusDist))
	assert.Equal(t, d.Overview.TotalMembers, sum(d.Distribution.MemberStatusDist))
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_Dashboard_Error(t *testing.T) {
	boom := errors.New("db down")
	mockRepo := new(MockAnalyticsRepository)
	mockRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), boom)
	mockRepo.On("CountByStatus", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)
	mockRepo.On("CountSince", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)
	mockRepo.On("CountByMonth", mock.Anything, mock.Anything, mock.Anything).Return([]repository.MonthCount{}, nil)
	mockRepo.On("GroupBy", mock.Anything, mock.Anything, mock.Anything).Return([]repository.GroupCount{}, nil)

	d, err := NewAnalyticsService(mockRepo).Dashboard(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, d)
}

func TestAnalyticsService_Volunteers(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	mockRepo.On("Count", mock.Anything, repository.Volunteers).Return(int64(3), nil)
	mockRepo.On("GroupBy", mock.Anything, repository.Volunteers, repository.FieldStatus).
		Return([]repository.GroupCount{{ID: "pending", Count: 2}, {ID: "approved", Count: 1}}, nil)
	mockRepo.On("GroupBy", mock.Anything, repository.Volunteers, repository.FieldAreaOfInterest).
		Return([]repository.GroupCount{{ID: "first-aid", Count: 3}}, nil)

	stats, err := NewAnalyticsService(mockRepo).Volunteers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, stats.Total, sum(stats.ByStatus))
	assert.Equal(t, stats.Total, sum(stats.ByArea))
}

func TestAnalyticsService_Members(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	mockRepo.On("Count", mock.Anything, repository.Members).Return(int64(0), nil)
	mockRepo.On("GroupBy", mock.Anything, repository.Members, repository.FieldStatus).Return([]repository.GroupCount{}, nil)
	mockRepo.On("GroupBy", mock.Anything, repository.Members, repository.FieldMembershipType).Return([]repository.GroupCount{}, nil)

	stats, err := NewAnalyticsService(mockRepo).Members(context.Background())

	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.ByType)
}
