package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "redcross/internal/errors"
	"redcross/internal/model"
)

// openDB returns an empty, migrated database for one test.
type openDB func(t *testing.T) *gorm.DB

var baseTime = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func seedVolunteer(t *testing.T, repo VolunteerRepository, name, email string, status model.VolunteerStatus, area string, createdAt time.Time) *model.Volunteer {
	t.Helper()
	v := &model.Volunteer{
		Name:           name,
		Email:          email,
		Phone:          "9876543210",
		AreaOfInterest: area,
		Availability:   model.DefaultAvailability,
		Skills:         model.StringList{"first aid"},
		Status:         status,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), v))
	return v
}

func seedMember(t *testing.T, repo MemberRepository, name, email string, status model.MemberStatus, tier model.MembershipType, createdAt time.Time) *model.Member {
	t.Helper()
	m := &model.Member{
		FullName:       name,
		Email:          email,
		Phone:          "9123456789",
		Address:        "Agartala",
		MembershipType: tier,
		Status:         status,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), m))
	return m
}

// runRepositoryTests exercises the GORM repositories against a real database.
func runRepositoryTests(t *testing.T, open openDB) {
	t.Run("volunteer create and find", func(t *testing.T) {
		repo := NewVolunteerRepository(open(t))
		created := seedVolunteer(t, repo, "Asha Das", "asha@example.com", model.VolunteerStatusPending, "First Aid", baseTime)

		byID, err := repo.FindByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", byID.Email)
		assert.Equal(t, model.StringList{"first aid"}, byID.Skills)

		byEmail, err := repo.FindByEmail(context.Background(), "asha@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byEmail.ID)

		_, err = repo.FindByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("duplicate email maps to ErrDuplicateEmail", func(t *testing.T) {
		gormDB := open(t)
		volunteers := NewVolunteerRepository(gormDB)
		seedVolunteer(t, volunteers, "Asha Das", "asha@example.com", model.VolunteerStatusPending, "First Aid", baseTime)

		err := volunteers.Create(context.Background(), &model.Volunteer{
			Name: "Other", Email: "asha@example.com", Phone: "1", AreaOfInterest: "Other",
		})
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)

		members := NewMemberRepository(gormDB)
		seedMember(t, members, "Jane Doe", "jane@example.com", model.MemberStatusPending, model.MembershipIndividual, baseTime)
		err = members.Create(context.Background(), &model.Member{
			FullName: "Jane Again", Email: "jane@example.com", Phone: "1", Address: "x",
		})
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)

		users := NewUserRepository(gormDB)
		require.NoError(t, users.Create(context.Background(), &model.User{Name: "Admin", Email: "admin@example.com", PasswordHash: "h", Role: model.RoleAdmin}))
		err = users.Create(context.Background(), &model.User{Name: "Admin 2", Email: "admin@example.com", PasswordHash: "h", Role: model.RoleUser})
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
	})

	t.Run("volunteer list filters searches sorts and pages", func(t *testing.T) {
		repo := NewVolunteerRepository(open(t))
		seedVolunteer(t, repo, "Asha Das", "asha@example.com", model.VolunteerStatusPending, "First Aid", baseTime)
		seedVolunteer(t, repo, "Bikash Roy", "bikash@example.com", model.VolunteerStatusApproved, "Blood Donation", baseTime.Add(time.Hour))
		seedVolunteer(t, repo, "Chandan 100% Sen", "chandan@example.com", model.VolunteerStatusApproved, "First Aid", baseTime.Add(2*time.Hour))
		seedVolunteer(t, repo, "Dipa_Paul", "dipa@example.com", model.VolunteerStatusRejected, "First Aid", baseTime.Add(3*time.Hour))

		tests := []struct {
			name          string
			params        ListParams
			expectedNames []string
			expectedTotal int64
		}{
			{
				name:          "default order is newest first",
				params:        ListParams{},
				expectedNames: []string{"Dipa_Paul", "Chandan 100% Sen", "Bikash Roy", "Asha Das"},
				expectedTotal: 4,
			},
			{
				name:          "status filter",
				params:        ListParams{Status: "approved", SortBy: "name", Order: "asc"},
				expectedNames: []string{"Bikash Roy", "Chandan 100% Sen"},
				expectedTotal: 2,
			},
			{
				name:          "category filter",
				params:        ListParams{Category: "First Aid", SortBy: "createdAt", Order: "asc"},
				expectedNames: []string{"Asha Das", "Chandan 100% Sen", "Dipa_Paul"},
				expectedTotal: 3,
			},
			{
				name:          "search is case insensitive on email",
				params:        ListParams{Search: "BIKASH@"},
				expectedNames: []string{"Bikash Roy"},
				expectedTotal: 1,
			},
			{
				name:          "percent is matched literally",
				params:        ListParams{Search: "%"},
				expectedNames: []string{"Chandan 100% Sen"},
				expectedTotal: 1,
			},
			{
				name:          "underscore is matched literally",
				params:        ListParams{Search: "_"},
				expectedNames: []string{"Dipa_Paul"},
				expectedTotal: 1,
			},
			{
				name:          "second page",
				params:        ListParams{SortBy: "name", Order: "asc", Page: 2, Limit: 3},
				expectedNames: []string{"Dipa_Paul"},
				expectedTotal: 4,
			},
			{
				name:          "unknown sort column falls back to createdAt",
				params:        ListParams{SortBy: "password; DROP TABLE volunteers", Order: "asc", Limit: 1},
				expectedNames: []string{"Asha Das"},
				expectedTotal: 4,
			},
			{
				name:          "no match",
				params:        ListParams{Search: "nobody"},
				expectedNames: []string{},
				expectedTotal: 0,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				items, total, err := repo.List(context.Background(), tt.params)
				require.NoError(t, err)
				assert.Equal(t, tt.expectedTotal, total)
				names := make([]string, 0, len(items))
				for _, v := range items {
					names = append(names, v.Name)
				}
				assert.Equal(t, tt.expectedNames, names)
			})
		}
	})

	t.Run("contact search covers subject", func(t *testing.T) {
		repo := NewContactRepository(open(t))
		for i, subject := range []string{"Blood camp dates", "Membership fee"} {
			require.NoError(t, repo.Create(context.Background(), &model.Contact{
				Name:      fmt.Sprintf("Sender %d", i),
				Email:     fmt.Sprintf("sender%d@example.com", i),
				Subject:   subject,
				Message:   "Hello",
				Status:    model.ContactStatusNew,
				CreatedAt: baseTime.Add(time.Duration(i) * time.Minute),
			}))
		}

		items, total, err := repo.List(context.Background(), ListParams{Search: "blood"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "Blood camp dates", items[0].Subject)
	})

	t.Run("update status refreshes updatedAt", func(t *testing.T) {
		repo := NewVolunteerRepository(open(t))
		created := seedVolunteer(t, repo, "Asha Das", "asha@example.com", model.VolunteerStatusPending, "First Aid", baseTime)

		updated, err := repo.UpdateStatus(context.Background(), created.ID, model.VolunteerStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, model.VolunteerStatusApproved, updated.Status)
		assert.True(t, updated.UpdatedAt.After(baseTime), "updatedAt %v should be after %v", updated.UpdatedAt, baseTime)
		assert.True(t, updated.CreatedAt.Equal(baseTime))

		stored, err := repo.FindByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, model.VolunteerStatusApproved, stored.Status)

		_, err = repo.UpdateStatus(context.Background(), uuid.New(), model.VolunteerStatusApproved)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("contact and member status writes", func(t *testing.T) {
		gormDB := open(t)
		contacts := NewContactRepository(gormDB)
		c := &model.Contact{Name: "A", Email: "a@example.com", Subject: "S", Message: "M", Status: model.ContactStatusNew}
		require.NoError(t, contacts.Create(context.Background(), c))
		updated, err := contacts.UpdateStatus(context.Background(), c.ID, model.ContactStatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, model.ContactStatusInProgress, updated.Status)

		members := NewMemberRepository(gormDB)
		m := seedMember(t, members, "Jane Doe", "jane@example.com", model.MemberStatusPending, model.MembershipFamily, baseTime)
		updatedMember, err := members.UpdateStatus(context.Background(), m.ID, model.MemberStatusExpired)
		require.NoError(t, err)
		assert.Equal(t, model.MemberStatusExpired, updatedMember.Status)
		assert.Equal(t, model.MembershipFamily, updatedMember.MembershipType)
	})

	t.Run("delete removes the row and reports unknown ids", func(t *testing.T) {
		gormDB := open(t)
		volunteers := NewVolunteerRepository(gormDB)
		v := seedVolunteer(t, volunteers, "Asha Das", "asha@example.com", model.VolunteerStatusPending, "First Aid", baseTime)

		require.NoError(t, volunteers.Delete(context.Background(), v.ID))
		_, err := volunteers.FindByID(context.Background(), v.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.ErrorIs(t, volunteers.Delete(context.Background(), v.ID), gorm.ErrRecordNotFound)

		members := NewMemberRepository(gormDB)
		assert.ErrorIs(t, members.Delete(context.Background(), uuid.New()), gorm.ErrRecordNotFound)
	})

	t.Run("analytics counts and groups", func(t *testing.T) {
		gormDB := open(t)
		volunteers := NewVolunteerRepository(gormDB)
		seedVolunteer(t, volunteers, "A", "a@example.com", model.VolunteerStatusPending, "First Aid", baseTime.AddDate(0, 0, -30))
		seedVolunteer(t, volunteers, "B", "b@example.com", model.VolunteerStatusApproved, "First Aid", baseTime.AddDate(0, 0, -3))
		seedVolunteer(t, volunteers, "C", "c@example.com", model.VolunteerStatusApproved, "Blood Donation", baseTime.AddDate(0, 0, -1))
		seedVolunteer(t, volunteers, "D", "d@example.com", model.VolunteerStatusApproved, "First Aid", baseTime)
		members := NewMemberRepository(gormDB)
		seedMember(t, members, "M1", "m1@example.com", model.MemberStatusPending, model.MembershipFamily, baseTime)

		repo := NewAnalyticsRepository(gormDB)
		ctx := context.Background()

		total, err := repo.Count(ctx, Volunteers)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)

		memberTotal, err := repo.Count(ctx, Members)
		require.NoError(t, err)
		assert.Equal(t, int64(1), memberTotal)

		contactTotal, err := repo.Count(ctx, Contacts)
		require.NoError(t, err)
		assert.Zero(t, contactTotal)

		approved, err := repo.CountByStatus(ctx, Volunteers, "approved")
		require.NoError(t, err)
		assert.Equal(t, int64(3), approved)

		recent, err := repo.CountSince(ctx, Volunteers, baseTime.AddDate(0, 0, -7))
		require.NoError(t, err)
		assert.Equal(t, int64(3), recent)

		byStatus, err := repo.GroupBy(ctx, Volunteers, FieldStatus)
		require.NoError(t, err)
		assert.Equal(t, []GroupCount{{ID: "approved", Count: 3}, {ID: "pending", Count: 1}}, byStatus)
		var sum int64
		for _, g := range byStatus {
			sum += g.Count
		}
		assert.Equal(t, total, sum)

		byArea, err := repo.GroupBy(ctx, Volunteers, FieldAreaOfInterest)
		require.NoError(t, err)
		assert.Equal(t, []GroupCount{{ID: "First Aid", Count: 3}, {ID: "Blood Donation", Count: 1}}, byArea)

		byType, err := repo.GroupBy(ctx, Members, FieldMembershipType)
		require.NoError(t, err)
		assert.Equal(t, []GroupCount{{ID: "family", Count: 1}}, byType)

		_, err = repo.GroupBy(ctx, Contacts, FieldMembershipType)
		assert.Error(t, err)

		empty, err := repo.GroupBy(ctx, Contacts, FieldStatus)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}
