package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "redcross/internal/errors"
	"redcross/internal/model"
	"redcross/internal/notification"
	"redcross/internal/repository"
)

const testPortalURL = "https://ircstripura.org/admin/login"

func newTestVolunteerService(repo *MockVolunteerRepository, notifier *MockNotifier, now time.Time) *volunteerService {
	svc := NewVolunteerService(repo, notifier, nil, testPortalURL, zap.NewNop()).(*volunteerService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestVolunteerService_Register(t *testing.T) {
	now := time.Date(2026, 10, 16, 6, 30, 0, 0, time.UTC)
	input := VolunteerInput{
		Name:           "  Asha Debbarma ",
		Email:          " Asha@Example.COM ",
		Phone:          "9876543210",
		AreaOfInterest: "first-aid",
		Skills:         []string{" driving ", "", "nursing"},
	}

	tests := []struct {
		name          string
		setupMock     func(*MockVolunteerRepository, *MockNotifier)
		expectedError error
	}{
		{
			name: "successful registration",
			setupMock: func(m *MockVolunteerRepository, n *MockNotifier) {
				m.On("FindByEmail", mock.Anything, "asha@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Volunteer")).Return(nil)
				n.On("Enqueue", "asha@example.com", notification.VolunteerWelcome("Asha Debbarma")).Return(true).Once()
				n.On("NotifyAdmin", mock.MatchedBy(func(tpl notification.Template) bool {
					return tpl.Subject == "New Volunteer Registration - Action Required"
				})).Return(true).Once()
			},
		},
		{
			name: "duplicate email with different case",
			setupMock: func(m *MockVolunteerRepository, n *MockNotifier) {
				m.On("FindByEmail", mock.Anything, "asha@example.com").
					Return(&model.Volunteer{Email: "asha@example.com"}, nil)
			},
			expectedError: apperrors.ErrDuplicateEmail,
		},
		{
			name: "duplicate caught by unique index",
			setupMock: func(m *MockVolunteerRepository, n *MockNotifier) {
				m.On("FindByEmail", mock.Anything, "asha@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Volunteer")).Return(apperrors.ErrDuplicateEmail)
			},
			expectedError: apperrors.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockVolunteerRepository)
			mockNotifier := new(MockNotifier)
			tt.setupMock(mockRepo, mockNotifier)

			svc := newTestVolunteerService(mockRepo, mockNotifier, now)
			volunteer, err := svc.Register(context.Background(), input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, volunteer)
				mockNotifier.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
				mockNotifier.AssertNotCalled(t, "NotifyAdmin", mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Asha Debbarma", volunteer.Name)
				assert.Equal(t, "asha@example.com", volunteer.Email)
				assert.Equal(t, model.DefaultAvailability, volunteer.Availability)
				assert.Equal(t, model.StringList{"driving", "nursing"}, volunteer.Skills)
				assert.Equal(t, model.VolunteerStatusPending, volunteer.Status)
				assert.Equal(t, now, volunteer.CreatedAt)
				assert.Equal(t, volunteer.CreatedAt, volunteer.UpdatedAt)
			}

			mockRepo.AssertExpectations(t)
			mockNotifier.AssertExpectations(t)
		})
	}
}

func TestVolunteerService_Register_DuplicateSkipsCreate(t *testing.T) {
	mockRepo := new(MockVolunteerRepository)
	mockNotifier := new(MockNotifier)
	mockRepo.On("FindByEmail", mock.Anything, "a@b.co").Return(&model.Volunteer{Email: "a@b.co"}, nil)

	svc := newTestVolunteerService(mockRepo, mockNotifier, time.Now())
	_, err := svc.Register(context.Background(), VolunteerInput{Name: "A", Email: "A@B.CO"})

	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVolunteerService_UpdateStatus(t *testing.T) {
	id := uuid.New()
	stored := func(status model.VolunteerStatus) *model.Volunteer {
		return &model.Volunteer{ID: id, Name: "Asha", Email: "asha@example.com", Status: status}
	}

	tests := []struct {
		name          string
		status        model.VolunteerStatus
		setupMock     func(*MockVolunteerRepository, *MockNotifier)
		expectedError error
	}{
		{
			name:   "approved queues one acceptance email",
			status: model.VolunteerStatusApproved,
			setupMock: func(m *MockVolunteerRepository, n *MockNotifier) {
				m.On("UpdateStatus", mock.Anything, id, model.VolunteerStatusApproved).
					Return(stored(model.VolunteerStatusApproved), nil)
				n.On("Enqueue", "asha@example.com", notification.ApplicationAccepted("Asha")).Return(true).Once()
			},
		},
		{
			name:   "approval succeeds even when the queue rejects the email",
			status: model.VolunteerStatusApproved,
			setupMock: func(m *MockVolunteerRepository, n *MockNotifier) {
				m.On("UpdateStatus", mock.Anything, id, model.VolunteerStatusApproved).
					Return(stored(model.VolunteerStatusApproved), nil)
				n.On("Enqueue", "asha@example.com", notification.ApplicationAccepted("Asha")).Return(false).Once()
			},
		},
		{
			name:   "rejected queues a status update",
			status: model.VolunteerStatusRejected,
			setupMock: func(m *MockVolunteerRepository, n *MockNotifier) {
				m.On("UpdateStatus", mock.Anything, id, model.VolunteerStatusRejected).
					Return(stored(model.VolunteerStatusRejected), nil)
				n.On("Enqueue", "asha@example.com", notification.StatusUpdate("Asha", "volunteer", "rejected")).Return(true).Once()
			},
		},
		{
			name:   "back to pending notifies nobody",
			status: model.VolunteerStatusPending,
			setupMock: func(m *MockVolunteerRepository, n *MockNotifier) {
				m.On("UpdateStatus", mock.Anything, id, model.VolunteerStatusPending).
					Return(stored(model.VolunteerStatusPending), nil)
			},
		},
		{
			name:          "unknown status leaves storage untouched",
			status:        "bogus",
			setupMock:     func(m *MockVolunteerRepository, n *MockNotifier) {},
			expectedError: apperrors.ErrInvalidStatus,
		},
		{
			name:   "missing record",
			status: model.VolunteerStatusActive,
			setupMock: func(m *MockVolunteerRepository, n *MockNotifier) {
				m.On("UpdateStatus", mock.Anything, id, model.VolunteerStatusActive).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockVolunteerRepository)
			mockNotifier := new(MockNotifier)
			tt.setupMock(mockRepo, mockNotifier)

			svc := newTestVolunteerService(mockRepo, mockNotifier, time.Now())
			volunteer, err := svc.UpdateStatus(context.Background(), id, tt.status)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, volunteer)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.status, volunteer.Status)
			}
			if tt.expectedError == apperrors.ErrInvalidStatus {
				mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			}
			if tt.status == model.VolunteerStatusPending || tt.expectedError != nil {
				mockNotifier.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
			}

			mockRepo.AssertExpectations(t)
			mockNotifier.AssertExpectations(t)
		})
	}
}

func TestVolunteerService_GetAndDelete(t *testing.T) {
	id := uuid.New()

	t.Run("get maps missing record", func(t *testing.T) {
		mockRepo := new(MockVolunteerRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := newTestVolunteerService(mockRepo, new(MockNotifier), time.Now())
		_, err := svc.Get(context.Background(), id)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("get returns the record", func(t *testing.T) {
		mockRepo := new(MockVolunteerRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.Volunteer{ID: id, Name: "Asha"}, nil)

		svc := newTestVolunteerService(mockRepo, new(MockNotifier), time.Now())
		v, err := svc.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Asha", v.Name)
	})

	t.Run("delete maps missing record", func(t *testing.T) {
		mockRepo := new(MockVolunteerRepository)
		mockRepo.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

		svc := newTestVolunteerService(mockRepo, new(MockNotifier), time.Now())
		assert.ErrorIs(t, svc.Delete(context.Background(), id), apperrors.ErrNotFound)
	})

	t.Run("delete wraps storage failure", func(t *testing.T) {
		boom := errors.New("connection reset")
		mockRepo := new(MockVolunteerRepository)
		mockRepo.On("Delete", mock.Anything, id).Return(boom)

		svc := newTestVolunteerService(mockRepo, new(MockNotifier), time.Now())
		err := svc.Delete(context.Background(), id)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestVolunteerService_List(t *testing.T) {
	params := repository.ListParams{Status: "pending", Page: 2, Limit: 10}
	mockRepo := new(MockVolunteerRepository)
	mockRepo.On("List", mock.Anything, params).Return([]model.Volunteer{{Name: "A"}}, int64(11), nil)

	svc := newTestVolunteerService(mockRepo, new(MockNotifier), time.Now())
	items, total, err := svc.List(context.Background(), params)

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(11), total)
}
