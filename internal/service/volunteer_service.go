package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"redcross/internal/cache"
	apperrors "redcross/internal/errors"
	"redcross/internal/metrics"
	"redcross/internal/model"
	"redcross/internal/notification"
	"redcross/internal/repository"
)

// VolunteerService handles volunteer applications and their moderation.
type VolunteerService interface {
	Register(ctx context.Context, input VolunteerInput) (*model.Volunteer, error)
	List(ctx context.Context, params repository.ListParams) ([]model.Volunteer, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Volunteer, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.VolunteerStatus) (*model.Volunteer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type volunteerService struct {
	repo      repository.VolunteerRepository
	notifier  notification.Notifier
	cache     *cache.Client
	portalURL string
	logger    *zap.Logger
	now       func() time.Time
}

// NewVolunteerService creates a new volunteer service. cache may be nil.
func NewVolunteerService(
	repo repository.VolunteerRepository,
	notifier notification.Notifier,
	cache *cache.Client,
	portalURL string,
	logger *zap.Logger,
) VolunteerService {
	return &volunteerService{
		repo:      repo,
		notifier:  notifier,
		cache:     cache,
		portalURL: portalURL,
		logger:    logger,
		now:       time.Now,
	}
}

func volunteerCacheKey(id uuid.UUID) string {
	return "volunteer:" + id.String()
}

// Register stores a new pending application and queues the welcome and admin emails.
func (s *volunteerService) Register(ctx context.Context, input VolunteerInput) (*model.Volunteer, error) {
	volunteer := input.toModel()

	existing, err := s.repo.FindByEmail(ctx, volunteer.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("check volunteer email: %w", err)
	}

	now := s.now()
	volunteer.CreatedAt = now
	volunteer.UpdatedAt = now

	if err := s.repo.Create(ctx, volunteer); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create volunteer: %w", err)
	}
	metrics.RegistrationsTotal.WithLabelValues("volunteer").Inc()

	s.notifier.Enqueue(volunteer.Email, notification.VolunteerWelcome(volunteer.Name))
	s.notifier.NotifyAdmin(notification.AdminNewRegistration("Volunteer", volunteer.Name, volunteer.Email, s.portalURL, now))

	s.logger.Info("volunteer registered",
		zap.String("id", volunteer.ID.String()),
		zap.String("area", volunteer.AreaOfInterest),
	)
	return volunteer, nil
}

func (s *volunteerService) List(ctx context.Context, params repository.ListParams) ([]model.Volunteer, int64, error) {
	volunteers, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list volunteers: %w", err)
	}
	return volunteers, total, nil
}

func (s *volunteerService) Get(ctx context.Context, id uuid.UUID) (*model.Volunteer, error) {
	key := volunteerCacheKey(id)
	var cached model.Volunteer
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	volunteer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get volunteer: %w", err)
	}
	s.cache.SetJSON(ctx, key, volunteer, recordCacheTTL)
	return volunteer, nil
}

// UpdateStatus moves an application to status. Approving it queues exactly one
// acceptance email; any other status except pending queues a status update.
func (s *volunteerService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.VolunteerStatus) (*model.Volunteer, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	volunteer, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("update volunteer status: %w", err)
	}
	s.cache.Delete(ctx, volunteerCacheKey(id))

	switch status {
	case model.VolunteerStatusApproved:
		s.notifier.Enqueue(volunteer.Email, notification.ApplicationAccepted(volunteer.Name))
	case model.VolunteerStatusPending:
	default:
		s.notifier.Enqueue(volunteer.Email, notification.StatusUpdate(volunteer.Name, "volunteer", string(status)))
	}

	s.logger.Info("volunteer status updated",
		zap.String("id", id.String()),
		zap.String("status", string(status)),
	)
	return volunteer, nil
}

func (s *volunteerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("delete volunteer: %w", err)
	}
	s.cache.Delete(ctx, volunteerCacheKey(id))
	return nil
}
