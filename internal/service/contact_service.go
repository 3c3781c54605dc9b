package service

import (
	"context"
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

// ContactService handles contact form messages.
type ContactService interface {
	Submit(ctx context.Context, input ContactInput) (*model.Contact, error)
	List(ctx context.Context, params repository.ListParams) ([]model.Contact, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Contact, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ContactStatus) (*model.Contact, error)
}

type contactService struct {
	repo      repository.ContactRepository
	notifier  notification.Notifier
	cache     *cache.Client
	portalURL string
	logger    *zap.Logger
	now       func() time.Time
}

// NewContactService creates a new contact service. cache may be nil.
func NewContactService(
	repo repository.ContactRepository,
	notifier notification.Notifier,
	cache *cache.Client,
	portalURL string,
	logger *zap.Logger,
) ContactService {
	return &contactService{
		repo:      repo,
		notifier:  notifier,
		cache:     cache,
		portalURL: portalURL,
		logger:    logger,
		now:       time.Now,
	}
}

func contactCacheKey(id uuid.UUID) string {
	return "contact:" + id.String()
}

// Submit stores a message. The same address may write any number of times.
func (s *contactService) Submit(ctx context.Context, input ContactInput) (*model.Contact, error) {
	contact := input.toModel()

	now := s.now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	metrics.RegistrationsTotal.WithLabelValues("contact").Inc()

	s.notifier.Enqueue(contact.Email, notification.ContactAcknowledgment(contact.Name, contact.Subject))
	s.notifier.NotifyAdmin(notification.AdminNewRegistration("Contact", contact.Name, contact.Email, s.portalURL, now))

	s.logger.Info("contact message received", zap.String("id", contact.ID.String()))
	return contact, nil
}

func (s *contactService) List(ctx context.Context, params repository.ListParams) ([]model.Contact, int64, error) {
	contacts, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, total, nil
}

func (s *contactService) Get(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	key := contactCacheKey(id)
	var cached model.Contact
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	s.cache.SetJSON(ctx, key, contact, recordCacheTTL)
	return contact, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ContactStatus) (*model.Contact, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	contact, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	s.cache.Delete(ctx, contactCacheKey(id))
	return contact, nil
}
