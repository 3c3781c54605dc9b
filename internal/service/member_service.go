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
	"redcross/internal/receipt"
	"redcross/internal/repository"
)

// ReceiptGenerator renders membership receipts.
type ReceiptGenerator interface {
	Generate(member *model.Member) (*receipt.Receipt, error)
}

// MemberRegistration is the outcome of a membership application. The member is
// stored even when ReceiptErr is set.
type MemberRegistration struct {
	Member     *model.Member
	Receipt    *receipt.Receipt
	ReceiptErr error
}

// MemberService handles membership applications, moderation and receipts.
type MemberService interface {
	Register(ctx context.Context, input MemberInput) (*MemberRegistration, error)
	List(ctx context.Context, params repository.ListParams) ([]model.Member, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Member, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.MemberStatus) (*model.Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Receipt(ctx context.Context, id uuid.UUID) (*receipt.Receipt, error)
}

type memberService struct {
	repo      repository.MemberRepository
	receipts  ReceiptGenerator
	notifier  notification.Notifier
	cache     *cache.Client
	portalURL string
	logger    *zap.Logger
	now       func() time.Time
}

// NewMemberService creates a new member service. cache may be nil.
func NewMemberService(
	repo repository.MemberRepository,
	receipts ReceiptGenerator,
	notifier notification.Notifier,
	cache *cache.Client,
	portalURL string,
	logger *zap.Logger,
) MemberService {
	return &memberService{
		repo:      repo,
		receipts:  receipts,
		notifier:  notifier,
		cache:     cache,
		portalURL: portalURL,
		logger:    logger,
		now:       time.Now,
	}
}

func memberCacheKey(id uuid.UUID) string {
	return "member:" + id.String()
}

// Register stores a new pending membership, renders its receipt and queues the
// welcome and admin emails. A receipt failure does not fail the registration.
func (s *memberService) Register(ctx context.Context, input MemberInput) (*MemberRegistration, error) {
	member := input.toModel()

	existing, err := s.repo.FindByEmail(ctx, member.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("check member email: %w", err)
	}

	now := s.now()
	member.CreatedAt = now
	member.UpdatedAt = now

	if err := s.repo.Create(ctx, member); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create member: %w", err)
	}
	metrics.RegistrationsTotal.WithLabelValues("member").Inc()

	result := &MemberRegistration{Member: member}
	result.Receipt, result.ReceiptErr = s.render(member)

	s.notifier.Enqueue(member.Email, notification.MemberWelcome(member.FullName, string(member.MembershipType)))
	s.notifier.NotifyAdmin(notification.AdminNewRegistration("Member", member.FullName, member.Email, s.portalURL, now))

	s.logger.Info("member registered",
		zap.String("id", member.ID.String()),
		zap.String("membership_type", string(member.MembershipType)),
		zap.Bool("receipt", result.ReceiptErr == nil),
	)
	return result, nil
}

func (s *memberService) render(member *model.Member) (*receipt.Receipt, error) {
	rec, err := s.receipts.Generate(member)
	if err != nil {
		metrics.ReceiptsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		s.logger.Error("receipt generation failed", zap.String("id", member.ID.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrReceiptFailed, err)
	}
	metrics.ReceiptsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return rec, nil
}

func (s *memberService) List(ctx context.Context, params repository.ListParams) ([]model.Member, int64, error) {
	members, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list members: %w", err)
	}
	return members, total, nil
}

func (s *memberService) Get(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	key := memberCacheKey(id)
	var cached model.Member
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	s.cache.SetJSON(ctx, key, member, recordCacheTTL)
	return member, nil
}

// UpdateStatus moves a membership to status. Approving it queues exactly one
// acceptance email; any other status except pending queues a status update.
func (s *memberService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.MemberStatus) (*model.Member, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	member, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("update member status: %w", err)
	}
	s.cache.Delete(ctx, memberCacheKey(id))

	switch status {
	case model.MemberStatusApproved:
		s.notifier.Enqueue(member.Email, notification.ApplicationAccepted(member.FullName))
	case model.MemberStatusPending:
	default:
		s.notifier.Enqueue(member.Email, notification.StatusUpdate(member.FullName, "membership", string(status)))
	}

	s.logger.Info("member status updated",
		zap.String("id", id.String()),
		zap.String("status", string(status)),
	)
	return member, nil
}

func (s *memberService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("delete member: %w", err)
	}
	s.cache.Delete(ctx, memberCacheKey(id))
	return nil
}

// Receipt re-renders the receipt of an existing membership.
func (s *memberService) Receipt(ctx context.Context, id uuid.UUID) (*receipt.Receipt, error) {
	member, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.render(member)
}
