package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"redcross/internal/model"
)

// MemberRepository defines persistence operations for membership applications.
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error)
	FindByEmail(ctx context.Context, email string) (*model.Member, error)
	List(ctx context.Context, params ListParams) ([]model.Member, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.MemberStatus) (*model.Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var memberList = listSpec{
	searchColumns:  []string{"full_name", "email", "phone"},
	categoryColumn: "membership_type",
	sortColumns: map[string]string{
		"createdAt":      "created_at",
		"updatedAt":      "updated_at",
		"fullName":       "full_name",
		"email":          "email",
		"status":         "status",
		"membershipType": "membership_type",
	},
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository builds a GORM-backed repository.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *model.Member) error {
	return create(ctx, r.db, member)
}

func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	return findOne[model.Member](ctx, r.db, "id = ?", id)
}

func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	return findOne[model.Member](ctx, r.db, "email = ?", email)
}

func (r *memberRepository) List(ctx context.Context, params ListParams) ([]model.Member, int64, error) {
	return list[model.Member](ctx, r.db, memberList, params)
}

func (r *memberRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.MemberStatus) (*model.Member, error) {
	return updateStatus[model.Member](ctx, r.db, id, string(status))
}

func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.Member](ctx, r.db, id)
}
