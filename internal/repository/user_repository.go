package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"redcross/internal/model"
)

// UserRepository stores portal accounts. Admin accounts are created only by
// the seed command; there is no update or delete.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return create(ctx, r.db, user)
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return findOne[model.User](ctx, r.db, "id = ?", id)
}

// FindByEmail expects an already normalized (trimmed, lower-case) address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne[model.User](ctx, r.db, "email = ?", email)
}
