package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"redcross/internal/model"
)

// ContactRepository defines persistence operations for contact messages.
// Contact messages are never deleted.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Contact, error)
	List(ctx context.Context, params ListParams) ([]model.Contact, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ContactStatus) (*model.Contact, error)
}

var contactList = listSpec{
	searchColumns: []string{"name", "email", "phone", "subject"},
	sortColumns: map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"name":      "name",
		"email":     "email",
		"status":    "status",
		"subject":   "subject",
	},
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository builds a GORM-backed repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return create(ctx, r.db, contact)
}

func (r *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	return findOne[model.Contact](ctx, r.db, "id = ?", id)
}

func (r *contactRepository) List(ctx context.Context, params ListParams) ([]model.Contact, int64, error) {
	return list[model.Contact](ctx, r.db, contactList, params)
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ContactStatus) (*model.Contact, error) {
	return updateStatus[model.Contact](ctx, r.db, id, string(status))
}
