package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"redcross/internal/model"
)

// VolunteerRepository defines persistence operations for volunteer applications.
type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *model.Volunteer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Volunteer, error)
	FindByEmail(ctx context.Context, email string) (*model.Volunteer, error)
	List(ctx context.Context, params ListParams) ([]model.Volunteer, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.VolunteerStatus) (*model.Volunteer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var volunteerList = listSpec{
	searchColumns:  []string{"name", "email", "phone"},
	categoryColumn: "area_of_interest",
	sortColumns: map[string]string{
		"createdAt":      "created_at",
		"updatedAt":      "updated_at",
		"name":           "name",
		"email":          "email",
		"status":         "status",
		"areaOfInterest": "area_of_interest",
	},
}

type volunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository builds a GORM-backed repository.
func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &volunteerRepository{db: db}
}

func (r *volunteerRepository) Create(ctx context.Context, volunteer *model.Volunteer) error {
	return create(ctx, r.db, volunteer)
}

func (r *volunteerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Volunteer, error) {
	return findOne[model.Volunteer](ctx, r.db, "id = ?", id)
}

func (r *volunteerRepository) FindByEmail(ctx context.Context, email string) (*model.Volunteer, error) {
	return findOne[model.Volunteer](ctx, r.db, "email = ?", email)
}

func (r *volunteerRepository) List(ctx context.Context, params ListParams) ([]model.Volunteer, int64, error) {
	return list[model.Volunteer](ctx, r.db, volunteerList, params)
}

func (r *volunteerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.VolunteerStatus) (*model.Volunteer, error) {
	return updateStatus[model.Volunteer](ctx, r.db, id, string(status))
}

func (r *volunteerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.Volunteer](ctx, r.db, id)
}
