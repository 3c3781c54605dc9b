package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VolunteerStatus is the moderation state of a volunteer application.
type VolunteerStatus string

const (
	VolunteerStatusPending  VolunteerStatus = "pending"
	VolunteerStatusApproved VolunteerStatus = "approved"
	VolunteerStatusRejected VolunteerStatus = "rejected"
	VolunteerStatusActive   VolunteerStatus = "active"
)

// DefaultAvailability is stored when the applicant leaves availability blank.
const DefaultAvailability = "flexible"

// Valid reports whether s is one of the known volunteer statuses.
func (s VolunteerStatus) Valid() bool {
	switch s {
	case VolunteerStatusPending, VolunteerStatusApproved, VolunteerStatusRejected, VolunteerStatusActive:
		return true
	}
	return false
}

// Volunteer is a volunteer application submitted through the public form.
type Volunteer struct {
	ID             uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name           string          `json:"name" gorm:"size:255;not null;index"`
	Email          string          `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone          string          `json:"phone" gorm:"size:32;not null"`
	AreaOfInterest string          `json:"areaOfInterest" gorm:"size:100;not null;index"`
	Availability   string          `json:"availability" gorm:"size:100;not null;default:flexible"`
	Experience     string          `json:"experience" gorm:"type:text"`
	Skills         StringList      `json:"skills" gorm:"type:json"`
	Message        string          `json:"message" gorm:"type:text"`
	Status         VolunteerStatus `json:"status" gorm:"size:20;not null;default:pending;index"`
	CreatedAt      time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (v *Volunteer) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
