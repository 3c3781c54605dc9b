package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberStatus is the lifecycle state of a membership.
type MemberStatus string

const (
	MemberStatusPending  MemberStatus = "pending"
	MemberStatusApproved MemberStatus = "approved"
	MemberStatusActive   MemberStatus = "active"
	MemberStatusExpired  MemberStatus = "expired"
)

// Valid reports whether s is one of the known member statuses.
func (s MemberStatus) Valid() bool {
	switch s {
	case MemberStatusPending, MemberStatusApproved, MemberStatusActive, MemberStatusExpired:
		return true
	}
	return false
}

// MembershipType selects the membership tier.
type MembershipType string

const (
	MembershipIndividual MembershipType = "individual"
	MembershipFamily     MembershipType = "family"
	MembershipCorporate  MembershipType = "corporate"
)

// Valid reports whether t is a known tier.
func (t MembershipType) Valid() bool {
	switch t {
	case MembershipIndividual, MembershipFamily, MembershipCorporate:
		return true
	}
	return false
}

// Member is a membership application.
type Member struct {
	ID             uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	FullName       string         `json:"fullName" gorm:"size:255;not null;index"`
	Email          string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone          string         `json:"phone" gorm:"size:32;not null"`
	Address        string         `json:"address" gorm:"type:text;not null"`
	Occupation     string         `json:"occupation" gorm:"size:255"`
	MembershipType MembershipType `json:"membershipType" gorm:"size:20;not null;default:individual;index"`
	Interests      StringList     `json:"interests" gorm:"type:json"`
	Message        string         `json:"message" gorm:"type:text"`
	Status         MemberStatus   `json:"status" gorm:"size:20;not null;default:pending;index"`
	CreatedAt      time.Time      `json:"createdAt" gorm:"index"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
