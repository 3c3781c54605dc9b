package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"redcross/internal/model"
)

const recordCacheTTL = 5 * time.Minute

// VolunteerInput is a validated volunteer form submission.
type VolunteerInput struct {
	Name           string
	Email          string
	Phone          string
	AreaOfInterest string
	Availability   string
	Experience     string
	Skills         []string
	Message        string
}

func (in VolunteerInput) toModel() *model.Volunteer {
	availability := strings.TrimSpace(in.Availability)
	if availability == "" {
		availability = model.DefaultAvailability
	}
	return &model.Volunteer{
		Name:           strings.TrimSpace(in.Name),
		Email:          normalizeEmail(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		AreaOfInterest: strings.TrimSpace(in.AreaOfInterest),
		Availability:   availability,
		Experience:     strings.TrimSpace(in.Experience),
		Skills:         trimList(in.Skills),
		Message:        strings.TrimSpace(in.Message),
		Status:         model.VolunteerStatusPending,
	}
}

// MemberInput is a validated membership form submission.
type MemberInput struct {
	FullName       string
	Email          string
	Phone          string
	Address        string
	Occupation     string
	MembershipType string
	Interests      []string
	Message        string
}

func (in MemberInput) toModel() *model.Member {
	membershipType := model.MembershipType(strings.ToLower(strings.TrimSpace(in.MembershipType)))
	if membershipType == "" {
		membershipType = model.MembershipIndividual
	}
	return &model.Member{
		FullName:       strings.TrimSpace(in.FullName),
		Email:          normalizeEmail(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		Address:        strings.TrimSpace(in.Address),
		Occupation:     strings.TrimSpace(in.Occupation),
		MembershipType: membershipType,
		Interests:      trimList(in.Interests),
		Message:        strings.TrimSpace(in.Message),
		Status:         model.MemberStatusPending,
	}
}

// ContactInput is a validated contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func (in ContactInput) toModel() *model.Contact {
	return &model.Contact{
		Name:    strings.TrimSpace(in.Name),
		Email:   normalizeEmail(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
		Status:  model.ContactStatusNew,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimList(items []string) model.StringList {
	out := make(model.StringList, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
