package entity

import (
	"strings"

	"github.com/ignatzorin/disaster-backend/internal/pkg/apperror"
)

type Volunteer struct {
	ID           string
	Name         string
	Group        string
	IsAvailable  bool
	AssignedTo   *int64
	AdminMessage *string
}

func NewVolunteer(id, name, group string) (*Volunteer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "ID волонтёра обязателен")
	}
	return &Volunteer{
		ID:          id,
		Name:        name,
		Group:       group,
		IsAvailable: true,
	}, nil
}

func (v *Volunteer) Clone() *Volunteer {
	cp := *v
	if v.AssignedTo != nil {
		id := *v.AssignedTo
		cp.AssignedTo = &id
	}
	if v.AdminMessage != nil {
		msg := *v.AdminMessage
		cp.AdminMessage = &msg
	}
	return &cp
}
