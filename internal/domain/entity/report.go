package entity

import (
	"strings"
	"time"

	"github.com/ignatzorin/disaster-backend/internal/domain/valueobject"
	"github.com/ignatzorin/disaster-backend/internal/pkg/apperror"
)

// Report - отчёт о бедствии, который проходит путь от Pending до Resolved.
type Report struct {
	ID                 int64
	Type               string
	Severity           int
	IsEmergency        bool
	VolunteersNeeded   int
	SuppliesNeeded     string
	Description        string
	ReportedBy         string
	Status             valueobject.ReportStatus
	CreatedAt          time.Time
	Location           string
	ReportPhoto        string
	ResolutionPhoto    *string
	AssignedVolunteers []string
	Updates            []VolunteerUpdate
}

// VolunteerUpdate - неизменяемая запись волонтёра о ходе работ.
type VolunteerUpdate struct {
	DisasterID  int64
	VolunteerID string
	Priority    string
	Description string
	UpdatePhoto *string
	CreatedAt   time.Time
}

func NewReport(dtype string, severity int, isEmergency bool, volunteersNeeded int, supplies, description, reportedBy, location, photo string, createdAt time.Time) (*Report, error) {
	if volunteersNeeded <= 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "количество волонтёров должно быть положительным")
	}
	if strings.TrimSpace(reportedBy) == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "автор отчёта обязателен")
	}
	if strings.TrimSpace(photo) == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "фото-подтверждение обязательно")
	}

	return &Report{
		Type:               dtype,
		Severity:           severity,
		IsEmergency:        isEmergency,
		VolunteersNeeded:   volunteersNeeded,
		SuppliesNeeded:     supplies,
		Description:        description,
		ReportedBy:         reportedBy,
		Status:             valueobject.ReportStatusPending,
		CreatedAt:          createdAt,
		Location:           location,
		ReportPhoto:        photo,
		AssignedVolunteers: []string{},
		Updates:            []VolunteerUpdate{},
	}, nil
}

func (r *Report) AssignedCount() int {
	return len(r.AssignedVolunteers)
}

func (r *Report) IsFull() bool {
	return r.AssignedCount() >= r.VolunteersNeeded
}

func (r *Report) IsOwnedBy(userID string) bool {
	return r.ReportedBy == userID
}

func (r *Report) PriorityType() valueobject.PriorityType {
	return valueobject.PriorityTypeOf(r.IsEmergency)
}

// RanksBefore задаёт полный порядок отчётов: экстренные раньше, затем
// более высокая тяжесть, затем более ранний отчёт, затем меньший ID.
func (r *Report) RanksBefore(o *Report) bool {
	if r.IsEmergency != o.IsEmergency {
		return r.IsEmergency
	}
	if r.Severity != o.Severity {
		return r.Severity > o.Severity
	}
	if !r.CreatedAt.Equal(o.CreatedAt) {
		return r.CreatedAt.Before(o.CreatedAt)
	}
	return r.ID < o.ID
}

// Attach закрепляет волонтёра за отчётом и переводит его в InProgress.
func (r *Report) Attach(volunteerID string) error {
	if r.IsFull() {
		return apperror.New(apperror.ErrCodePreconditionFailed, "отчёт уже укомплектован")
	}
	if !r.Status.CanTransitionTo(valueobject.ReportStatusInProgress) {
		return apperror.New(apperror.ErrCodePreconditionFailed, "невозможно назначить волонтёра в текущем статусе")
	}
	r.AssignedVolunteers = append(r.AssignedVolunteers, volunteerID)
	r.Status = valueobject.ReportStatusInProgress
	return nil
}

// Resolve закрывает отчёт и возвращает ID волонтёров, которых нужно освободить.
// История обновлений при закрытии не сохраняется.
func (r *Report) Resolve(photo string) ([]string, error) {
	if !r.Status.CanTransitionTo(valueobject.ReportStatusResolved) {
		return nil, apperror.New(apperror.ErrCodePreconditionFailed, "отчёт уже закрыт")
	}
	released := r.AssignedVolunteers

	r.Status = valueobject.ReportStatusResolved
	r.ResolutionPhoto = &photo
	r.AssignedVolunteers = []string{}
	r.Updates = []VolunteerUpdate{}
	return released, nil
}

// CheckDeletableBy проверяет, может ли пользователь удалить отчёт.
func (r *Report) CheckDeletableBy(requesterID string) error {
	if !r.IsOwnedBy(requesterID) {
		return apperror.New(apperror.ErrCodeForbidden, "удалить отчёт может только его автор")
	}
	if r.Status != valueobject.ReportStatusPending {
		return apperror.Newf(apperror.ErrCodePreconditionFailed,
			"удаление невозможно: статус отчёта '%s' (администратор уже занимается им)", r.Status)
	}
	return nil
}

func (r *Report) AppendUpdate(u VolunteerUpdate) {
	r.Updates = append(r.Updates, u)
}

// Clone возвращает глубокую копию для выдачи за пределы диспетчера.
func (r *Report) Clone() *Report {
	cp := *r
	cp.AssignedVolunteers = append([]string{}, r.AssignedVolunteers...)
	cp.Updates = append([]VolunteerUpdate{}, r.Updates...)
	if r.ResolutionPhoto != nil {
		photo := *r.ResolutionPhoto
		cp.ResolutionPhoto = &photo
	}
	return &cp
}
