package repository

import "github.com/ignatzorin/disaster-backend/internal/domain/entity"

// VolunteerRegistry хранит фиксированный состав волонтёров в порядке регистрации.
type VolunteerRegistry interface {
	Add(v *entity.Volunteer) error
	Get(id string) (*entity.Volunteer, error)
	List() []*entity.Volunteer
	SetAvailable(id string, available bool) error
	SetAssignment(id string, reportID *int64) error
	SetMessage(id string, message *string) error
	Len() int
}

// ReportStore хранит отчёты по ID, порядок выдачи не гарантируется.
type ReportStore interface {
	Create(r *entity.Report) int64
	Get(id int64) (*entity.Report, error)
	Delete(id int64, requesterID string) error
	All() []*entity.Report
	ByReporter(reporterID string) []*entity.Report
	Len() int
}
