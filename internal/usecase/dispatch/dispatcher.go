package dispatch

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/disaster-backend/internal/domain/entity"
	"github.com/ignatzorin/disaster-backend/internal/domain/repository"
	"github.com/ignatzorin/disaster-backend/internal/logger"
	"github.com/ignatzorin/disaster-backend/internal/pkg/apperror"
)

const (
	DefaultSeverity              = 5
	DefaultVolunteersNeeded      = 1
	DefaultLocation              = "Unknown Location"
	DefaultDeploymentMessage     = "Deployment initiated. Proceed with caution."
	DefaultAutoDeploymentMessage = "Auto-Deployment initiated. Proceed with caution."
)

var (
	// ErrAssignmentFailed намеренно не различает причину отказа.
	ErrAssignmentFailed = apperror.New(apperror.ErrCodePreconditionFailed, "назначение не выполнено (волонтёр занят, отчёт укомплектован или не найден)")
	ErrAutoAssignFailed = apperror.New(apperror.ErrCodePreconditionFailed, "автоназначение не выполнено (нет свободных волонтёров)")
	ErrResolveFailed    = apperror.New(apperror.ErrCodePreconditionFailed, "закрытие не выполнено (отчёт не найден или уже закрыт)")
)

// Dispatcher владеет реестром волонтёров и хранилищем отчётов.
// Каждая операция выполняется целиком под одним мьютексом.
type Dispatcher struct {
	mu         sync.RWMutex
	volunteers repository.VolunteerRegistry
	reports    repository.ReportStore
	now        func() time.Time
}

func NewDispatcher(volunteers repository.VolunteerRegistry, reports repository.ReportStore) *Dispatcher {
	return &Dispatcher{
		volunteers: volunteers,
		reports:    reports,
		now:        time.Now,
	}
}

// SetClock подменяет источник времени (используется в тестах).
func (d *Dispatcher) SetClock(now func() time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.now = now
}

type SubmitInput struct {
	Type             string
	Severity         int
	IsEmergency      bool
	VolunteersNeeded int
	SuppliesNeeded   string
	Description      string
	ReportedBy       string
	Location         string
	ReportPhoto      string
}

// Submit создаёт отчёт в статусе Pending и возвращает его снимок.
func (d *Dispatcher) Submit(in SubmitInput) (*entity.Report, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	location := in.Location
	if strings.TrimSpace(location) == "" {
		location = DefaultLocation
	}

	report, err := entity.NewReport(in.Type, in.Severity, in.IsEmergency, in.VolunteersNeeded,
		in.SuppliesNeeded, in.Description, in.ReportedBy, location, in.ReportPhoto, d.now())
	if err != nil {
		return nil, err
	}
	d.reports.Create(report)

	logger.Log.WithFields(logrus.Fields{
		"disaster_id":  report.ID,
		"severity":     report.Severity,
		"is_emergency": report.IsEmergency,
		"reported_by":  report.ReportedBy,
	}).Info("dispatch: отчёт о бедствии зарегистрирован")

	return report.Clone(), nil
}

func (d *Dispatcher) Get(reportID int64) (*entity.Report, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	report, err := d.reports.Get(reportID)
	if err != nil {
		return nil, err
	}
	return report.Clone(), nil
}

// List возвращает отчёты по приоритету; пустой reporterID означает все отчёты.
func (d *Dispatcher) List(reporterID string) []*entity.Report {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var reports []*entity.Report
	if reporterID != "" {
		reports = d.reports.ByReporter(reporterID)
	} else {
		reports = d.reports.All()
	}

	snapshots := make([]*entity.Report, 0, len(reports))
	for _, r := range reports {
		snapshots = append(snapshots, r.Clone())
	}
	return Rank(snapshots)
}

// Volunteers возвращает снимок реестра в порядке регистрации.
func (d *Dispatcher) Volunteers() []*entity.Volunteer {
	d.mu.RLock()
	defer d.mu.RUnlock()

	list := d.volunteers.List()
	out := make([]*entity.Volunteer, 0, len(list))
	for _, v := range list {
		out = append(out, v.Clone())
	}
	return out
}

// Assign назначает волонтёра на отчёт. Отказ не раскрывает причину вызывающему.
func (d *Dispatcher) Assign(reportID int64, volunteerID, message string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.assignLocked(reportID, volunteerID, message)
}

// AutoAssignResult перечисляет волонтёров, назначенных за один вызов.
type AutoAssignResult struct {
	Assigned []string
}

// AutoAssign обходит реестр в порядке регистрации и назначает свободных
// волонтёров, пока отчёт не укомплектован. Частичный результат сохраняется.
func (d *Dispatcher) AutoAssign(reportID int64, message string) (*AutoAssignResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	report, err := d.reports.Get(reportID)
	if err != nil {
		d.refuse(reportID, "", "отчёт не найден")
		return nil, ErrAutoAssignFailed
	}

	before := report.AssignedCount()
	result := &AutoAssignResult{Assigned: []string{}}
	for _, v := range d.volunteers.List() {
		if report.IsFull() {
			break
		}
		if !v.IsAvailable {
			continue
		}
		if err := d.assignLocked(report.ID, v.ID, message); err == nil {
			result.Assigned = append(result.Assigned, v.ID)
		}
	}

	if report.AssignedCount() <= before {
		return nil, ErrAutoAssignFailed
	}
	return result, nil
}

// SetAdminMessage передаёт волонтёру служебное сообщение.
func (d *Dispatcher) SetAdminMessage(volunteerID, message string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.volunteers.SetMessage(volunteerID, &message)
}

// Stats - счётчики для health check.
type Stats struct {
	Volunteers          int `json:"volunteers"`
	AvailableVolunteers int `json:"available_volunteers"`
	Reports             int `json:"reports"`
}

func (d *Dispatcher) Stats() Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()

	stats := Stats{Volunteers: d.volunteers.Len(), Reports: d.reports.Len()}
	for _, v := range d.volunteers.List() {
		if v.IsAvailable {
			stats.AvailableVolunteers++
		}
	}
	return stats
}

// assignLocked проверяет все предусловия до первой мутации.
// Вызывается только под d.mu.
func (d *Dispatcher) assignLocked(reportID int64, volunteerID, message string) error {
	report, err := d.reports.Get(reportID)
	if err != nil {
		d.refuse(reportID, volunteerID, "отчёт не найден")
		return ErrAssignmentFailed
	}
	v, err := d.volunteers.Get(volunteerID)
	if err != nil {
		d.refuse(reportID, volunteerID, "волонтёр не найден")
		return ErrAssignmentFailed
	}
	if !v.IsAvailable {
		d.refuse(reportID, volunteerID, "волонтёр занят")
		return ErrAssignmentFailed
	}
	if err := report.Attach(volunteerID); err != nil {
		d.refuse(reportID, volunteerID, err.Error())
		return ErrAssignmentFailed
	}

	assignedTo := report.ID
	msg := message
	if err := d.volunteers.SetAvailable(volunteerID, false); err != nil {
		return err
	}
	if err := d.volunteers.SetAssignment(volunteerID, &assignedTo); err != nil {
		return err
	}
	if err := d.volunteers.SetMessage(volunteerID, &msg); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"disaster_id":    report.ID,
		"volunteer_id":   volunteerID,
		"assigned_count": report.AssignedCount(),
		"needed":         report.VolunteersNeeded,
	}).Info("dispatch: волонтёр назначен")
	return nil
}

func (d *Dispatcher) refuse(reportID int64, volunteerID, reason string) {
	logger.Log.WithFields(logrus.Fields{
		"disaster_id":  reportID,
		"volunteer_id": volunteerID,
		"reason":       reason,
	}).Debug("dispatch: назначение отклонено")
}
