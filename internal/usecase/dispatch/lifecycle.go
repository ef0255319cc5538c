package dispatch

import (
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/disaster-backend/internal/domain/entity"
	"github.com/ignatzorin/disaster-backend/internal/logger"
)

// ResolveResult содержит снимок закрытого отчёта и освобождённых волонтёров.
type ResolveResult struct {
	Report   *entity.Report
	Released []string
}

// Resolve закрывает отчёт, освобождает всех назначенных волонтёров и
// сбрасывает историю обновлений. Отсутствующий и уже закрытый отчёт
// дают один и тот же ErrResolveFailed.
func (d *Dispatcher) Resolve(reportID int64, resolutionPhoto string) (*ResolveResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	report, err := d.reports.Get(reportID)
	if err != nil {
		d.refuseResolve(reportID, "отчёт не найден")
		return nil, ErrResolveFailed
	}

	released, err := report.Resolve(resolutionPhoto)
	if err != nil {
		d.refuseResolve(reportID, err.Error())
		return nil, ErrResolveFailed
	}

	for _, volunteerID := range released {
		if err := d.release(volunteerID); err != nil {
			logger.Log.WithFields(logrus.Fields{
				"disaster_id":  reportID,
				"volunteer_id": volunteerID,
			}).WithError(err).Warn("dispatch: волонтёр из отчёта отсутствует в реестре")
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"disaster_id": reportID,
		"released":    len(released),
	}).Info("dispatch: отчёт закрыт")

	return &ResolveResult{Report: report.Clone(), Released: released}, nil
}

// Delete удаляет отчёт. Возможные отказы: не найден, не автор, неверный статус.
func (d *Dispatcher) Delete(reportID int64, requesterID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.reports.Delete(reportID, requesterID); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"disaster_id":  reportID,
		"requested_by": requesterID,
	}).Info("dispatch: отчёт удалён автором")
	return nil
}

type UpdateInput struct {
	DisasterID  int64
	VolunteerID string
	Priority    string
	Description string
	UpdatePhoto *string
}

// AddUpdate добавляет запись волонтёра к отчёту. Закреплён ли волонтёр
// за этим отчётом, не проверяется.
func (d *Dispatcher) AddUpdate(in UpdateInput) (*entity.VolunteerUpdate, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	report, err := d.reports.Get(in.DisasterID)
	if err != nil {
		return nil, err
	}

	update := entity.VolunteerUpdate{
		DisasterID:  report.ID,
		VolunteerID: in.VolunteerID,
		Priority:    in.Priority,
		Description: in.Description,
		UpdatePhoto: in.UpdatePhoto,
		CreatedAt:   d.now(),
	}
	report.AppendUpdate(update)

	logger.Log.WithFields(logrus.Fields{
		"disaster_id":  report.ID,
		"volunteer_id": in.VolunteerID,
		"priority":     in.Priority,
	}).Info("dispatch: получено обновление от волонтёра")

	return &update, nil
}

func (d *Dispatcher) release(volunteerID string) error {
	if err := d.volunteers.SetAvailable(volunteerID, true); err != nil {
		return err
	}
	if err := d.volunteers.SetAssignment(volunteerID, nil); err != nil {
		return err
	}
	return d.volunteers.SetMessage(volunteerID, nil)
}

func (d *Dispatcher) refuseResolve(reportID int64, reason string) {
	logger.Log.WithFields(logrus.Fields{
		"disaster_id": reportID,
		"reason":      reason,
	}).Debug("dispatch: закрытие отклонено")
}
