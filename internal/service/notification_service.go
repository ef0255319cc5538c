package service

import (
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/disaster-backend/internal/domain/entity"
	"github.com/ignatzorin/disaster-backend/internal/goroutine"
	"github.com/ignatzorin/disaster-backend/internal/logger"
)

const (
	EventAssignment       = "assignment"
	EventReleased         = "released"
	EventDisasterResolved = "disaster_resolved"
	EventVolunteerUpdate  = "volunteer_update"
	EventAdminMessage     = "admin_message"
)

// Notifier доставляет событие пользователю. Реализуется ws.Hub.
type Notifier interface {
	IsOnline(userID string) bool
	BroadcastToUser(userID string, event string, data any) error
}

// AdminDirectory возвращает учётные записи администраторов.
type AdminDirectory interface {
	UsernamesWithRole(role string) []string
}

// NotificationService рассылает события диспетчеризации в фоне,
// не задерживая HTTP ответ.
type NotificationService struct {
	notifier Notifier
	admins   AdminDirectory
	recovery *goroutine.RecoveryHandler
}

// NewNotificationService создаёт новый сервис уведомлений.
func NewNotificationService(notifier Notifier, admins AdminDirectory, recovery *goroutine.RecoveryHandler) *NotificationService {
	if recovery == nil {
		recovery = goroutine.DefaultRecoveryHandler
	}
	return &NotificationService{notifier: notifier, admins: admins, recovery: recovery}
}

// NotifyAssigned сообщает волонтёрам о назначении на отчёт.
func (s *NotificationService) NotifyAssigned(disasterID int64, volunteerIDs []string, message string) {
	for _, id := range volunteerIDs {
		s.send(id, EventAssignment, map[string]any{
			"disaster_id": disasterID,
			"message":     message,
		})
	}
}

// NotifyResolved сообщает автору о закрытии отчёта и освобождает волонтёров.
func (s *NotificationService) NotifyResolved(report *entity.Report, released []string) {
	s.send(report.ReportedBy, EventDisasterResolved, map[string]any{
		"disaster_id": report.ID,
		"status":      string(report.Status),
	})
	for _, id := range released {
		s.send(id, EventReleased, map[string]any{"disaster_id": report.ID})
	}
}

// NotifyVolunteerUpdate пересылает обновление с места всем администраторам.
func (s *NotificationService) NotifyVolunteerUpdate(update *entity.VolunteerUpdate) {
	for _, admin := range s.admins.UsernamesWithRole(RoleAdmin) {
		s.send(admin, EventVolunteerUpdate, map[string]any{
			"disaster_id":  update.DisasterID,
			"volunteer_id": update.VolunteerID,
			"priority":     update.Priority,
			"description":  update.Description,
		})
	}
}

// NotifyAdminMessage доставляет служебное сообщение волонтёру.
func (s *NotificationService) NotifyAdminMessage(volunteerID, message string) {
	s.send(volunteerID, EventAdminMessage, map[string]any{"message": message})
}

func (s *NotificationService) send(userID, event string, data any) {
	if !s.notifier.IsOnline(userID) {
		logger.Log.WithFields(logrus.Fields{
			"user_id": userID,
			"event":   event,
		}).Debug("notification service: пользователь не в сети")
		return
	}
	s.recovery.SafeGo(func() {
		if err := s.notifier.BroadcastToUser(userID, event, data); err != nil {
			logger.Log.WithFields(logrus.Fields{
				"user_id": userID,
				"event":   event,
			}).WithError(err).Warn("notification service: событие не доставлено")
		}
	})
}
