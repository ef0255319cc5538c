package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ignatzorin/disaster-backend/internal/domain/entity"
	"github.com/ignatzorin/disaster-backend/internal/goroutine"
	"github.com/ignatzorin/disaster-backend/internal/logger"
)

type mockNotifier struct {
	mock.Mock
	offline map[string]bool
}

func (m *mockNotifier) IsOnline(userID string) bool {
	return !m.offline[userID]
}

func (m *mockNotifier) BroadcastToUser(userID string, event string, data any) error {
	args := m.Called(userID, event, data)
	return args.Error(0)
}

type staticAdmins []string

func (a staticAdmins) UsernamesWithRole(string) []string { return a }

func TestNotificationService_Assigned(t *testing.T) {
	n := &mockNotifier{}
	n.On("BroadcastToUser", "v101", EventAssignment, mock.Anything).Return(nil).Once()
	n.On("BroadcastToUser", "v102", EventAssignment, mock.Anything).Return(nil).Once()

	rh := goroutine.NewRecoveryHandler(logger.ErrorfLogger{})
	svc := NewNotificationService(n, staticAdmins{"admin"}, rh)

	svc.NotifyAssigned(7, []string{"v101", "v102"}, "go")
	rh.Wait()

	n.AssertExpectations(t)
}

func TestNotificationService_ResolvedNotifiesReporterAndReleased(t *testing.T) {
	n := &mockNotifier{}
	n.On("BroadcastToUser", "user1", EventDisasterResolved, mock.Anything).Return(nil).Once()
	n.On("BroadcastToUser", "v101", EventReleased, mock.Anything).Return(errors.New("offline")).Once()

	rh := goroutine.NewRecoveryHandler(logger.ErrorfLogger{})
	svc := NewNotificationService(n, staticAdmins{}, rh)

	svc.NotifyResolved(&entity.Report{ID: 3, ReportedBy: "user1", Status: "Resolved"}, []string{"v101"})
	rh.Wait()

	n.AssertExpectations(t)
}

func TestNotificationService_VolunteerUpdateGoesToAdmins(t *testing.T) {
	n := &mockNotifier{}
	n.On("BroadcastToUser", mock.Anything, EventVolunteerUpdate, mock.Anything).Return(nil)
	n.On("BroadcastToUser", "v101", EventAdminMessage, mock.Anything).Return(nil).Once()

	rh := goroutine.NewRecoveryHandler(logger.ErrorfLogger{})
	svc := NewNotificationService(n, staticAdmins{"admin", "ops"}, rh)

	svc.NotifyVolunteerUpdate(&entity.VolunteerUpdate{DisasterID: 1, VolunteerID: "v101", Priority: "High", Description: "x"})
	svc.NotifyAdminMessage("v101", "hold")
	rh.Wait()

	n.AssertNumberOfCalls(t, "BroadcastToUser", 3)
	assert.True(t, n.AssertCalled(t, "BroadcastToUser", "ops", EventVolunteerUpdate, mock.Anything))
}

func TestNotificationService_SkipsOfflineUsers(t *testing.T) {
	n := &mockNotifier{offline: map[string]bool{"v102": true}}
	n.On("BroadcastToUser", "v101", EventAssignment, mock.Anything).Return(nil).Once()

	rh := goroutine.NewRecoveryHandler(logger.ErrorfLogger{})
	svc := NewNotificationService(n, staticAdmins{}, rh)

	svc.NotifyAssigned(7, []string{"v101", "v102"}, "go")
	rh.Wait()

	n.AssertExpectations(t)
	n.AssertNotCalled(t, "BroadcastToUser", "v102", EventAssignment, mock.Anything)
}
