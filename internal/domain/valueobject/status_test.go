package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/disaster-backend/internal/domain/valueobject"
)

func TestReportStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to valueobject.ReportStatus
		want     bool
	}{
		{valueobject.ReportStatusPending, valueobject.ReportStatusInProgress, true},
		{valueobject.ReportStatusPending, valueobject.ReportStatusResolved, true},
		{valueobject.ReportStatusInProgress, valueobject.ReportStatusInProgress, true},
		{valueobject.ReportStatusInProgress, valueobject.ReportStatusResolved, true},
		{valueobject.ReportStatusInProgress, valueobject.ReportStatusPending, false},
		{valueobject.ReportStatusResolved, valueobject.ReportStatusInProgress, false},
		{valueobject.ReportStatusResolved, valueobject.ReportStatusResolved, false},
		{valueobject.ReportStatus("bogus"), valueobject.ReportStatusResolved, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestPriorityTypeOf(t *testing.T) {
	assert.Equal(t, valueobject.PriorityEmergency, valueobject.PriorityTypeOf(true))
	assert.Equal(t, valueobject.PriorityNormal, valueobject.PriorityTypeOf(false))
}
