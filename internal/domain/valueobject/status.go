package valueobject

type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "Pending"
	ReportStatusInProgress ReportStatus = "InProgress"
	ReportStatusResolved   ReportStatus = "Resolved"
)

// CanTransitionTo описывает допустимые переходы жизненного цикла отчёта.
// Повторное назначение оставляет отчёт в InProgress, из Resolved выхода нет.
func (s ReportStatus) CanTransitionTo(newStatus ReportStatus) bool {
	transitions := map[ReportStatus][]ReportStatus{
		ReportStatusPending:    {ReportStatusInProgress, ReportStatusResolved},
		ReportStatusInProgress: {ReportStatusInProgress, ReportStatusResolved},
		ReportStatusResolved:   {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == newStatus {
			return true
		}
	}
	return false
}

// PriorityType - производная метка приоритета для выдачи клиентам.
type PriorityType string

const (
	PriorityEmergency PriorityType = "Emergency"
	PriorityNormal    PriorityType = "Normal"
)

func PriorityTypeOf(isEmergency bool) PriorityType {
	if isEmergency {
		return PriorityEmergency
	}
	return PriorityNormal
}
