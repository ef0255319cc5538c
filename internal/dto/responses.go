package dto

import (
	"github.com/ignatzorin/disaster-backend/internal/domain/entity"
	"github.com/ignatzorin/disaster-backend/internal/service"
)

// TimestampLayout is the wire format of report and update timestamps
const TimestampLayout = "2006-01-02 15:04:05"

// DisasterResponse is the wire snapshot of a report
type DisasterResponse struct {
	ID                 int64            `json:"id"`
	Type               string           `json:"type"`
	Severity           int              `json:"severity"`
	PriorityType       string           `json:"priority_type"`
	IsEmergency        bool             `json:"is_emergency"`
	VolunteersNeeded   int              `json:"volunteers_needed"`
	AssignedCount      int              `json:"assignedCount"`
	AssignedVolunteers []string         `json:"assigned_volunteers"`
	SuppliesNeeded     string           `json:"supplies_needed"`
	Description        string           `json:"description"`
	Status             string           `json:"status"`
	ReportedBy         string           `json:"reported_by"`
	Timestamp          string           `json:"timestamp"`
	Location           string           `json:"location"`
	ReportPhoto        string           `json:"report_photo"`
	ResolutionPhoto    *string          `json:"resolution_photo"`
	Updates            []UpdateResponse `json:"updates"`
}

// UpdateResponse is the wire form of a volunteer update
type UpdateResponse struct {
	DisasterID  int64   `json:"disaster_id"`
	VolunteerID string  `json:"volunteer_id"`
	Priority    string  `json:"priority"`
	Description string  `json:"description"`
	UpdatePhoto *string `json:"update_photo"`
	Timestamp   string  `json:"timestamp"`
}

// VolunteerResponse is a registry entry merged with its last known location
type VolunteerResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Group        string           `json:"group"`
	IsAvailable  bool             `json:"is_available"`
	AssignedTo   *int64           `json:"assigned_to"`
	AdminMessage *string          `json:"admin_message"`
	LocationData service.Location `json:"location_data"`
}

// AutoAssignResponse lists volunteers assigned in one call
type AutoAssignResponse struct {
	DisasterID int64    `json:"disaster_id"`
	Assigned   []string `json:"assigned"`
}

// ResolveResponse carries the closed report and the released volunteers
type ResolveResponse struct {
	Disaster *DisasterResponse `json:"disaster"`
	Released []string          `json:"released"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// NewDisasterResponse builds the wire snapshot of a report
func NewDisasterResponse(r *entity.Report) *DisasterResponse {
	assigned := append([]string{}, r.AssignedVolunteers...)
	updates := make([]UpdateResponse, 0, len(r.Updates))
	for i := range r.Updates {
		updates = append(updates, NewUpdateResponse(&r.Updates[i]))
	}

	return &DisasterResponse{
		ID:                 r.ID,
		Type:               r.Type,
		Severity:           r.Severity,
		PriorityType:       string(r.PriorityType()),
		IsEmergency:        r.IsEmergency,
		VolunteersNeeded:   r.VolunteersNeeded,
		AssignedCount:      r.AssignedCount(),
		AssignedVolunteers: assigned,
		SuppliesNeeded:     r.SuppliesNeeded,
		Description:        r.Description,
		Status:             string(r.Status),
		ReportedBy:         r.ReportedBy,
		Timestamp:          r.CreatedAt.Format(TimestampLayout),
		Location:           r.Location,
		ReportPhoto:        r.ReportPhoto,
		ResolutionPhoto:    r.ResolutionPhoto,
		Updates:            updates,
	}
}

// NewDisasterListResponse preserves the ranked order of reports
func NewDisasterListResponse(reports []*entity.Report) []*DisasterResponse {
	out := make([]*DisasterResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, NewDisasterResponse(r))
	}
	return out
}

// NewUpdateResponse builds the wire form of an update
func NewUpdateResponse(u *entity.VolunteerUpdate) UpdateResponse {
	return UpdateResponse{
		DisasterID:  u.DisasterID,
		VolunteerID: u.VolunteerID,
		Priority:    u.Priority,
		Description: u.Description,
		UpdatePhoto: u.UpdatePhoto,
		Timestamp:   u.CreatedAt.Format(TimestampLayout),
	}
}

// NewVolunteerResponse merges a registry entry with its location
func NewVolunteerResponse(v *entity.Volunteer, loc service.Location) *VolunteerResponse {
	return &VolunteerResponse{
		ID:           v.ID,
		Name:         v.Name,
		Group:        v.Group,
		IsAvailable:  v.IsAvailable,
		AssignedTo:   v.AssignedTo,
		AdminMessage: v.AdminMessage,
		LocationData: loc,
	}
}
