package dto

import "github.com/ignatzorin/disaster-backend/internal/service"

// LoginRequest represents the request to log in
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SubmitDisasterRequest represents a new disaster report.
// Severity and volunteers_needed fall back to defaults when omitted.
type SubmitDisasterRequest struct {
	Type             string   `json:"type" binding:"required"`
	Severity         *int     `json:"severity"`
	IsEmergency      FlexBool `json:"is_emergency"`
	VolunteersNeeded *int     `json:"volunteers_needed"`
	SuppliesNeeded   string   `json:"supplies_needed"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	ReportPhoto      string   `json:"report_photo"`
}

// AssignRequest represents a manual assignment
type AssignRequest struct {
	VolunteerID string `json:"volunteer_id" binding:"required"`
	Message     string `json:"message"`
}

// AutoAssignRequest represents an automatic assignment
type AutoAssignRequest struct {
	Message string `json:"message"`
}

// ResolveRequest represents closing a report with a proof photo
type ResolveRequest struct {
	ResolutionPhoto string `json:"resolution_photo"`
}

// VolunteerUpdateRequest represents a field update from a volunteer
type VolunteerUpdateRequest struct {
	Priority    string  `json:"priority"`
	Description string  `json:"description"`
	UpdatePhoto *string `json:"update_photo"`
}

// AdminMessageRequest represents an advisory message for a volunteer
type AdminMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// LocationRequest represents a location ping. Values are stored as sent.
type LocationRequest struct {
	Lat       any `json:"lat"`
	Lon       any `json:"lon"`
	Timestamp any `json:"timestamp"`
}

// ToLocation converts the request into the stored form
func (r LocationRequest) ToLocation() service.Location {
	return service.Location{Lat: r.Lat, Lon: r.Lon, Timestamp: r.Timestamp}
}
