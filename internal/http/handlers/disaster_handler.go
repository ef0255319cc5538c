package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/disaster-backend/internal/dto"
	"github.com/ignatzorin/disaster-backend/internal/http/handlers/common"
	"github.com/ignatzorin/disaster-backend/internal/interface/http/response"
	"github.com/ignatzorin/disaster-backend/internal/service"
	"github.com/ignatzorin/disaster-backend/internal/usecase/dispatch"
	"github.com/ignatzorin/disaster-backend/internal/validation"
)

// DisasterHandler обслуживает отчёты о бедствиях.
type DisasterHandler struct {
	dispatcher    *dispatch.Dispatcher
	notifications *service.NotificationService
	photos        *validation.PhotoValidator
}

// NewDisasterHandler создаёт хэндлер.
func NewDisasterHandler(dispatcher *dispatch.Dispatcher, notifications *service.NotificationService, photos *validation.PhotoValidator) *DisasterHandler {
	return &DisasterHandler{
		dispatcher:    dispatcher,
		notifications: notifications,
		photos:        photos,
	}
}

// Submit обрабатывает POST /api/disasters.
func (h *DisasterHandler) Submit(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.SubmitDisasterRequest
	if err := common.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	severity := dispatch.DefaultSeverity
	if req.Severity != nil {
		severity = *req.Severity
	}
	needed := dispatch.DefaultVolunteersNeeded
	if req.VolunteersNeeded != nil {
		needed = *req.VolunteersNeeded
	}

	if err := validation.ValidateDisasterReport(req.Type, severity, needed, req.SuppliesNeeded, req.Description, req.Location); err != nil {
		response.Error(c, common.Invalid(err))
		return
	}
	if err := h.photos.Validate("фото отчёта", req.ReportPhoto); err != nil {
		response.Error(c, common.Invalid(err))
		return
	}

	report, err := h.dispatcher.Submit(dispatch.SubmitInput{
		Type:             strings.TrimSpace(req.Type),
		Severity:         severity,
		IsEmergency:      bool(req.IsEmergency),
		VolunteersNeeded: needed,
		SuppliesNeeded:   req.SuppliesNeeded,
		Description:      req.Description,
		ReportedBy:       userID,
		Location:         req.Location,
		ReportPhoto:      req.ReportPhoto,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewDisasterResponse(report))
}

// List обрабатывает GET /api/disasters?reporter_id=.
func (h *DisasterHandler) List(c *gin.Context) {
	reports := h.dispatcher.List(strings.TrimSpace(c.Query("reporter_id")))
	response.Success(c, dto.NewDisasterListResponse(reports))
}

// Get обрабатывает GET /api/disasters/:id.
func (h *DisasterHandler) Get(c *gin.Context) {
	id, err := common.PathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.dispatcher.Get(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewDisasterResponse(report))
}

// Delete обрабатывает DELETE /api/disasters/:id. Удалить можно только свой отчёт в статусе Pending.
func (h *DisasterHandler) Delete(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := common.PathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.dispatcher.Delete(id, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.MessageResponse{Message: "отчёт удалён"})
}

// Assign обрабатывает POST /api/disasters/:id/assign.
func (h *DisasterHandler) Assign(c *gin.Context) {
	id, err := common.PathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.AssignRequest
	if err := common.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		message = dispatch.DefaultDeploymentMessage
	}
	if err := validation.ValidateAdminMessage(message); err != nil {
		response.Error(c, common.Invalid(err))
		return
	}

	if err := h.dispatcher.Assign(id, strings.TrimSpace(req.VolunteerID), message); err != nil {
		response.Error(c, err)
		return
	}
	h.notifications.NotifyAssigned(id, []string{strings.TrimSpace(req.VolunteerID)}, message)

	report, err := h.dispatcher.Get(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewDisasterResponse(report))
}

// AutoAssign обрабатывает POST /api/disasters/:id/auto-assign.
func (h *DisasterHandler) AutoAssign(c *gin.Context) {
	id, err := common.PathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.AutoAssignRequest
	if err := common.BindOptionalJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		message = dispatch.DefaultAutoDeploymentMessage
	}
	if err := validation.ValidateAdminMessage(message); err != nil {
		response.Error(c, common.Invalid(err))
		return
	}

	result, err := h.dispatcher.AutoAssign(id, message)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.notifications.NotifyAssigned(id, result.Assigned, message)

	response.Success(c, dto.AutoAssignResponse{DisasterID: id, Assigned: result.Assigned})
}

// Resolve обрабатывает POST /api/disasters/:id/resolve.
func (h *DisasterHandler) Resolve(c *gin.Context) {
	id, err := common.PathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ResolveRequest
	if err := common.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.photos.Validate("фото решения", req.ResolutionPhoto); err != nil {
		response.Error(c, common.Invalid(err))
		return
	}

	result, err := h.dispatcher.Resolve(id, req.ResolutionPhoto)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.notifications.NotifyResolved(result.Report, result.Released)

	response.Success(c, dto.ResolveResponse{
		Disaster: dto.NewDisasterResponse(result.Report),
		Released: result.Released,
	})
}

// AddUpdate обрабатывает POST /api/disasters/:id/updates.
func (h *DisasterHandler) AddUpdate(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := common.PathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.VolunteerUpdateRequest
	if err := common.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if err := validation.ValidateVolunteerUpdate(req.Priority, req.Description); err != nil {
		response.Error(c, common.Invalid(err))
		return
	}
	if req.UpdatePhoto != nil {
		if err := h.photos.Validate("фото обновления", *req.UpdatePhoto); err != nil {
			response.Error(c, common.Invalid(err))
			return
		}
	}

	update, err := h.dispatcher.AddUpdate(dispatch.UpdateInput{
		DisasterID:  id,
		VolunteerID: userID,
		Priority:    strings.TrimSpace(req.Priority),
		Description: strings.TrimSpace(req.Description),
		UpdatePhoto: req.UpdatePhoto,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	h.notifications.NotifyVolunteerUpdate(update)

	response.Created(c, dto.NewUpdateResponse(update))
}
