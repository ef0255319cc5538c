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

// VolunteerHandler обслуживает реестр волонтёров и их позиции.
type VolunteerHandler struct {
	dispatcher    *dispatch.Dispatcher
	locations     *service.LocationService
	notifications *service.NotificationService
}

func NewVolunteerHandler(dispatcher *dispatch.Dispatcher, locations *service.LocationService, notifications *service.NotificationService) *VolunteerHandler {
	return &VolunteerHandler{
		dispatcher:    dispatcher,
		locations:     locations,
		notifications: notifications,
	}
}

// List обрабатывает GET /api/volunteers. Порядок совпадает с порядком регистрации.
func (h *VolunteerHandler) List(c *gin.Context) {
	volunteers := h.dispatcher.Volunteers()
	out := make([]*dto.VolunteerResponse, 0, len(volunteers))
	for _, v := range volunteers {
		out = append(out, dto.NewVolunteerResponse(v, h.locations.Get(v.ID)))
	}
	response.Success(c, out)
}

// SetMessage обрабатывает PUT /api/volunteers/:id/message.
func (h *VolunteerHandler) SetMessage(c *gin.Context) {
	volunteerID := strings.TrimSpace(c.Param("id"))

	var req dto.AdminMessageRequest
	if err := common.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if err := validation.ValidateAdminMessage(req.Message); err != nil {
		response.Error(c, common.Invalid(err))
		return
	}

	if err := h.dispatcher.SetAdminMessage(volunteerID, req.Message); err != nil {
		response.Error(c, err)
		return
	}
	h.notifications.NotifyAdminMessage(volunteerID, req.Message)

	response.Success(c, dto.MessageResponse{Message: "сообщение отправлено"})
}

// UpdateMyLocation обрабатывает POST /api/volunteers/me/location.
func (h *VolunteerHandler) UpdateMyLocation(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.LocationRequest
	if err := common.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	loc := req.ToLocation()
	h.locations.Update(userID, loc)
	response.Success(c, loc)
}
