package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/disaster-backend/internal/usecase/dispatch"
)

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	dispatcher *dispatch.Dispatcher
}

// NewHealthHandler создаёт новый health handler.
func NewHealthHandler(dispatcher *dispatch.Dispatcher) *HealthHandler {
	return &HealthHandler{dispatcher: dispatcher}
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Stats     dispatch.Stats `json:"stats"`
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Stats:     h.dispatcher.Stats(),
	})
}
