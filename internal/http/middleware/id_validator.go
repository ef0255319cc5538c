package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/disaster-backend/internal/interface/http/response"
	"github.com/ignatzorin/disaster-backend/internal/pkg/apperror"
)

// ContextPathIDKey хранит проверенный числовой идентификатор из пути.
const ContextPathIDKey = "pathID"

// IDValidator проверяет, что параметр с указанным именем является положительным целым.
// Использование: router.GET("/disasters/:id", IDValidator("id"), handler.Get)
func IDValidator(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param(paramName)
		if idStr == "" {
			response.Abort(c, apperror.New(apperror.ErrCodeBadRequest, "параметр "+paramName+" обязателен"))
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			response.Abort(c, apperror.New(apperror.ErrCodeBadRequest, "параметр "+paramName+" должен быть положительным целым числом"))
			return
		}

		c.Set(ContextPathIDKey, id)
		c.Next()
	}
}
