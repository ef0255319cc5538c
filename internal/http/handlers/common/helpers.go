package common

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/disaster-backend/internal/http/middleware"
	"github.com/ignatzorin/disaster-backend/internal/pkg/apperror"
)

var (
	// ErrUserNotFound is returned when user is not found in context
	ErrUserNotFound = apperror.New(apperror.ErrCodeUnauthorized, "пользователь не найден в контексте")

	// ErrInvalidID is returned when the path id was not validated
	ErrInvalidID = apperror.New(apperror.ErrCodeBadRequest, "неверный идентификатор")
)

// CurrentUserID extracts user ID from Gin context
func CurrentUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.ContextUserIDKey)
	if userID == "" {
		return "", ErrUserNotFound
	}
	return userID, nil
}

// PathID returns the id validated by middleware.IDValidator
func PathID(c *gin.Context) (int64, error) {
	raw, ok := c.Get(middleware.ContextPathIDKey)
	if !ok {
		return 0, ErrInvalidID
	}
	id, ok := raw.(int64)
	if !ok {
		return 0, ErrInvalidID
	}
	return id, nil
}

// BindJSON binds the request body and returns a BAD_REQUEST on failure
func BindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeBadRequest, "ошибка валидации запроса: "+err.Error())
	}
	return nil
}

// BindOptionalJSON is BindJSON for endpoints whose body may be omitted
func BindOptionalJSON(c *gin.Context, req interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	return BindJSON(c, req)
}

// Invalid converts a validation failure into a VALIDATION_ERROR
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
}
