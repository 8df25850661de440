package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snaptrack/attendance-api/internal/models"
	appErrors "github.com/snaptrack/attendance-api/pkg/errors"
	"github.com/snaptrack/attendance-api/pkg/response"
)

type rosterService interface {
	ClassesForTeacher(ctx context.Context, claims *models.JWTClaims) ([]models.Class, error)
	ClassesForStudent(ctx context.Context, claims *models.JWTClaims) ([]models.Class, error)
}

// ClassHandler serves the role-scoped class listings.
type ClassHandler struct {
	service rosterService
}

// NewClassHandler creates a new handler.
func NewClassHandler(svc rosterService) *ClassHandler {
	return &ClassHandler{service: svc}
}

// TeacherClasses godoc
// @Summary List classes for the calling teacher
// @Tags Classes
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /classes/teacher [get]
func (h *ClassHandler) TeacherClasses(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	classes, err := h.service.ClassesForTeacher(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, classes)
}

// StudentClasses godoc
// @Summary List classes for the calling student
// @Tags Classes
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /classes/student [get]
func (h *ClassHandler) StudentClasses(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	classes, err := h.service.ClassesForStudent(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, classes)
}
