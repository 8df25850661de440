package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snaptrack/attendance-api/internal/models"
	appErrors "github.com/snaptrack/attendance-api/pkg/errors"
	"github.com/snaptrack/attendance-api/pkg/response"
)

type attendanceService interface {
	Mark(ctx context.Context, req models.MarkAttendanceRequest, claims *models.JWTClaims) (*models.AttendanceSession, bool, error)
	ListForClass(ctx context.Context, classID string, claims *models.JWTClaims) ([]models.AttendanceSession, error)
	Export(ctx context.Context, classID, format string, claims *models.JWTClaims) ([]byte, string, string, error)
}

// AttendanceHandler serves the attendance ledger endpoints.
type AttendanceHandler struct {
	service attendanceService
}

// NewAttendanceHandler creates a new handler.
func NewAttendanceHandler(svc attendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: svc}
}

// Mark godoc
// @Summary Record attendance for a class and date
// @Description Creates the session on first submission, wholesale-replaces its records after that
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body models.MarkAttendanceRequest true "Attendance payload"
// @Success 200 {object} response.Envelope "records replaced"
// @Success 201 {object} response.Envelope "session created"
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /attendance [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance payload"))
		return
	}

	session, created, err := h.service.Mark(c.Request.Context(), req, claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	if created {
		response.Created(c, session)
		return
	}
	response.JSON(c, http.StatusOK, session)
}

// ListByClass godoc
// @Summary List attendance sessions for a class
// @Tags Attendance
// @Produce json
// @Param classId path string true "Class ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /attendance/{classId} [get]
func (h *AttendanceHandler) ListByClass(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	sessions, err := h.service.ListForClass(c.Request.Context(), c.Param("classId"), claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, sessions)
}

// Export godoc
// @Summary Download the class attendance sheet
// @Tags Attendance
// @Produce text/csv
// @Produce application/pdf
// @Param classId path string true "Class ID"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /attendance/{classId}/export [get]
func (h *AttendanceHandler) Export(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	payload, contentType, filename, err := h.service.Export(c.Request.Context(), c.Param("classId"), c.Query("format"), claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}
