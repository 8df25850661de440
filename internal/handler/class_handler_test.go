package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snaptrack/attendance-api/internal/middleware"
	"github.com/snaptrack/attendance-api/internal/models"
	appErrors "github.com/snaptrack/attendance-api/pkg/errors"
)

type rosterServiceMock struct {
	teacherResp   []models.Class
	teacherErr    error
	studentResp   []models.Class
	studentErr    error
	teacherCalled bool
	studentCalled bool
}

func (m *rosterServiceMock) ClassesForTeacher(ctx context.Context, claims *models.JWTClaims) ([]models.Class, error) {
	m.teacherCalled = true
	return m.teacherResp, m.teacherErr
}

func (m *rosterServiceMock) ClassesForStudent(ctx context.Context, claims *models.JWTClaims) ([]models.Class, error) {
	m.studentCalled = true
	return m.studentResp, m.studentErr
}

func TestClassHandlerTeacherClasses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &rosterServiceMock{
		teacherResp: []models.Class{{ID: "1", Name: "Mathematics 101", TeacherID: "1", Students: pq.StringArray{"2"}}},
	}
	handler := NewClassHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/classes/teacher", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "1", Role: models.RoleTeacher})

	handler.TeacherClasses(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.teacherCalled)
	assert.Contains(t, w.Body.String(), "Mathematics 101")
}

func TestClassHandlerTeacherClassesMissingClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &rosterServiceMock{}
	handler := NewClassHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/classes/teacher", nil)
	c.Request = req

	handler.TeacherClasses(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, mockSvc.teacherCalled)
}

func TestClassHandlerStudentClasses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &rosterServiceMock{
		studentResp: []models.Class{{ID: "2", Name: "Physics 201", TeacherID: "1", Students: pq.StringArray{"2"}}},
	}
	handler := NewClassHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/classes/student", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "2", Role: models.RoleStudent})

	handler.StudentClasses(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.studentCalled)
	assert.Contains(t, w.Body.String(), "Physics 201")
}

func TestClassHandlerStudentClassesServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &rosterServiceMock{studentErr: appErrors.ErrForbidden}
	handler := NewClassHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/classes/student", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "1", Role: models.RoleTeacher})

	handler.StudentClasses(c)
	require.Equal(t, http.StatusForbidden, w.Code)
}
