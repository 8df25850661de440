package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/snaptrack/attendance-api/internal/models"
	"github.com/snaptrack/attendance-api/internal/repository"
	appErrors "github.com/snaptrack/attendance-api/pkg/errors"
)

func newAttendanceService(ledger attendanceLedger, classes classFinder) *AttendanceService {
	return NewAttendanceService(ledger, classes, nil, nil, validator.New(), zap.NewNop(), AttendanceConfig{})
}

func demoStores() (*repository.MemoryAttendanceRepository, *repository.MemoryClassRepository) {
	return repository.NewMemoryAttendanceRepository(nil), repository.NewMemoryClassRepository([]models.Class{
		{ID: "c1", Name: "Mathematics 101", TeacherID: "t1", Students: []string{"s1"}},
		{ID: "c2", Name: "Physics 201", TeacherID: "t2", Students: []string{"s2"}},
	})
}

func teacherClaims(id string) *models.JWTClaims {
	return &models.JWTClaims{UserID: id, Role: models.RoleTeacher}
}

func studentClaims(id string) *models.JWTClaims {
	return &models.JWTClaims{UserID: id, Role: models.RoleStudent}
}

func TestMarkCreatesThenUpdates(t *testing.T) {
	ledger, classes := demoStores()
	svc := newAttendanceService(ledger, classes)

	req := models.MarkAttendanceRequest{
		ClassID: "c1",
		Date:    "2025-04-01",
		Records: []models.AttendanceRecord{{StudentID: "s1", Status: models.AttendanceStatusPresent}},
	}
	session, created, err := svc.Mark(context.Background(), req, teacherClaims("t1"))
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, session.Records, 1)

	req.Records = []models.AttendanceRecord{{StudentID: "s1", Status: models.AttendanceStatusAbsent}}
	session, created, err = svc.Mark(context.Background(), req, teacherClaims("t1"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, models.AttendanceStatusAbsent, session.Records[0].Status)

	sessions, err := svc.ListForClass(context.Background(), "c1", studentClaims("s1"))
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, models.AttendanceStatusAbsent, sessions[0].Records[0].Status)
}

func TestMarkNormalizesDateKey(t *testing.T) {
	ledger, classes := demoStores()
	svc := newAttendanceService(ledger, classes)

	req := models.MarkAttendanceRequest{
		ClassID: "c1",
		Date:    "2025-4-1",
		Records: []models.AttendanceRecord{{StudentID: "s1", Status: models.AttendanceStatusPresent}},
	}
	session, created, err := svc.Mark(context.Background(), req, teacherClaims("t1"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "2025-04-01", session.Date)

	// The variant spelling targets the same ledger key.
	req.Date = "2025-04-01"
	_, created, err = svc.Mark(context.Background(), req, teacherClaims("t1"))
	require.NoError(t, err)
	assert.False(t, created)
}

func TestMarkInvalidDate(t *testing.T) {
	ledger, classes := demoStores()
	svc := newAttendanceService(ledger, classes)

	req := models.MarkAttendanceRequest{
		ClassID: "c1",
		Date:    "April 1st",
		Records: []models.AttendanceRecord{{StudentID: "s1", Status: models.AttendanceStatusPresent}},
	}
	_, _, err := svc.Mark(context.Background(), req, teacherClaims("t1"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}

func TestMarkStudentForbidden(t *testing.T) {
	ledger, classes := demoStores()
	svc := newAttendanceService(ledger, classes)

	req := models.MarkAttendanceRequest{
		ClassID: "c1",
		Date:    "2025-04-01",
		Records: []models.AttendanceRecord{{StudentID: "s1", Status: models.AttendanceStatusPresent}},
	}
	_, _, err := svc.Mark(context.Background(), req, studentClaims("s1"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Status, appErrors.FromError(err).Status)
}

func TestMarkMissingAndForeignClassCollapse(t *testing.T) {
	ledger, classes := demoStores()
	svc := newAttendanceService(ledger, classes)

	req := models.MarkAttendanceRequest{
		ClassID: "missing",
		Date:    "2025-04-01",
		Records: []models.AttendanceRecord{{StudentID: "s1", Status: models.AttendanceStatusPresent}},
	}
	_, _, errMissing := svc.Mark(context.Background(), req, teacherClaims("t1"))

	req.ClassID = "c2" // owned by t2
	_, _, errForeign := svc.Mark(context.Background(), req, teacherClaims("t1"))

	for _, err := range []error{errMissing, errForeign} {
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
	}
	assert.Equal(t, appErrors.FromError(errMissing).Message, appErrors.FromError(errForeign).Message)
}

func TestListForClassVisibility(t *testing.T) {
	ledger, classes := demoStores()
	svc := newAttendanceService(ledger, classes)

	// Existing class with no sessions yields an empty list.
	sessions, err := svc.ListForClass(context.Background(), "c1", teacherClaims("t1"))
	require.NoError(t, err)
	assert.Empty(t, sessions)

	// Another teacher is denied.
	_, err = svc.ListForClass(context.Background(), "c1", teacherClaims("t2"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Status, appErrors.FromError(err).Status)

	// An unenrolled student is denied.
	_, err = svc.ListForClass(context.Background(), "c1", studentClaims("s2"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Status, appErrors.FromError(err).Status)

	// A missing class is indistinguishable from a denied one.
	_, err = svc.ListForClass(context.Background(), "missing", studentClaims("s1"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Status, appErrors.FromError(err).Status)
}

func TestExportCSV(t *testing.T) {
	ledger, classes := demoStores()
	svc := newAttendanceService(ledger, classes)

	req := models.MarkAttendanceRequest{
		ClassID: "c1",
		Date:    "2025-04-01",
		Records: []models.AttendanceRecord{{StudentID: "s1", Status: models.AttendanceStatusPresent}},
	}
	_, _, err := svc.Mark(context.Background(), req, teacherClaims("t1"))
	require.NoError(t, err)

	payload, contentType, filename, err := svc.Export(context.Background(), "c1", "csv", teacherClaims("t1"))
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Equal(t, "attendance-c1.csv", filename)
	assert.Contains(t, string(payload), "2025-04-01")
	assert.Contains(t, string(payload), "present")
}

func TestExportUnsupportedFormat(t *testing.T) {
	ledger, classes := demoStores()
	svc := newAttendanceService(ledger, classes)

	_, _, _, err := svc.Export(context.Background(), "c1", "xlsx", teacherClaims("t1"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}
