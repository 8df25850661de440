package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snaptrack/attendance-api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestAttendanceUpsertCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	rows := sqlmock.NewRows([]string{"id", "class_id", "date", "records", "inserted"}).
		AddRow("sess-1", "c1", "2025-04-01", []byte(`[{"studentId":"s1","status":"present"}]`), true)
	mock.ExpectQuery("INSERT INTO attendance_sessions").
		WillReturnRows(rows)

	session := &models.AttendanceSession{
		ClassID: "c1",
		Date:    "2025-04-01",
		Records: models.AttendanceRecordList{{StudentID: "s1", Status: models.AttendanceStatusPresent}},
	}
	stored, created, err := repo.Upsert(context.Background(), session)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "sess-1", stored.ID)
	require.Len(t, stored.Records, 1)
	assert.Equal(t, models.AttendanceStatusPresent, stored.Records[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceUpsertUpdate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	rows := sqlmock.NewRows([]string{"id", "class_id", "date", "records", "inserted"}).
		AddRow("sess-1", "c1", "2025-04-01", []byte(`[{"studentId":"s1","status":"absent"}]`), false)
	mock.ExpectQuery("INSERT INTO attendance_sessions").
		WillReturnRows(rows)

	session := &models.AttendanceSession{
		ClassID: "c1",
		Date:    "2025-04-01",
		Records: models.AttendanceRecordList{{StudentID: "s1", Status: models.AttendanceStatusAbsent}},
	}
	stored, created, err := repo.Upsert(context.Background(), session)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, models.AttendanceStatusAbsent, stored.Records[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceListByClass(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	rows := sqlmock.NewRows([]string{"id", "class_id", "date", "records"}).
		AddRow("1", "c1", "2025-04-01", []byte(`[{"studentId":"s1","status":"present"}]`)).
		AddRow("2", "c1", "2025-04-03", []byte(`[{"studentId":"s1","status":"absent"}]`))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, class_id, date, records FROM attendance_sessions WHERE class_id = $1 ORDER BY seq")).
		WithArgs("c1").
		WillReturnRows(rows)

	sessions, err := repo.ListByClass(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "2025-04-01", sessions[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassesForTeacher(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "schedule", "teacher_id", "students"}).
		AddRow("c1", "Mathematics 101", "MWF 9:00 AM - 10:30 AM", "t1", pq.StringArray{"s1"})
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, schedule, teacher_id, students FROM classes WHERE teacher_id = $1 ORDER BY id")).
		WithArgs("t1").
		WillReturnRows(rows)

	classes, err := repo.ClassesForTeacher(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "Mathematics 101", classes[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}).
		AddRow("1", "John Doe", "teacher@example.com", "hash", string(models.RoleTeacher))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, role FROM users WHERE email = $1 LIMIT 1")).
		WithArgs("teacher@example.com").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "teacher@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByEmailNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, role FROM users WHERE email = $1 LIMIT 1")).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}))

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
