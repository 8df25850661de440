package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/snaptrack/attendance-api/internal/models"
)

// AttendanceRepository provides PostgreSQL access to the attendance ledger.
// The (class_id, date) uniqueness invariant is enforced by a unique index,
// so concurrent upserts for the same new key cannot produce duplicates.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs a new attendance repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

type attendanceUpsertRow struct {
	models.AttendanceSession
	Inserted bool `db:"inserted"`
}

// Upsert inserts a session for a new (class, date) key or wholesale-replaces
// the records of an existing one. The bool result reports creation.
func (r *AttendanceRepository) Upsert(ctx context.Context, session *models.AttendanceSession) (*models.AttendanceSession, bool, error) {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	const query = `INSERT INTO attendance_sessions (id, class_id, date, records)
VALUES ($1, $2, $3, $4)
ON CONFLICT (class_id, date)
DO UPDATE SET records = EXCLUDED.records
RETURNING id, class_id, date, records, (xmax = 0) AS inserted`
	var row attendanceUpsertRow
	if err := r.db.GetContext(ctx, &row, query, session.ID, session.ClassID, session.Date, session.Records); err != nil {
		return nil, false, fmt.Errorf("upsert attendance session: %w", err)
	}
	stored := row.AttendanceSession
	return &stored, row.Inserted, nil
}

// ListByClass returns every session recorded for the class in insertion order.
func (r *AttendanceRepository) ListByClass(ctx context.Context, classID string) ([]models.AttendanceSession, error) {
	const query = `SELECT id, class_id, date, records FROM attendance_sessions WHERE class_id = $1 ORDER BY seq`
	sessions := []models.AttendanceSession{}
	if err := r.db.SelectContext(ctx, &sessions, query, classID); err != nil {
		return nil, fmt.Errorf("list attendance sessions: %w", err)
	}
	return sessions, nil
}
