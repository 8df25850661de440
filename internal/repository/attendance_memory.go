package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/snaptrack/attendance-api/internal/models"
)

// MemoryAttendanceRepository is the in-process attendance ledger. A single
// mutex serializes all mutations, so two concurrent creates for the same new
// (class, date) key cannot both observe "not found" and append a duplicate.
type MemoryAttendanceRepository struct {
	mu       sync.Mutex
	sessions []models.AttendanceSession
}

// NewMemoryAttendanceRepository builds the ledger from seed data.
func NewMemoryAttendanceRepository(sessions []models.AttendanceSession) *MemoryAttendanceRepository {
	return &MemoryAttendanceRepository{sessions: cloneSessions(sessions)}
}

// Upsert inserts a session for a new (class, date) key or wholesale-replaces
// the records of an existing one. The bool result reports creation.
func (r *MemoryAttendanceRepository) Upsert(_ context.Context, session *models.AttendanceSession) (*models.AttendanceSession, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.sessions {
		if r.sessions[i].ClassID == session.ClassID && r.sessions[i].Date == session.Date {
			r.sessions[i].Records = append(models.AttendanceRecordList(nil), session.Records...)
			stored := cloneSession(r.sessions[i])
			return &stored, false, nil
		}
	}

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	r.sessions = append(r.sessions, cloneSession(*session))
	stored := cloneSession(*session)
	return &stored, true, nil
}

// ListByClass returns every session recorded for the class in insertion order.
func (r *MemoryAttendanceRepository) ListByClass(_ context.Context, classID string) ([]models.AttendanceSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []models.AttendanceSession{}
	for i := range r.sessions {
		if r.sessions[i].ClassID == classID {
			result = append(result, cloneSession(r.sessions[i]))
		}
	}
	return result, nil
}

func cloneSession(s models.AttendanceSession) models.AttendanceSession {
	s.Records = append(models.AttendanceRecordList(nil), s.Records...)
	return s
}

func cloneSessions(sessions []models.AttendanceSession) []models.AttendanceSession {
	result := make([]models.AttendanceSession, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, cloneSession(s))
	}
	return result
}
