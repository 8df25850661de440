package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// AttendanceStatus is the per-student status recorded for a session. The set
// is open: unknown values are stored as-is.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

// AttendanceRecord is one student's status within a session.
type AttendanceRecord struct {
	StudentID string           `json:"studentId" validate:"required"`
	Status    AttendanceStatus `json:"status" validate:"required"`
}

// AttendanceRecordList stores the record sequence as JSONB in Postgres.
type AttendanceRecordList []AttendanceRecord

// Value implements driver.Valuer.
func (l AttendanceRecordList) Value() (driver.Value, error) {
	if l == nil {
		l = AttendanceRecordList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *AttendanceRecordList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("unsupported attendance records type %T", src)
	}
}

// AttendanceSession holds the attendance taken for one class on one date.
// At most one session exists per (classId, date) pair.
type AttendanceSession struct {
	ID      string               `db:"id" json:"id"`
	ClassID string               `db:"class_id" json:"classId"`
	Date    string               `db:"date" json:"date"`
	Records AttendanceRecordList `db:"records" json:"records"`
}

// MarkAttendanceRequest is the payload for recording attendance.
type MarkAttendanceRequest struct {
	ClassID string             `json:"classId" validate:"required"`
	Date    string             `json:"date" validate:"required"`
	Records []AttendanceRecord `json:"records" validate:"required,dive"`
}

// DateLayout is the canonical calendar-date key format for the ledger.
const DateLayout = "2006-01-02"

var acceptedDateLayouts = []string{DateLayout, "2006-1-2"}

// NormalizeDate canonicalises a calendar date string to YYYY-MM-DD so that
// variant spellings of the same day map to a single ledger key.
func NormalizeDate(raw string) (string, error) {
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
}
