package models

import "github.com/lib/pq"

// Class represents a class section: exactly one owning teacher and zero or
// more enrolled students. Field names keep the legacy camelCase wire format.
type Class struct {
	ID        string         `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	Schedule  string         `db:"schedule" json:"schedule"`
	TeacherID string         `db:"teacher_id" json:"teacherId"`
	Students  pq.StringArray `db:"students" json:"students"`
}

// HasStudent reports whether the given user is enrolled in the class.
func (c *Class) HasStudent(studentID string) bool {
	for _, id := range c.Students {
		if id == studentID {
			return true
		}
	}
	return false
}
