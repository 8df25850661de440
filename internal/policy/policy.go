// Package policy holds the pure access-control decisions for class and
// attendance resources. Functions here take the caller identity extracted
// from the session token plus the target class and return allow/deny; mapping
// denials onto HTTP statuses is the caller's concern.
package policy

import "github.com/snaptrack/attendance-api/internal/models"

// CanMarkAttendance allows only the owning teacher of the class. Every other
// caller, including teachers who do not own the class, is denied.
func CanMarkAttendance(caller *models.JWTClaims, class *models.Class) bool {
	if caller == nil || class == nil {
		return false
	}
	return caller.Role == models.RoleTeacher && class.TeacherID == caller.UserID
}

// CanViewAttendance allows the owning teacher or an enrolled student.
// Cross-role access is always denied even when the underlying data would
// otherwise match.
func CanViewAttendance(caller *models.JWTClaims, class *models.Class) bool {
	if caller == nil || class == nil {
		return false
	}
	switch caller.Role {
	case models.RoleTeacher:
		return class.TeacherID == caller.UserID
	case models.RoleStudent:
		return class.HasStudent(caller.UserID)
	default:
		return false
	}
}
