package repository

import "github.com/snaptrack/attendance-api/internal/models"

// demoPasswordHash is the bcrypt hash of "password", carried over from the
// legacy demo fixtures so existing credentials keep working.
const demoPasswordHash = "$2a$10$XH9CdcQZkV/Tpr0SFnNR5eGQPQeARSgF9G4cOsXz4hoZkVnJM6Uaa"

// DemoUsers returns the demo identity fixtures.
func DemoUsers() []models.User {
	return []models.User{
		{ID: "1", Name: "John Doe", Email: "teacher@example.com", PasswordHash: demoPasswordHash, Role: models.RoleTeacher},
		{ID: "2", Name: "Jane Smith", Email: "student@example.com", PasswordHash: demoPasswordHash, Role: models.RoleStudent},
	}
}

// DemoClasses returns the demo roster fixtures.
func DemoClasses() []models.Class {
	return []models.Class{
		{ID: "1", Name: "Mathematics 101", Schedule: "MWF 9:00 AM - 10:30 AM", TeacherID: "1", Students: []string{"2"}},
		{ID: "2", Name: "Physics 201", Schedule: "TTh 11:00 AM - 12:30 PM", TeacherID: "1", Students: []string{"2"}},
	}
}

// DemoSessions returns the demo attendance ledger fixtures.
func DemoSessions() []models.AttendanceSession {
	return []models.AttendanceSession{
		{ID: "1", ClassID: "1", Date: "2025-04-01", Records: models.AttendanceRecordList{{StudentID: "2", Status: models.AttendanceStatusPresent}}},
		{ID: "2", ClassID: "1", Date: "2025-04-03", Records: models.AttendanceRecordList{{StudentID: "2", Status: models.AttendanceStatusAbsent}}},
	}
}
