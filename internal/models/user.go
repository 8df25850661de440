package models

// UserRole represents the available roles for role-scoped endpoints.
type UserRole string

const (
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// User represents an application user in the identity store. Users are
// immutable after seeding; no mutation endpoints exist.
type User struct {
	ID           string   `db:"id" json:"id"`
	Name         string   `db:"name" json:"name"`
	Email        string   `db:"email" json:"email"`
	PasswordHash string   `db:"password_hash" json:"-"`
	Role         UserRole `db:"role" json:"role"`
}

// Info returns the public projection of the user for API responses.
func (u *User) Info() UserInfo {
	return UserInfo{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
