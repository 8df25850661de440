package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snaptrack/attendance-api/internal/models"
)

func TestCanMarkAttendance(t *testing.T) {
	class := &models.Class{ID: "c1", TeacherID: "t1", Students: []string{"s1"}}

	cases := []struct {
		name   string
		caller *models.JWTClaims
		want   bool
	}{
		{"owning teacher", &models.JWTClaims{UserID: "t1", Role: models.RoleTeacher}, true},
		{"other teacher", &models.JWTClaims{UserID: "t2", Role: models.RoleTeacher}, false},
		{"enrolled student", &models.JWTClaims{UserID: "s1", Role: models.RoleStudent}, false},
		{"student claiming teacher id", &models.JWTClaims{UserID: "t1", Role: models.RoleStudent}, false},
		{"unknown role", &models.JWTClaims{UserID: "t1", Role: "admin"}, false},
		{"nil caller", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanMarkAttendance(tc.caller, class))
		})
	}
}

func TestCanMarkAttendanceNilClass(t *testing.T) {
	caller := &models.JWTClaims{UserID: "t1", Role: models.RoleTeacher}
	assert.False(t, CanMarkAttendance(caller, nil))
}

func TestCanViewAttendance(t *testing.T) {
	class := &models.Class{ID: "c1", TeacherID: "t1", Students: []string{"s1", "s2"}}

	cases := []struct {
		name   string
		caller *models.JWTClaims
		want   bool
	}{
		{"owning teacher", &models.JWTClaims{UserID: "t1", Role: models.RoleTeacher}, true},
		{"other teacher", &models.JWTClaims{UserID: "t2", Role: models.RoleTeacher}, false},
		{"enrolled student", &models.JWTClaims{UserID: "s1", Role: models.RoleStudent}, true},
		{"unenrolled student", &models.JWTClaims{UserID: "s3", Role: models.RoleStudent}, false},
		{"teacher id presented as student", &models.JWTClaims{UserID: "t1", Role: models.RoleStudent}, false},
		{"student id presented as teacher", &models.JWTClaims{UserID: "s1", Role: models.RoleTeacher}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanViewAttendance(tc.caller, class))
		})
	}
}
