package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/snaptrack/attendance-api/internal/models"
	appErrors "github.com/snaptrack/attendance-api/pkg/errors"
)

type rosterRepository interface {
	ClassesForTeacher(ctx context.Context, teacherID string) ([]models.Class, error)
	ClassesForStudent(ctx context.Context, studentID string) ([]models.Class, error)
}

// RosterService exposes the role-scoped class listings. Each endpoint is
// role-exclusive: the route middleware rejects cross-role callers and the
// service re-checks before touching the store.
type RosterService struct {
	repo   rosterRepository
	logger *zap.Logger
}

// NewRosterService constructs a RosterService.
func NewRosterService(repo rosterRepository, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{repo: repo, logger: logger}
}

// ClassesForTeacher returns the classes owned by the calling teacher.
func (s *RosterService) ClassesForTeacher(ctx context.Context, claims *models.JWTClaims) ([]models.Class, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if claims.Role != models.RoleTeacher {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "")
	}

	classes, err := s.repo.ClassesForTeacher(ctx, claims.UserID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	return classes, nil
}

// ClassesForStudent returns the classes the calling student is enrolled in.
func (s *RosterService) ClassesForStudent(ctx context.Context, claims *models.JWTClaims) ([]models.Class, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if claims.Role != models.RoleStudent {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "")
	}

	classes, err := s.repo.ClassesForStudent(ctx, claims.UserID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	return classes, nil
}
