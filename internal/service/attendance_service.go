package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/snaptrack/attendance-api/internal/models"
	"github.com/snaptrack/attendance-api/internal/policy"
	"github.com/snaptrack/attendance-api/internal/repository"
	appErrors "github.com/snaptrack/attendance-api/pkg/errors"
	"github.com/snaptrack/attendance-api/pkg/export"
)

type attendanceLedger interface {
	Upsert(ctx context.Context, session *models.AttendanceSession) (*models.AttendanceSession, bool, error)
	ListByClass(ctx context.Context, classID string) ([]models.AttendanceSession, error)
}

type classFinder interface {
	FindByID(ctx context.Context, id string) (*models.Class, error)
}

// AttendanceConfig tunes the optional read cache.
type AttendanceConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

// AttendanceService owns the attendance upsert and the policy-gated reads.
type AttendanceService struct {
	ledger    attendanceLedger
	classes   classFinder
	cache     *repository.CacheRepository
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	config    AttendanceConfig

	csv *export.CSVExporter
	pdf *export.PDFExporter
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(ledger attendanceLedger, classes classFinder, cache *repository.CacheRepository, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, config AttendanceConfig) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AttendanceService{
		ledger:    ledger,
		classes:   classes,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		config:    config,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
}

// Mark records attendance for a class on a date. The records sequence
// replaces any previously stored one wholesale; the bool result reports
// whether a new session was created. A missing class and a class owned by
// another teacher produce the same 404 so class IDs cannot be probed.
func (s *AttendanceService) Mark(ctx context.Context, req models.MarkAttendanceRequest, claims *models.JWTClaims) (*models.AttendanceSession, bool, error) {
	if claims == nil {
		return nil, false, appErrors.ErrUnauthorized
	}
	if claims.Role != models.RoleTeacher {
		return nil, false, appErrors.Clone(appErrors.ErrForbidden, "only teachers can mark attendance")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}

	date, err := models.NormalizeDate(req.Date)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}

	class, err := s.classes.FindByID(ctx, req.ClassID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, classNotAuthorized()
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	if !policy.CanMarkAttendance(claims, class) {
		return nil, false, classNotAuthorized()
	}

	session := &models.AttendanceSession{
		ClassID: class.ID,
		Date:    date,
		Records: append(models.AttendanceRecordList(nil), req.Records...),
	}
	stored, created, err := s.ledger.Upsert(ctx, session)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store attendance")
	}

	s.metrics.RecordAttendanceMark(created)

	if s.config.CacheEnabled {
		if err := s.cache.Delete(ctx, attendanceCacheKey(class.ID)); err != nil {
			s.logger.Warn("failed to invalidate attendance cache", zap.String("class_id", class.ID), zap.Error(err))
		}
	}

	return stored, created, nil
}

// ListForClass returns every session for the class, policy-gated. A class
// with no sessions yields an empty list, not an error.
func (s *AttendanceService) ListForClass(ctx context.Context, classID string, claims *models.JWTClaims) ([]models.AttendanceSession, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}

	class, err := s.classes.FindByID(ctx, classID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, viewDenied(claims)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	if !policy.CanViewAttendance(claims, class) {
		return nil, viewDenied(claims)
	}

	key := attendanceCacheKey(classID)
	if s.config.CacheEnabled {
		start := time.Now()
		var cached []models.AttendanceSession
		err := s.cache.Get(ctx, key, &cached)
		s.metrics.RecordCacheOperation(err == nil, time.Since(start))
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("attendance cache read failed", zap.String("class_id", classID), zap.Error(err))
		}
	}

	sessions, err := s.ledger.ListByClass(ctx, classID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}

	if s.config.CacheEnabled {
		if err := s.cache.Set(ctx, key, sessions, s.config.CacheTTL); err != nil {
			s.logger.Warn("attendance cache write failed", zap.String("class_id", classID), zap.Error(err))
		}
	}

	return sessions, nil
}

// Export renders the class attendance as a downloadable CSV or PDF sheet.
// Visibility follows the same policy as ListForClass.
func (s *AttendanceService) Export(ctx context.Context, classID, format string, claims *models.JWTClaims) ([]byte, string, string, error) {
	sessions, err := s.ListForClass(ctx, classID, claims)
	if err != nil {
		return nil, "", "", err
	}

	dataset := export.Dataset{Headers: []string{"Date", "Student", "Status"}}
	for _, session := range sessions {
		for _, record := range session.Records {
			dataset.Rows = append(dataset.Rows, map[string]string{
				"Date":    session.Date,
				"Student": record.StudentID,
				"Status":  string(record.Status),
			})
		}
	}

	switch format {
	case "", "csv":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, "text/csv", fmt.Sprintf("attendance-%s.csv", classID), nil
	case "pdf":
		payload, err := s.pdf.Render(dataset, fmt.Sprintf("Attendance - Class %s", classID))
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, "application/pdf", fmt.Sprintf("attendance-%s.pdf", classID), nil
	default:
		return nil, "", "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func classNotAuthorized() error {
	return appErrors.Clone(appErrors.ErrNotFound, "class not found or not authorized")
}

func viewDenied(claims *models.JWTClaims) error {
	if claims.Role == models.RoleStudent {
		return appErrors.Clone(appErrors.ErrForbidden, "not enrolled in this class")
	}
	return appErrors.Clone(appErrors.ErrForbidden, "not authorized to view this class")
}

func attendanceCacheKey(classID string) string {
	return "attendance:class:" + classID
}
