package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/snaptrack/attendance-api/api/swagger"
	"github.com/snaptrack/attendance-api/internal/handler"
	"github.com/snaptrack/attendance-api/internal/middleware"
	"github.com/snaptrack/attendance-api/internal/models"
	"github.com/snaptrack/attendance-api/internal/repository"
	"github.com/snaptrack/attendance-api/internal/service"
	"github.com/snaptrack/attendance-api/pkg/cache"
	"github.com/snaptrack/attendance-api/pkg/config"
	"github.com/snaptrack/attendance-api/pkg/database"
	"github.com/snaptrack/attendance-api/pkg/logger"
	corsmiddleware "github.com/snaptrack/attendance-api/pkg/middleware/cors"
	reqidmiddleware "github.com/snaptrack/attendance-api/pkg/middleware/requestid"
)

// @title SnapTrack Attendance API
// @version 1.0.0
// @description Authentication, class rosters and attendance tracking for teachers and students
// @BasePath /api
// @schemes http

type userStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type classStore interface {
	FindByID(ctx context.Context, id string) (*models.Class, error)
	ClassesForTeacher(ctx context.Context, teacherID string) ([]models.Class, error)
	ClassesForStudent(ctx context.Context, studentID string) ([]models.Class, error)
}

type attendanceStore interface {
	Upsert(ctx context.Context, session *models.AttendanceSession) (*models.AttendanceSession, bool, error)
	ListByClass(ctx context.Context, classID string) ([]models.AttendanceSession, error)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	secret, insecure, err := cfg.ResolveSigningSecret()
	if err != nil {
		logr.Sugar().Fatalw("jwt secret resolution failed", "error", err)
	}
	if insecure {
		logr.Warn("JWT_SECRET is not set, falling back to the insecure development default")
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()

	var (
		userRepo  userStore
		classRepo classStore
		ledger    attendanceStore
	)

	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("postgres connection failed", "error", err)
		}
		defer db.Close() //nolint:errcheck
		userRepo = repository.NewUserRepository(db)
		classRepo = repository.NewClassRepository(db)
		ledger = repository.NewAttendanceRepository(db)
	default:
		var (
			users    []models.User
			classes  []models.Class
			sessions []models.AttendanceSession
		)
		if cfg.SeedDemo {
			users = repository.DemoUsers()
			classes = repository.DemoClasses()
			sessions = repository.DemoSessions()
		}
		userRepo = repository.NewMemoryUserRepository(users)
		classRepo = repository.NewMemoryClassRepository(classes)
		ledger = repository.NewMemoryAttendanceRepository(sessions)
	}

	var cacheRepo *repository.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("redis connection failed", "error", err)
		}
		cacheRepo = repository.NewCacheRepository(client)
		defer cacheRepo.Close() //nolint:errcheck
	}

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret: secret,
		Expiry: cfg.JWT.Expiration,
		Issuer: "snaptrack-attendance-api",
	})
	rosterSvc := service.NewRosterService(classRepo, logr)
	attendanceSvc := service.NewAttendanceService(ledger, classRepo, cacheRepo, metricsSvc, validate, logr, service.AttendanceConfig{
		CacheEnabled: cfg.Cache.Enabled,
		CacheTTL:     cfg.Cache.TTL,
	})

	authHandler := handler.NewAuthHandler(authSvc)
	classHandler := handler.NewClassHandler(rosterSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Metrics)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		auth := api.Group("/auth")
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.JWT(authSvc), authHandler.Me)

		classes := api.Group("/classes", middleware.JWT(authSvc))
		classes.GET("/teacher", middleware.RequireRoles(models.RoleTeacher), classHandler.TeacherClasses)
		classes.GET("/student", middleware.RequireRoles(models.RoleStudent), classHandler.StudentClasses)

		attendance := api.Group("/attendance", middleware.JWT(authSvc))
		attendance.POST("", middleware.RequireRoles(models.RoleTeacher), attendanceHandler.Mark)
		attendance.GET("/:classId", attendanceHandler.ListByClass)
		attendance.GET("/:classId/export", attendanceHandler.Export)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting",
		zap.String("addr", addr),
		zap.String("env", cfg.Env),
		zap.String("store", cfg.StoreDriver),
	)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
