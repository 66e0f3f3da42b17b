package app

import (
	"context"
	"errors"
	"log"
	"mathquiz_backend/internal/config"
	"mathquiz_backend/internal/controller"
	"mathquiz_backend/internal/repository"
	"mathquiz_backend/internal/service"
	"mathquiz_backend/pkg/configwatcher"
	"mathquiz_backend/pkg/database"
	"mathquiz_backend/pkg/logger"
	"mathquiz_backend/pkg/monitoring"
	"mathquiz_backend/pkg/security"
	"mathquiz_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	ConfigPath      string
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	attempt    *repository.AttemptRepository
	progress   *repository.ProgressRepository
	analytics  *repository.AnalyticsRepository
	bookmark   *repository.BookmarkRepository
	discussion *repository.DiscussionRepository
	badge      *repository.BadgeRepository
	doubt      *repository.DoubtRepository
}

type services struct {
	bank      *service.QuestionBank
	sessions  service.SessionStore
	storage   *service.StorageService
	auth      *service.AuthService
	badge     *service.BadgeService
	quiz      *service.QuizService
	progress  *service.ProgressService
	analytics *service.AnalyticsService
	report    *service.ReportService
	social    *service.SocialService
	doubt     *service.DoubtService
	explain   *service.ExplainService
	materials *service.MaterialService
	videos    *service.VideoService
}

type controllers struct {
	auth      *controller.AuthController
	quiz      *controller.QuizController
	progress  *controller.ProgressController
	analytics *controller.AnalyticsController
	report    *controller.ReportController
	social    *controller.SocialController
	badge     *controller.BadgeController
	doubt     *controller.DoubtController
	content   *controller.ContentController
	health    *controller.HealthController
}

// RegisterConfigCallback adds a hook run after every config reload.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	if err := cfg.Validate(); err != nil {
		logger.Log.Error("Ignoring invalid config reload", zap.Error(err))
		return
	}
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, cfg *config.Config) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		attempt:    repository.NewAttemptRepository(db, cfg.Quiz.EnforceAttemptUniqueness),
		progress:   repository.NewProgressRepository(db),
		analytics:  repository.NewAnalyticsRepository(db),
		bookmark:   repository.NewBookmarkRepository(db),
		discussion: repository.NewDiscussionRepository(db),
		badge:      repository.NewBadgeRepository(db),
		doubt:      repository.NewDoubtRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.bank = service.NewQuestionBank(cfg.Quiz.DatasetPath)
	s.sessions = service.NewSessionStore(rdb, cfg.Quiz.SessionTTL)
	s.storage = service.NewStorageService(&cfg.Storage)
	s.auth = service.NewAuthService(repos.user, cfg.JWT, cfg.Auth)
	s.badge = service.NewBadgeService(repos.badge)
	s.quiz = service.NewQuizService(s.bank, s.sessions, repos.attempt, repos.progress, s.badge, cfg.Quiz)
	s.progress = service.NewProgressService(repos.progress, s.sessions, s.bank)
	s.analytics = service.NewAnalyticsService(repos.attempt, s.bank, repos.user, repos.analytics)
	s.report = service.NewReportService(repos.attempt, s.bank, repos.user)
	s.social = service.NewSocialService(repos.bookmark, repos.discussion, repos.user, s.bank)
	s.doubt = service.NewDoubtService(repos.doubt, s.storage)
	s.materials = service.NewMaterialService(cfg.Content.MaterialsDir)
	s.videos = service.NewVideoService(cfg.Content.VideosFile)

	explain, err := service.NewExplainService(context.Background(), cfg.AI)
	if err != nil {
		logger.Log.Warn("Explanations disabled", zap.Error(err))
		explain = &service.ExplainService{}
	}
	s.explain = explain

	a.RegisterConfigCallback(func(c *config.Config) {
		s.quiz.SetLimits(c.Quiz.DefaultQuestions, c.Quiz.MaxQuestions)
		s.bank.SetPath(c.Quiz.DatasetPath)
		s.auth.SetAuthConfig(c.Auth)
		s.materials.SetDir(c.Content.MaterialsDir)
		s.videos.SetPath(c.Content.VideosFile)
	})

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		quiz:      controller.NewQuizController(s.quiz, s.progress, s.explain, s.bank),
		progress:  controller.NewProgressController(s.progress, s.quiz),
		analytics: controller.NewAnalyticsController(s.analytics),
		report:    controller.NewReportController(s.report),
		social:    controller.NewSocialController(s.social),
		badge:     controller.NewBadgeController(s.badge),
		doubt:     controller.NewDoubtController(s.doubt),
		content:   controller.NewContentController(s.materials, s.videos),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp wires the application. With cfg.MigrateOnly it returns right after
// migrating and the returned App must not be run.
func NewApp(cfg *config.Config, configPath string) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if err := cfg.Validate(); err != nil {
		logger.Log.Fatal("Invalid configuration", zap.Error(err))
	}

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.Server.Mode != gin.ReleaseMode || cfg.ForceMigrate {
		if err := database.Migrate(db, cfg.Quiz.EnforceAttemptUniqueness); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	app := &App{
		Config:     cfg,
		ConfigPath: configPath,
		DB:         db,
	}
	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	if rdb == nil {
		logger.Log.Warn("Redis disabled, quiz sessions are kept in memory")
	}
	app.Redis = rdb

	repos := app.initRepositories(db, cfg)
	app.services = app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(app.services, db, rdb)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.MaxMultipartMemory = 16 << 20
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("mathquiz", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "" || cfg.Storage.Type == "local" {
		if err := os.MkdirAll(cfg.Storage.LocalPath, os.ModePerm); err != nil {
			logger.Log.Warn("Cannot create upload directory", zap.Error(err))
		}
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go func() {
		path := filepath.Join(a.ConfigPath, "config.yaml")
		if err := configwatcher.Watch(watchCtx, path, a.applyConfig); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}()

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stopWatch()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.services != nil {
		if err := a.services.explain.Close(); err != nil {
			logger.Log.Warn("Failed to close explanation client", zap.Error(err))
		}
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
