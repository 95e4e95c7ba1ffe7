package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/adapters/event"
	httpAdapter "github.com/khoahotran/resume-builder/adapters/http"
	"github.com/khoahotran/resume-builder/adapters/parser"
	"github.com/khoahotran/resume-builder/adapters/persistence"
	"github.com/khoahotran/resume-builder/adapters/render"
	authUC "github.com/khoahotran/resume-builder/internal/application/usecase/auth"
	exportUC "github.com/khoahotran/resume-builder/internal/application/usecase/export"
	resumeUC "github.com/khoahotran/resume-builder/internal/application/usecase/resume"
	selectionUC "github.com/khoahotran/resume-builder/internal/application/usecase/selection"
	"github.com/khoahotran/resume-builder/internal/config"
	"github.com/khoahotran/resume-builder/pkg/auth"
	"github.com/khoahotran/resume-builder/pkg/logger"
	"github.com/khoahotran/resume-builder/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start Resume Builder API Server...")

	if cfg.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "resume-builder-api")
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}
	defer func() {
		if err := tracing.Shutdown(context.Background(), tp); err != nil {
			appLogger.Error("Failed to shutdown tracer", err)
		}
	}()

	// Initialize dependencies
	if cfg.DB.MigrationsPath != "" {
		if err := persistence.RunMigrations(cfg.DB.DSN, cfg.DB.MigrationsPath, appLogger); err != nil {
			appLogger.Fatal("cannot migrate database", err)
		}
	}

	dbPool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	resumeRepo := persistence.NewPostgresResumeRepo(dbPool, appLogger)
	selectionRepo := persistence.NewRedisSelectionRepo(redisClient, cfg.Session.SelectionTTL)
	exportCache := persistence.NewRedisExportCache(redisClient, cfg.Session.ExportTTL)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	htmlRenderer := render.NewHTMLRenderer()
	pdfRenderer := render.NewChromedpRenderer(cfg, appLogger)
	resumeParser := parser.NewDocumentParser(appLogger)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	registerUseCase := authUC.NewRegisterUseCase(userRepo, jwtSvc, appLogger)

	createResumeUseCase := resumeUC.NewCreateResumeUseCase(resumeRepo, kafkaClient, appLogger)
	listResumesUseCase := resumeUC.NewListResumesUseCase(resumeRepo, appLogger)
	getResumeUseCase := resumeUC.NewGetResumeUseCase(resumeRepo, appLogger)
	updateResumeUseCase := resumeUC.NewUpdateResumeUseCase(resumeRepo, kafkaClient, appLogger)
	deleteResumeUseCase := resumeUC.NewDeleteResumeUseCase(resumeRepo, kafkaClient, appLogger)
	applyActionsUseCase := resumeUC.NewApplyActionsUseCase(resumeRepo, kafkaClient, appLogger)
	parseResumeUseCase := resumeUC.NewParseResumeUseCase(resumeParser, cfg.Render.MaxUploadSize, appLogger)

	documentUseCase := exportUC.NewDocumentUseCase(resumeRepo, selectionRepo, appLogger)
	previewUseCase := exportUC.NewPreviewUseCase(resumeRepo, selectionRepo, htmlRenderer, appLogger)
	exportUseCase := exportUC.NewExportUseCase(
		resumeRepo,
		selectionRepo,
		htmlRenderer,
		pdfRenderer,
		exportCache,
		kafkaClient,
		cfg.Render.MaxAttempts,
		appLogger,
	)
	selectionUseCase := selectionUC.NewSelectionUseCase(selectionRepo, appLogger)

	// HTTP Handlers
	router := httpAdapter.NewRouter(httpAdapter.Handlers{
		Auth: httpAdapter.NewAuthHandler(loginUseCase, registerUseCase, appLogger),
		Resume: httpAdapter.NewResumeHandler(
			createResumeUseCase,
			listResumesUseCase,
			getResumeUseCase,
			updateResumeUseCase,
			deleteResumeUseCase,
			applyActionsUseCase,
			parseResumeUseCase,
			cfg.Render.MaxUploadSize,
			appLogger,
		),
		Export:   httpAdapter.NewExportHandler(documentUseCase, previewUseCase, exportUseCase, appLogger),
		Template: httpAdapter.NewTemplateHandler(selectionUseCase),
	}, jwtSvc, appLogger)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
