package main

import (
	"context"
	"encoding/json"
	"errors"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/adapters/artifact_storage"
	"github.com/khoahotran/resume-builder/adapters/event"
	"github.com/khoahotran/resume-builder/adapters/persistence"
	"github.com/khoahotran/resume-builder/adapters/render"
	archiveUC "github.com/khoahotran/resume-builder/internal/application/usecase/archive"
	backupUC "github.com/khoahotran/resume-builder/internal/application/usecase/backup"
	"github.com/khoahotran/resume-builder/internal/config"
	"github.com/khoahotran/resume-builder/pkg/logger"
	"github.com/khoahotran/resume-builder/pkg/tracing"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting Resume Builder Worker...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "resume-builder-worker")
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}
	defer tracing.Shutdown(context.Background(), tp)

	// Database
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

	// Artifact store
	store, err := artifact_storage.NewArtifactStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize artifact store", err)
	}

	// Worker Use Case
	processEventUC := archiveUC.NewProcessResumeEventUseCase(
		persistence.NewPostgresResumeRepo(dbPool, appLogger),
		render.NewHTMLRenderer(),
		render.NewChromedpRenderer(cfg, appLogger),
		store,
		persistence.NewRedisExportCache(redisClient, cfg.Session.ExportTTL),
		appLogger,
	)

	// Scheduled database backup
	if cfg.Backup.Interval > 0 {
		backupUseCase := backupUC.NewBackupUseCase(cfg.DB.DSN, backupUC.PgDump, store, appLogger)
		go backupUseCase.Run(ctx, cfg.Backup.Interval)
		appLogger.Info("Database backup scheduled", zap.Duration("interval", cfg.Backup.Interval))
	}

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Kafka.Brokers,
		GroupID:     cfg.Kafka.GroupID,
		GroupTopics: []string{event.TopicResumeEvents, event.TopicExportEvents},
		MinBytes:    10e3,
		MaxBytes:    10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening",
		zap.Strings("topics", []string{event.TopicResumeEvents, event.TopicExportEvents}),
		zap.String("group_id", cfg.Kafka.GroupID),
	)

	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				appLogger.Info("Worker stopped")
				return
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		log := appLogger.With(zap.String("topic", msg.Topic), zap.String("key", string(msg.Key)))

		var payload event.ResumeEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Error("Failed to unmarshal event, skipping", err)
			commitMessage(consumer, msg, log)
			continue
		}

		log.Info("Processing event", zap.String("event_type", string(payload.EventType)), zap.String("resume_id", payload.ResumeID.String()))

		// Left uncommitted so the group redelivers it.
		if err := processEventUC.Execute(ctx, payload); err != nil {
			log.Error("Failed to process event", err, zap.String("resume_id", payload.ResumeID.String()))
			continue
		}

		commitMessage(consumer, msg, log)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
