package backup

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/internal/application/service"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

const backupFolder = "backups/database"

// Dumper produces a database dump.
type Dumper func(ctx context.Context, dsn string) ([]byte, error)

// PgDump runs pg_dump in custom format.
func PgDump(ctx context.Context, dsn string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "pg_dump", "--dbname="+dsn, "--format=c")

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pg_dump failed: %w: %s", err, stderr.String())
	}
	return out.Bytes(), nil
}

type BackupUseCase struct {
	dsn    string
	dump   Dumper
	store  service.ArtifactStore
	now    func() time.Time
	logger logger.Logger
}

func NewBackupUseCase(dsn string, dump Dumper, store service.ArtifactStore, log logger.Logger) *BackupUseCase {
	if dump == nil {
		dump = PgDump
	}
	return &BackupUseCase{
		dsn:    dsn,
		dump:   dump,
		store:  store,
		now:    time.Now,
		logger: log,
	}
}

// Execute dumps the database (users and resumes) and stores it next to the
// exported artifacts. It returns the stored key.
func (uc *BackupUseCase) Execute(ctx context.Context) (string, error) {
	uc.logger.Info("Starting database backup...")

	dump, err := uc.dump(ctx, uc.dsn)
	if err != nil {
		uc.logger.Error("Database dump failed", err)
		return "", err
	}

	timestamp := uc.now().UTC().Format("2006-01-02_15-04-05")
	key := fmt.Sprintf("%s/backup-%s.dump", backupFolder, timestamp)

	uploadURL, err := uc.store.Upload(ctx, bytes.NewReader(dump), key, "application/octet-stream")
	if err != nil {
		uc.logger.Error("Failed to upload backup", err, zap.String("key", key))
		return "", err
	}

	uc.logger.Info("Database backup completed and uploaded successfully",
		zap.String("url", uploadURL),
		zap.String("key", key),
		zap.Int("size", len(dump)),
	)
	return key, nil
}

// Run backs up once per interval until ctx is done.
func (uc *BackupUseCase) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Failures are logged by Execute; the next tick retries.
			_, _ = uc.Execute(ctx)
		}
	}
}
