package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/dumpship/dumpship/internal/adapter/compressor"
	"github.com/dumpship/dumpship/internal/adapter/database"
	"github.com/dumpship/dumpship/internal/adapter/notify"
	"github.com/dumpship/dumpship/internal/adapter/storage"
	"github.com/dumpship/dumpship/internal/config"
	"github.com/dumpship/dumpship/internal/domain"
	"github.com/dumpship/dumpship/internal/infrastructure/logger"
	"github.com/dumpship/dumpship/internal/infrastructure/scheduler"
	"github.com/dumpship/dumpship/internal/usecase"
)

// orchestrator runs one backup pass over the configured targets.
type orchestrator interface {
	Run(ctx context.Context, targets []string) domain.Summary
}

type App struct {
	config    *config.Config
	logger    *logger.Logger
	scheduler *scheduler.Scheduler
	backup    orchestrator
	notifier  domain.Notifier
}

func New(cfg *config.Config) (*App, error) {
	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Infof("Starting dumpship with %d database(s) configured", len(cfg.Databases))

	primary, err := storage.NewS3(context.Background(), cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3: %w", err)
	}
	log.Infof("✓ S3 upload enabled (bucket: %s)", cfg.AWS.Bucket)

	var secondaries []domain.Storage
	if cfg.GDriveEnabled() {
		gdrive, err := storage.NewGDrive(context.Background(), cfg.GDrive)
		if err != nil {
			log.Errorf("Failed to initialize Google Drive, continuing without it: %v", err)
		} else {
			secondaries = append(secondaries, gdrive)
			log.Infof("✓ Google Drive upload enabled")
		}
	}

	var notifier domain.Notifier
	if cfg.TelegramEnabled() {
		tg, err := notify.NewTelegram(cfg.Telegram)
		if err != nil {
			log.Errorf("Failed to initialize Telegram, continuing without it: %v", err)
		} else {
			notifier = tg
			log.Infof("✓ Telegram notifications enabled")
		}
	}

	backup := usecase.NewBackup(
		database.New,
		primary,
		secondaries,
		compressor.NewTarGzip(),
		log,
		cfg.ScratchDir,
	)

	return &App{
		config:    cfg,
		logger:    log,
		scheduler: scheduler.New(),
		backup:    backup,
		notifier:  notifier,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if !a.config.RunOnStartup && a.config.Cron == "" {
		a.logger.Warnf("Neither RUN_ON_STARTUP nor CRON is configured, no backups will run")
		return nil
	}

	if a.config.RunOnStartup {
		a.logger.Infof("Running startup backup pass")
		a.runOnce(ctx)
	}

	if a.config.Cron == "" {
		return nil
	}

	if err := a.scheduler.AddJob(a.config.Cron, a.runOnce); err != nil {
		return fmt.Errorf("failed to schedule backups: %w", err)
	}

	a.scheduler.Start()
	a.logger.Infof("Scheduler started: %s", a.config.Cron)

	<-ctx.Done()
	return nil
}

func (a *App) runOnce(ctx context.Context) {
	summary := a.backup.Run(ctx, a.config.Databases)

	if a.notifier == nil || len(summary.Results) == 0 {
		return
	}
	if err := a.notifier.Notify(ctx, summaryMessage(summary)); err != nil {
		a.logger.Errorf("Failed to send run notification: %v", err)
	}
}

func (a *App) Shutdown() {
	a.logger.Infof("Shutting down")
	a.scheduler.Stop()
	a.logger.Close()
}

func summaryMessage(s domain.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Backup run finished: %d succeeded, %d failed\n", s.Succeeded(), s.Failed())

	for _, r := range s.Results {
		if r.Failed() {
			fmt.Fprintf(&b, "✗ %s/%s: %v\n", r.Host, r.Database, r.Err)
		} else {
			fmt.Fprintf(&b, "✓ %s/%s → %s (%d bytes)\n", r.Host, r.Database, r.Key, r.Size)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
