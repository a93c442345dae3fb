package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dumpship/dumpship/internal/domain"
	"github.com/dumpship/dumpship/internal/dsn"
)

type Logger interface {
	Infof(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Warnf(template string, args ...interface{})
}

// DatabaseFactory picks the dump strategy for a parsed target.
type DatabaseFactory func(dsn.Descriptor) (domain.Database, error)

// Backup runs the whole pipeline over a list of targets, one at a time.
// A failure in one target is recorded in its Result and never stops the
// rest of the run.
type Backup struct {
	newDatabase DatabaseFactory
	primary     domain.Storage
	secondaries []domain.Storage
	compressor  domain.Compressor
	logger      Logger
	scratchDir  string

	now func() time.Time

	// running guards against a scheduled tick firing while the previous
	// pass is still executing.
	running sync.Mutex
}

func NewBackup(
	newDatabase DatabaseFactory,
	primary domain.Storage,
	secondaries []domain.Storage,
	compressor domain.Compressor,
	logger Logger,
	scratchDir string,
) *Backup {
	return &Backup{
		newDatabase: newDatabase,
		primary:     primary,
		secondaries: secondaries,
		compressor:  compressor,
		logger:      logger,
		scratchDir:  scratchDir,
		now:         time.Now,
	}
}

// Run executes one orchestrator pass over every target, sequentially and
// in configured order. If a pass is already in progress the trigger is
// logged and dropped.
func (b *Backup) Run(ctx context.Context, targets []string) domain.Summary {
	if !b.running.TryLock() {
		b.logger.Warnf("Previous backup run still in progress, skipping this trigger")
		return domain.Summary{}
	}
	defer b.running.Unlock()

	summary := domain.Summary{Started: b.now()}

	if len(targets) == 0 {
		b.logger.Infof("No databases configured, nothing to back up")
		return summary
	}

	b.logger.Infof("Starting backup run for %d target(s)", len(targets))

	for i, target := range targets {
		res := b.runTarget(ctx, target)

		if res.Failed() {
			b.logger.Errorf("[%d/%d] Backup failed (dialect=%s database=%s host=%s): %v",
				i+1, len(targets), res.Dialect, res.Database, res.Host, res.Err)
		} else {
			b.logger.Infof("[%d/%d] Backup uploaded (dialect=%s database=%s host=%s key=%s size=%d, took %s)",
				i+1, len(targets), res.Dialect, res.Database, res.Host, res.Key, res.Size,
				res.Duration.Round(time.Millisecond))
		}

		summary.Results = append(summary.Results, res)
	}

	summary.Duration = b.now().Sub(summary.Started)
	b.logger.Infof("Backup run finished: %d succeeded, %d failed in %s",
		summary.Succeeded(), summary.Failed(), summary.Duration.Round(time.Millisecond))

	return summary
}

func (b *Backup) runTarget(ctx context.Context, target string) (res domain.Result) {
	start := b.now()
	res = domain.Result{Target: target}
	defer func() { res.Duration = b.now().Sub(start) }()

	desc, err := dsn.Parse(target)
	if err != nil {
		res.Err = fmt.Errorf("parse target: %w", err)
		return res
	}
	res.Dialect = desc.Dialect
	res.Database = desc.Database
	res.Host = desc.Host

	db, err := b.newDatabase(desc)
	if err != nil {
		res.Err = fmt.Errorf("select dump plan: %w", err)
		return res
	}

	// Best effort; a missing client tool still shows up when the dump
	// itself runs.
	if version, err := db.Version(ctx); err != nil {
		b.logger.Warnf("[%s] Version probe failed: %v", desc.Database, err)
	} else {
		b.logger.Infof("[%s] Using %s", desc.Database, version)
	}

	key := archiveName(desc, b.now())
	archivePath := filepath.Join(b.scratchDir, key)
	dumpPath := archivePath + ".dump"
	defer b.cleanup(dumpPath, archivePath)

	b.logger.Infof("[%s] Dumping to %s", desc.Database, dumpPath)
	if err := db.Dump(ctx, dumpPath); err != nil {
		res.Err = fmt.Errorf("dump: %w", err)
		return res
	}

	if err := b.compressor.Compress(dumpPath, archivePath); err != nil {
		res.Err = fmt.Errorf("compress: %w", err)
		return res
	}

	data, err := os.ReadFile(archivePath)
	if err != nil {
		res.Err = fmt.Errorf("read archive: %w", err)
		return res
	}
	res.Size = int64(len(data))

	b.logger.Infof("[%s] Uploading %s to %s (%d bytes)", desc.Database, key, b.primary.Name(), res.Size)
	if err := b.primary.Upload(ctx, key, data); err != nil {
		res.Err = fmt.Errorf("upload: %w", err)
		return res
	}
	res.Key = key

	for _, sink := range b.secondaries {
		if err := sink.Upload(ctx, key, data); err != nil {
			b.logger.Errorf("[%s] Upload to %s failed: %v", desc.Database, sink.Name(), err)
		} else {
			b.logger.Infof("[%s] Uploaded to %s", desc.Database, sink.Name())
		}
	}

	return res
}

// cleanup removes the dump and archive after the upload attempt, in both
// the success and the failure path. Leaking a scratch file is preferable
// to failing the run over it.
func (b *Backup) cleanup(paths ...string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			b.logger.Warnf("Failed to remove scratch file %s: %v", path, err)
		}
	}
}

func archiveName(desc dsn.Descriptor, ts time.Time) string {
	return fmt.Sprintf("backup-%s-%s-%s-%s.tar.gz",
		desc.Dialect, ts.Format("2006-01-02_15:04:05"), desc.Database, desc.Host)
}
