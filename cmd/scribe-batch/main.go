// scribe-batch submits every supported file in a directory as a job
// and drives the jobs to completion on the local worker pool. With
// -inmem it needs no running database, which makes it handy for
// smoke-testing provider credentials.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/internal/async"
	"github.com/scribepipe/scribepipe/internal/blobstore"
	"github.com/scribepipe/scribepipe/internal/chunk"
	"github.com/scribepipe/scribepipe/internal/common"
	"github.com/scribepipe/scribepipe/internal/jobs"
	"github.com/scribepipe/scribepipe/internal/pipeline"
	"github.com/scribepipe/scribepipe/internal/provider"
	repo "github.com/scribepipe/scribepipe/internal/repository"
	"github.com/scribepipe/scribepipe/internal/usage"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use an in-memory SQLite database")
		dir     = flag.String("dir", "", "directory of input files (required)")
		owner   = flag.String("owner", "", "owner id the jobs belong to (required)")
		kindStr = flag.String("kind", "transcription", "job kind: transcription or translation")
		backend = flag.String("backend", "", "provider backend (required)")
		source  = flag.String("source", "", "source language hint")
		target  = flag.String("target", "", "target language (translation)")
		diarize = flag.Bool("diarize", false, "label speakers (transcription)")
	)
	flag.Parse()

	if *dir == "" || *owner == "" || *backend == "" {
		printError("Error: -dir, -owner and -backend are required\n")
		os.Exit(1)
	}
	kind := constants.JobKind(strings.ToUpper(*kindStr))

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dbh, err := repo.InitDatabase(ctx, cfg.Database, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbh.Cleanup()

	store, err := blobstore.NewStore(ctx, cfg.Storage)
	if err != nil {
		logger.Error("failed to open blob store", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewJobRepository(dbh.Client, logger)
	usageRepo := repo.NewUsageRecordRepository(dbh.Client, logger)
	meter := usage.NewMeter(usageRepo, logger)
	splitter := chunk.NewAudioSplitter(chunk.NewExecRunner(), cfg.Media, logger)
	processor := pipeline.NewProcessor(logger, jobsRepo, meter, store, splitter,
		provider.DefaultRegistries(), cfg.Providers)
	ledger := jobs.NewService(jobsRepo, store, cfg.Storage.SignedURLTTL, logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.QueueSize),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	submitted := 0
	skipped := 0
	err = filepath.WalkDir(*dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ct := constants.ContentTypeForExt(filepath.Ext(path))
		if ct == "" {
			logger.Warn("skipping unsupported file", "path", path)
			skipped++
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read file", "path", path, "error", err)
			skipped++
			return nil
		}

		name := filepath.Base(path)
		job, err := ledger.Submit(ctx, jobs.SubmitRequest{
			OwnerID:     *owner,
			Kind:        kind,
			DisplayName: name,
			File:        &jobs.FileInput{Content: content, ContentType: ct},
		})
		if err != nil {
			logger.Error("submit failed", "path", path, "error", err)
			skipped++
			return nil
		}

		_ = queue.Enqueue(ctx, async.Task{
			OwnerID: *owner,
			JobID:   job.ID,
			Params: pipeline.Params{
				Backend:    *backend,
				SourceLang: *source,
				TargetLang: *target,
				Diarize:    *diarize,
			},
			SubmittedAt: time.Now(),
		})
		submitted++
		return nil
	})
	if err != nil {
		logger.Error("failed to walk directory", "dir", *dir, "error", err)
		os.Exit(1)
	}

	queue.Shutdown(ctx)

	failures := 0
	sums, err := ledger.List(ctx, *owner, repo.JobFilters{Status: constants.JobStatusFailed})
	if err == nil {
		failures = len(sums)
		for _, s := range sums {
			logger.Warn("job failed", "job_id", s.ID, "display_name", s.DisplayName)
		}
	}

	logger.Info("batch complete",
		"submitted", submitted,
		"skipped", skipped,
		"failures", failures,
	)
	if failures > 0 {
		os.Exit(1)
	}
}
