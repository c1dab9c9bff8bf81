// Package pipeline runs submitted jobs end to end: fetch the input,
// chunk it when it exceeds backend limits, call the provider per
// piece, merge the results, store artifacts, and settle the ledger
// row in a terminal state.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/internal/blobstore"
	"github.com/scribepipe/scribepipe/internal/chunk"
	"github.com/scribepipe/scribepipe/internal/common"
	"github.com/scribepipe/scribepipe/internal/entity"
	"github.com/scribepipe/scribepipe/internal/provider"
	"github.com/scribepipe/scribepipe/internal/repository"
	"github.com/scribepipe/scribepipe/internal/usage"
)

// tokenizer model per backend; backends without an entry fall back to
// the heuristic counter.
var tokenizerModels = map[string]string{
	constants.BackendOpenAI: "gpt-4o-mini",
}

// Params carries the per-request processing knobs.
type Params struct {
	Backend    string
	SourceLang string
	TargetLang string
	Diarize    bool
	Text       string // inline translation input, overrides the stored object
}

// Processor coordinates a single job run. It is safe for concurrent
// use; all per-run state lives on the stack.
type Processor struct {
	logger      *slog.Logger
	jobs        repository.JobRepository
	meter       *usage.Meter
	store       blobstore.Store
	splitter    *chunk.AudioSplitter
	registries  *provider.Registries
	providerCfg common.ProvidersConfig
}

func NewProcessor(
	logger *slog.Logger,
	jobs repository.JobRepository,
	meter *usage.Meter,
	store blobstore.Store,
	splitter *chunk.AudioSplitter,
	registries *provider.Registries,
	providerCfg common.ProvidersConfig,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:      logger,
		jobs:        jobs,
		meter:       meter,
		store:       store,
		splitter:    splitter,
		registries:  registries,
		providerCfg: providerCfg,
	}
}

// Process runs one job to a terminal state and returns its final
// snapshot. It never returns an error: every failure is persisted on
// the row as FAILED with the verbatim cause, so a crash-restarted
// worker and a live caller observe the same outcome.
func (p *Processor) Process(ctx context.Context, ownerID string, jobID uuid.UUID, params Params) (out *entity.Job) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("pipeline.process.panic", "job_id", jobID, "panic", r)
			out = p.markFailed(ctx, jobID, fmt.Errorf("internal error: %v", r))
		}
	}()

	job, err := p.jobs.GetForOwner(ctx, ownerID, jobID)
	if err != nil {
		p.logger.Error("pipeline.process.lookup_failed", "job_id", jobID, "err", err)
		msg := err.Error()
		return &entity.Job{ID: jobID, OwnerID: ownerID, Status: constants.JobStatusFailed, ErrorMessage: &msg}
	}

	if err := p.jobs.MarkProcessing(ctx, jobID, params.Backend); err != nil {
		// The row was not QUEUED; leave its state alone.
		p.logger.Warn("pipeline.process.not_queued", "job_id", jobID, "status", job.Status, "err", err)
		msg := err.Error()
		snap := *job
		snap.ErrorMessage = &msg
		return &snap
	}
	p.logger.Info("pipeline.process.start",
		"job_id", jobID,
		"job_type", job.JobType,
		"backend", params.Backend,
	)

	var artifacts []repository.NewArtifact
	switch job.JobType {
	case constants.JobKindTranscription:
		artifacts, err = p.runTranscription(ctx, job, params)
	case constants.JobKindTranslation:
		artifacts, err = p.runTranslation(ctx, job, params)
	default:
		err = common.InvalidInputError(fmt.Sprintf("unknown job type %q", job.JobType), nil)
	}
	if err != nil {
		p.logger.Error("pipeline.process.failed", "job_id", jobID, "err", err)
		return p.markFailed(ctx, jobID, err)
	}

	done, err := p.jobs.CompleteWithArtifacts(ctx, jobID, artifacts)
	if err != nil {
		p.logger.Error("pipeline.process.complete_failed", "job_id", jobID, "err", err)
		return p.markFailed(ctx, jobID, err)
	}
	p.logger.Info("pipeline.process.done", "job_id", jobID, "artifacts", len(artifacts))
	return done
}

func (p *Processor) runTranscription(ctx context.Context, job *entity.Job, params Params) ([]repository.NewArtifact, error) {
	if err := blobstore.VerifyOwnership(job.InputRef, job.OwnerID); err != nil {
		return nil, err
	}
	local, err := p.fetchToTemp(ctx, job.InputRef)
	if err != nil {
		return nil, err
	}
	defer os.Remove(local)

	// resolve the adapter first: a missing credential fails before any
	// transcoding work, and its upload cap bounds the chunk size
	tr, err := p.registries.Transcribers.Create(params.Backend, p.providerCfg, p.logger)
	if err != nil {
		return nil, err
	}

	split, err := p.splitter.Split(ctx, local, tr.Limits().MaxUploadBytes)
	if err != nil {
		return nil, err
	}
	defer split.Cleanup()

	opts := provider.TranscribeOptions{Language: params.SourceLang, Diarize: params.Diarize}
	var (
		parts    []string
		segments []provider.Segment
	)
	for _, c := range split.Chunks {
		res, err := tr.Transcribe(ctx, c.Path, opts)
		if err != nil {
			return nil, err
		}
		p.logger.Debug("pipeline.transcribe.chunk",
			"job_id", job.ID,
			"chunk", c.Index,
			"audio_seconds", res.AudioSeconds,
		)
		if t := strings.TrimSpace(res.Text); t != "" {
			parts = append(parts, t)
		}
		for _, seg := range res.Segments {
			seg.Start += c.Start
			seg.End += c.Start
			segments = append(segments, seg)
		}
		p.recordUsage(ctx, job, params.Backend, usage.Quantity{AudioSeconds: res.AudioSeconds})
	}

	var artifacts []repository.NewArtifact
	transcript := strings.Join(parts, " ")
	a, err := p.uploadArtifact(ctx, job, constants.ArtifactTranscript, []byte(transcript), "text/plain")
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, a)

	if len(segments) > 0 {
		data, err := provider.MarshalSegments(segments)
		if err != nil {
			return nil, err
		}
		a, err = p.uploadArtifact(ctx, job, constants.ArtifactJSON, data, "application/json")
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)

		a, err = p.uploadArtifact(ctx, job, constants.ArtifactSRT, []byte(WriteSRT(segments)), "text/plain")
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

func (p *Processor) runTranslation(ctx context.Context, job *entity.Job, params Params) ([]repository.NewArtifact, error) {
	if params.TargetLang == "" {
		return nil, common.InvalidInputError("target language is required", nil)
	}

	text := params.Text
	if text == "" {
		if err := blobstore.VerifyOwnership(job.InputRef, job.OwnerID); err != nil {
			return nil, err
		}
		rc, err := p.store.Download(ctx, job.InputRef)
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, common.StorageError("read translation input", err)
		}
		text = string(data)
	}

	tl, err := p.registries.Translators.Create(params.Backend, p.providerCfg, p.logger)
	if err != nil {
		return nil, err
	}
	limits := tl.Limits()
	budget := limits.MaxChunkTokens
	if budget <= 0 {
		budget = limits.TokenBudget
	}

	splitter := chunk.NewTextSplitter(chunk.NewTokenCounter(tokenizerModels[params.Backend]), p.logger)
	chunks, err := splitter.Split(text, params.SourceLang, budget)
	if err != nil {
		return nil, err
	}

	opts := provider.TranslateOptions{SourceLang: params.SourceLang, TargetLang: params.TargetLang}
	parts := make([]string, 0, len(chunks))
	for i, c := range chunks {
		res, err := tl.Translate(ctx, c.Text, opts)
		if err != nil {
			return nil, err
		}
		p.logger.Debug("pipeline.translate.chunk",
			"job_id", job.ID,
			"chunk", i,
			"tokens", res.TokensUsed,
			"characters", res.Characters,
		)
		if t := strings.TrimSpace(res.Text); t != "" {
			parts = append(parts, t)
		}
		p.recordUsage(ctx, job, params.Backend, usage.Quantity{
			Tokens:     res.TokensUsed,
			Characters: res.Characters,
		})
	}

	a, err := p.uploadArtifact(ctx, job, constants.ArtifactTranslation, []byte(strings.Join(parts, " ")), "text/plain")
	if err != nil {
		return nil, err
	}
	return []repository.NewArtifact{a}, nil
}

// fetchToTemp copies the stored input to a local temp file so ffmpeg
// and the upload-by-path adapters can read it.
func (p *Processor) fetchToTemp(ctx context.Context, ref string) (string, error) {
	rc, err := p.store.Download(ctx, ref)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	f, err := os.CreateTemp("", "scribepipe-input-*"+path.Ext(ref))
	if err != nil {
		return "", common.StorageError("create temp input", err)
	}
	if _, err := io.Copy(f, rc); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", common.StorageError("stage input locally", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", common.StorageError("stage input locally", err)
	}
	return f.Name(), nil
}

func (p *Processor) uploadArtifact(ctx context.Context, job *entity.Job, kind constants.ArtifactKind, data []byte, contentType string) (repository.NewArtifact, error) {
	if len(data) == 0 {
		// a silent recording still yields a transcript artifact
		data = []byte("\n")
	}
	ref := blobstore.OutputPath(job.OwnerID, job.ID, constants.ArtifactFilenames[kind])
	if err := p.store.Upload(ctx, ref, strings.NewReader(string(data)), int64(len(data)), contentType); err != nil {
		return repository.NewArtifact{}, err
	}
	return repository.NewArtifact{
		Kind:       kind,
		StorageRef: ref,
		SizeBytes:  int64(len(data)),
	}, nil
}

// recordUsage logs and continues on failure: a metering gap must not
// fail a job that already consumed the provider call.
func (p *Processor) recordUsage(ctx context.Context, job *entity.Job, backend string, q usage.Quantity) {
	if err := p.meter.Record(ctx, job.OwnerID, job.ID, job.JobType, backend, q); err != nil {
		p.logger.Warn("pipeline.usage.record_failed", "job_id", job.ID, "err", err)
	}
}

func (p *Processor) markFailed(ctx context.Context, jobID uuid.UUID, cause error) *entity.Job {
	msg := cause.Error()
	if err := p.jobs.MarkFailed(ctx, jobID, msg); err != nil {
		p.logger.Error("pipeline.process.mark_failed_error", "job_id", jobID, "err", err)
	}
	return &entity.Job{ID: jobID, Status: constants.JobStatusFailed, ErrorMessage: &msg}
}
