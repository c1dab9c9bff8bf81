package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

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

// fakeJobs is an in-memory JobRepository.
type fakeJobs struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]*entity.Job
	failedMsg map[uuid.UUID]string
	completed map[uuid.UUID][]repository.NewArtifact
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{
		rows:      map[uuid.UUID]*entity.Job{},
		failedMsg: map[uuid.UUID]string{},
		completed: map[uuid.UUID][]repository.NewArtifact{},
	}
}

func (f *fakeJobs) add(j *entity.Job) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[j.ID] = j
}

func (f *fakeJobs) Create(ctx context.Context, id uuid.UUID, ownerID string, kind constants.JobKind, inputRef string, displayName *string) (*entity.Job, error) {
	j := &entity.Job{
		ID: id, OwnerID: ownerID, JobType: kind,
		Status: constants.JobStatusQueued, InputRef: inputRef,
		DisplayName: displayName, CreatedAt: time.Now(),
	}
	f.add(j)
	return j, nil
}

func (f *fakeJobs) GetForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.rows[id]
	if !ok || j.Status == constants.JobStatusDeleted {
		return nil, common.NotFoundAppError("job not found")
	}
	if j.OwnerID != ownerID {
		return nil, common.OwnershipError("job belongs to another user")
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobs) GetArtifactForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*entity.Artifact, error) {
	return nil, common.NotFoundAppError("artifact not found")
}

func (f *fakeJobs) List(ctx context.Context, ownerID string, filters repository.JobFilters) ([]*entity.JobSummary, error) {
	return nil, nil
}

func (f *fakeJobs) MarkProcessing(ctx context.Context, id uuid.UUID, backend string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j := f.rows[id]
	if j == nil || j.Status != constants.JobStatusQueued {
		return common.InvalidInputError("job is not queued", nil)
	}
	j.Status = constants.JobStatusProcessing
	j.Backend = &backend
	return nil
}

func (f *fakeJobs) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j := f.rows[id]
	if j == nil || j.Status != constants.JobStatusProcessing {
		return common.InvalidInputError("job is not processing", nil)
	}
	j.Status = constants.JobStatusFailed
	j.ErrorMessage = &message
	f.failedMsg[id] = message
	return nil
}

func (f *fakeJobs) CompleteWithArtifacts(ctx context.Context, id uuid.UUID, artifacts []repository.NewArtifact) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j := f.rows[id]
	if j == nil {
		return nil, common.NotFoundAppError("job not found")
	}
	if j.Status != constants.JobStatusProcessing {
		return nil, common.InvalidInputError("job is not processing", nil)
	}
	now := time.Now()
	j.Status = constants.JobStatusDone
	j.CompletedAt = &now
	j.ErrorMessage = nil
	f.completed[id] = artifacts
	cp := *j
	return &cp, nil
}

func (f *fakeJobs) SoftDelete(ctx context.Context, ownerID string, id uuid.UUID) error {
	return nil
}

// memStore is an in-memory blobstore.Store.
type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemStore() *memStore { return &memStore{objects: map[string][]byte{}} }

func (s *memStore) put(path string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = data
}

func (s *memStore) Upload(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error {
	if err := blobstore.ValidateUpload(size, contentType); err != nil {
		return err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return common.StorageError("read upload", err)
	}
	s.put(path, data)
	return nil
}

func (s *memStore) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[path]
	if !ok {
		return nil, common.NotFoundAppError("object not found: " + path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStore) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, path)
	return nil
}

func (s *memStore) Exists(ctx context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[path]
	return ok, nil
}

func (s *memStore) List(ctx context.Context, prefix string) ([]blobstore.FileInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []blobstore.FileInfo
	for p, data := range s.objects {
		if strings.HasPrefix(p, prefix) {
			out = append(out, blobstore.FileInfo{Path: p, Size: int64(len(data))})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (s *memStore) SignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "https://signed.example/" + path, nil
}

// probeRunner answers ffprobe with a fixed duration. The transcription
// tests stay under the split threshold so ffmpeg is never invoked.
type probeRunner struct {
	duration float64
}

func (r probeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	return []byte(fmt.Sprintf("%.2f\n", r.duration)), nil, nil
}

type stubTranscriber struct {
	mu     sync.Mutex
	result *provider.Result
	err    error
	calls  int
	panics bool
	onCall func()
}

func (s *stubTranscriber) Name() string { return constants.BackendDeepgram }

func (s *stubTranscriber) Limits() provider.Limits {
	return provider.Limits{MaxUploadBytes: 2 << 30}
}

func (s *stubTranscriber) Transcribe(ctx context.Context, audioPath string, opts provider.TranscribeOptions) (*provider.Result, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.onCall != nil {
		s.onCall()
	}
	if s.panics {
		panic("adapter bug")
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubTranslator struct {
	limits provider.Limits
	calls  int
}

func (s *stubTranslator) Name() string { return "stub" }

func (s *stubTranslator) Limits() provider.Limits { return s.limits }

func (s *stubTranslator) Translate(ctx context.Context, text string, opts provider.TranslateOptions) (*provider.Result, error) {
	s.calls++
	return &provider.Result{
		Text:       fmt.Sprintf("[%s:%d]", opts.TargetLang, s.calls),
		TokensUsed: int64(len(text)),
		Language:   opts.TargetLang,
	}, nil
}

type captureRecorder struct {
	mu      sync.Mutex
	records []*entity.UsageRecord
}

func (c *captureRecorder) Append(ctx context.Context, rec *entity.UsageRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, rec)
	return nil
}

type fixture struct {
	jobs     *fakeJobs
	store    *memStore
	recorder *captureRecorder
	proc     *Processor
}

func newFixture(t *testing.T, tr provider.Transcriber, tl provider.Translator) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	regs := &provider.Registries{
		Transcribers: provider.NewRegistry[provider.Transcriber](),
		Translators:  provider.NewRegistry[provider.Translator](),
	}
	if tr != nil {
		regs.Transcribers.Register(tr.Name(), func(common.ProvidersConfig, *slog.Logger) (provider.Transcriber, error) {
			return tr, nil
		})
	}
	if tl != nil {
		regs.Translators.Register(tl.Name(), func(common.ProvidersConfig, *slog.Logger) (provider.Translator, error) {
			return tl, nil
		})
	}

	jobs := newFakeJobs()
	store := newMemStore()
	recorder := &captureRecorder{}
	splitter := chunk.NewAudioSplitter(probeRunner{duration: 90}, common.MediaConfig{
		FFmpegPath:       "ffmpeg",
		FFprobePath:      "ffprobe",
		ChunkThresholdMB: 100,
	}, logger)

	return &fixture{
		jobs:     jobs,
		store:    store,
		recorder: recorder,
		proc: NewProcessor(logger, jobs, usage.NewMeter(recorder, logger), store,
			splitter, regs, common.ProvidersConfig{}),
	}
}

func seedAudioJob(t *testing.T, fx *fixture, ownerID string) *entity.Job {
	t.Helper()
	id := uuid.New()
	ref := blobstore.InputPath(ownerID, id, ".mp3")
	fx.store.put(ref, bytes.Repeat([]byte{0xFF}, 2048))
	j := &entity.Job{
		ID: id, OwnerID: ownerID, JobType: constants.JobKindTranscription,
		Status: constants.JobStatusQueued, InputRef: ref, CreatedAt: time.Now(),
	}
	fx.jobs.add(j)
	return j
}

func TestProcessTranscriptionProducesArtifacts(t *testing.T) {
	tr := &stubTranscriber{result: &provider.Result{
		Text: "hello world",
		Segments: []provider.Segment{
			{Start: 0, End: 2.5, Speaker: "SPEAKER_00", Text: "hello"},
			{Start: 2.5, End: 4, Speaker: "SPEAKER_00", Text: "world"},
		},
		Language:     "en",
		AudioSeconds: 90,
	}}
	fx := newFixture(t, tr, nil)
	job := seedAudioJob(t, fx, "alice")

	out := fx.proc.Process(context.Background(), "alice", job.ID, Params{Backend: constants.BackendDeepgram})

	if out.Status != constants.JobStatusDone {
		t.Fatalf("status = %s, want %s (error: %v)", out.Status, constants.JobStatusDone, out.ErrorMessage)
	}
	if tr.calls != 1 {
		t.Errorf("transcriber calls = %d, want 1", tr.calls)
	}

	arts := fx.jobs.completed[job.ID]
	kinds := map[constants.ArtifactKind]repository.NewArtifact{}
	for _, a := range arts {
		kinds[a.Kind] = a
	}
	for _, want := range []constants.ArtifactKind{constants.ArtifactTranscript, constants.ArtifactJSON, constants.ArtifactSRT} {
		a, ok := kinds[want]
		if !ok {
			t.Fatalf("missing artifact %s in %v", want, arts)
		}
		if exists, _ := fx.store.Exists(context.Background(), a.StorageRef); !exists {
			t.Errorf("artifact %s not stored at %s", want, a.StorageRef)
		}
		if a.SizeBytes <= 0 {
			t.Errorf("artifact %s has size %d", want, a.SizeBytes)
		}
	}

	wantRef := blobstore.OutputPath("alice", job.ID, "transcript.txt")
	rc, err := fx.store.Download(context.Background(), wantRef)
	if err != nil {
		t.Fatalf("download transcript: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != "hello world" {
		t.Errorf("transcript = %q, want %q", data, "hello world")
	}

	srtRef := blobstore.OutputPath("alice", job.ID, "subtitles.srt")
	rc, err = fx.store.Download(context.Background(), srtRef)
	if err != nil {
		t.Fatalf("download srt: %v", err)
	}
	srt, _ := io.ReadAll(rc)
	rc.Close()
	if !strings.Contains(string(srt), "00:00:00,000 --> 00:00:02,500") {
		t.Errorf("srt missing first cue timing:\n%s", srt)
	}

	if len(fx.recorder.records) != 1 {
		t.Fatalf("usage records = %d, want 1", len(fx.recorder.records))
	}
	rec := fx.recorder.records[0]
	if rec.AudioSeconds != 90 || rec.Backend != constants.BackendDeepgram {
		t.Errorf("usage record = %+v", rec)
	}
	if rec.CostUSD == 0 {
		t.Errorf("expected non-zero cost for %v audio seconds", rec.AudioSeconds)
	}
}

func TestProcessProviderFailureMarksJobFailed(t *testing.T) {
	tr := &stubTranscriber{err: common.ProviderError("deepgram: status 503: upstream overloaded", nil)}
	fx := newFixture(t, tr, nil)
	job := seedAudioJob(t, fx, "alice")

	out := fx.proc.Process(context.Background(), "alice", job.ID, Params{Backend: constants.BackendDeepgram})

	if out.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want %s", out.Status, constants.JobStatusFailed)
	}
	if out.ErrorMessage == nil || !strings.Contains(*out.ErrorMessage, "upstream overloaded") {
		t.Errorf("error message = %v, want provider text preserved", out.ErrorMessage)
	}
	if got := fx.jobs.failedMsg[job.ID]; !strings.Contains(got, "upstream overloaded") {
		t.Errorf("persisted failure = %q", got)
	}
	if len(fx.jobs.completed[job.ID]) != 0 {
		t.Errorf("no artifacts should be recorded on failure")
	}
	if outputs, _ := fx.store.List(context.Background(), blobstore.OutputPath("alice", job.ID, "")); len(outputs) != 0 {
		t.Errorf("no outputs should be stored on failure, got %v", outputs)
	}
}

func TestProcessUnknownBackend(t *testing.T) {
	fx := newFixture(t, nil, nil)
	job := seedAudioJob(t, fx, "alice")

	out := fx.proc.Process(context.Background(), "alice", job.ID, Params{Backend: "nope"})

	if out.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want FAILED", out.Status)
	}
	if out.ErrorMessage == nil || !strings.Contains(*out.ErrorMessage, "nope") {
		t.Errorf("error message = %v, want backend name", out.ErrorMessage)
	}
}

func TestProcessSkipsNonQueuedJob(t *testing.T) {
	fx := newFixture(t, &stubTranscriber{}, nil)
	job := seedAudioJob(t, fx, "alice")
	fx.jobs.rows[job.ID].Status = constants.JobStatusDone

	out := fx.proc.Process(context.Background(), "alice", job.ID, Params{Backend: constants.BackendDeepgram})

	if out.Status != constants.JobStatusDone {
		t.Errorf("status = %s, want the row left DONE", out.Status)
	}
	if out.ErrorMessage == nil {
		t.Errorf("expected an error message on the returned snapshot")
	}
	if _, failed := fx.jobs.failedMsg[job.ID]; failed {
		t.Errorf("a terminal row must not be re-marked FAILED")
	}
}

func TestProcessPanicRecovery(t *testing.T) {
	fx := newFixture(t, &stubTranscriber{panics: true}, nil)
	job := seedAudioJob(t, fx, "alice")

	out := fx.proc.Process(context.Background(), "alice", job.ID, Params{Backend: constants.BackendDeepgram})

	if out.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want FAILED", out.Status)
	}
	if got := fx.jobs.failedMsg[job.ID]; !strings.Contains(got, "internal error") {
		t.Errorf("persisted failure = %q, want internal error marker", got)
	}
}

func TestProcessRejectsForeignInput(t *testing.T) {
	fx := newFixture(t, &stubTranscriber{}, nil)
	id := uuid.New()
	j := &entity.Job{
		ID: id, OwnerID: "alice", JobType: constants.JobKindTranscription,
		Status:   constants.JobStatusQueued,
		InputRef: blobstore.InputPath("bob", id, ".mp3"),
	}
	fx.jobs.add(j)

	out := fx.proc.Process(context.Background(), "alice", id, Params{Backend: constants.BackendDeepgram})

	if out.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want FAILED", out.Status)
	}
	if !strings.Contains(fx.jobs.failedMsg[id], "alice") {
		t.Errorf("failure message = %q, want ownership detail", fx.jobs.failedMsg[id])
	}
}

// failRunner trips the test if any media tool is invoked.
type failRunner struct{ t *testing.T }

func (r failRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.t.Errorf("media tool %s invoked before the backend was resolved", name)
	return nil, nil, fmt.Errorf("unexpected %s invocation", name)
}

func TestProcessResolvesBackendBeforeTranscoding(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	regs := &provider.Registries{
		Transcribers: provider.NewRegistry[provider.Transcriber](),
		Translators:  provider.NewRegistry[provider.Translator](),
	}
	jobs := newFakeJobs()
	store := newMemStore()
	splitter := chunk.NewAudioSplitter(failRunner{t}, common.MediaConfig{
		FFmpegPath:       "ffmpeg",
		FFprobePath:      "ffprobe",
		ChunkThresholdMB: 100,
	}, logger)
	proc := NewProcessor(logger, jobs, usage.NewMeter(&captureRecorder{}, logger), store,
		splitter, regs, common.ProvidersConfig{})

	id := uuid.New()
	ref := blobstore.InputPath("alice", id, ".mp3")
	store.put(ref, bytes.Repeat([]byte{0xFF}, 2048))
	jobs.add(&entity.Job{
		ID: id, OwnerID: "alice", JobType: constants.JobKindTranscription,
		Status: constants.JobStatusQueued, InputRef: ref,
	})

	out := proc.Process(context.Background(), "alice", id, Params{Backend: "nope"})
	if out.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want FAILED", out.Status)
	}
}

func TestProcessDeleteDuringRunLeavesRowDeleted(t *testing.T) {
	tr := &stubTranscriber{result: &provider.Result{Text: "words", AudioSeconds: 30}}
	fx := newFixture(t, tr, nil)
	job := seedAudioJob(t, fx, "alice")
	tr.onCall = func() {
		// the owner deletes the job while the provider call is in flight
		fx.jobs.mu.Lock()
		fx.jobs.rows[job.ID].Status = constants.JobStatusDeleted
		fx.jobs.mu.Unlock()
	}

	fx.proc.Process(context.Background(), "alice", job.ID, Params{Backend: constants.BackendDeepgram})

	fx.jobs.mu.Lock()
	status := fx.jobs.rows[job.ID].Status
	fx.jobs.mu.Unlock()
	if status != constants.JobStatusDeleted {
		t.Fatalf("row status = %s, want the delete to stick", status)
	}
	if len(fx.jobs.completed[job.ID]) != 0 {
		t.Errorf("a deleted job must not gain artifact rows")
	}
	if msg, failed := fx.jobs.failedMsg[job.ID]; failed {
		t.Errorf("a deleted job must not be re-marked FAILED, got %q", msg)
	}
}

func TestProcessIsolatesConcurrentOwners(t *testing.T) {
	tr := &stubTranscriber{result: &provider.Result{Text: "spoken words", AudioSeconds: 30, Language: "en"}}
	fx := newFixture(t, tr, nil)
	jobA := seedAudioJob(t, fx, "alice")
	jobB := seedAudioJob(t, fx, "bob")

	runs := []struct {
		owner string
		id    uuid.UUID
	}{
		{"alice", jobA.ID},
		{"bob", jobB.ID},
	}
	outs := make([]*entity.Job, len(runs))
	var wg sync.WaitGroup
	for i, run := range runs {
		wg.Add(1)
		go func(i int, owner string, id uuid.UUID) {
			defer wg.Done()
			outs[i] = fx.proc.Process(context.Background(), owner, id, Params{Backend: constants.BackendDeepgram})
		}(i, run.owner, run.id)
	}
	wg.Wait()

	for i, run := range runs {
		if outs[i].Status != constants.JobStatusDone {
			t.Fatalf("%s: status = %s (error: %v)", run.owner, outs[i].Status, outs[i].ErrorMessage)
		}
		arts := fx.jobs.completed[run.id]
		if len(arts) == 0 {
			t.Fatalf("%s: no artifacts recorded", run.owner)
		}
		prefix := blobstore.OutputPath(run.owner, run.id, "")
		for _, a := range arts {
			if !strings.HasPrefix(a.StorageRef, prefix) {
				t.Errorf("%s: artifact %s stored outside the owner prefix", run.owner, a.StorageRef)
			}
		}
	}

	owners := map[string]int{}
	for _, rec := range fx.recorder.records {
		owners[rec.OwnerID]++
	}
	if owners["alice"] != 1 || owners["bob"] != 1 {
		t.Errorf("usage records per owner = %v, want one each", owners)
	}
}

func TestProcessTranslationChunksAndMerges(t *testing.T) {
	tl := &stubTranslator{limits: provider.Limits{TokenBudget: 1000, MaxChunkTokens: 8}}
	fx := newFixture(t, nil, tl)

	id := uuid.New()
	j := &entity.Job{
		ID: id, OwnerID: "alice", JobType: constants.JobKindTranslation,
		Status: constants.JobStatusQueued, InputRef: "inline",
	}
	fx.jobs.add(j)

	text := "The first sentence is here. A second sentence follows it. " +
		"Then a third one arrives. Finally the fourth closes the document."
	out := fx.proc.Process(context.Background(), "alice", id, Params{
		Backend:    "stub",
		TargetLang: "fr",
		Text:       text,
	})

	if out.Status != constants.JobStatusDone {
		t.Fatalf("status = %s (error: %v)", out.Status, out.ErrorMessage)
	}
	if tl.calls < 2 {
		t.Errorf("translator calls = %d, want the text split into multiple chunks", tl.calls)
	}
	if len(fx.recorder.records) != tl.calls {
		t.Errorf("usage records = %d, want one per chunk (%d)", len(fx.recorder.records), tl.calls)
	}

	arts := fx.jobs.completed[id]
	if len(arts) != 1 || arts[0].Kind != constants.ArtifactTranslation {
		t.Fatalf("artifacts = %+v, want a single translation", arts)
	}
	rc, err := fx.store.Download(context.Background(), arts[0].StorageRef)
	if err != nil {
		t.Fatalf("download translation: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	for i := 1; i <= tl.calls; i++ {
		if !strings.Contains(string(data), fmt.Sprintf("[fr:%d]", i)) {
			t.Errorf("merged output missing chunk %d: %q", i, data)
		}
	}
}

func TestProcessTranslationFromStoredInput(t *testing.T) {
	tl := &stubTranslator{limits: provider.Limits{TokenBudget: 1000, MaxChunkTokens: 1000}}
	fx := newFixture(t, nil, tl)

	id := uuid.New()
	ref := blobstore.InputPath("alice", id, ".txt")
	fx.store.put(ref, []byte("Stored source text."))
	j := &entity.Job{
		ID: id, OwnerID: "alice", JobType: constants.JobKindTranslation,
		Status: constants.JobStatusQueued, InputRef: ref,
	}
	fx.jobs.add(j)

	out := fx.proc.Process(context.Background(), "alice", id, Params{
		Backend:    "stub",
		TargetLang: "de",
	})

	if out.Status != constants.JobStatusDone {
		t.Fatalf("status = %s (error: %v)", out.Status, out.ErrorMessage)
	}
	if tl.calls != 1 {
		t.Errorf("translator calls = %d, want 1", tl.calls)
	}
}

func TestProcessTranslationRequiresTargetLang(t *testing.T) {
	fx := newFixture(t, nil, &stubTranslator{})
	id := uuid.New()
	fx.jobs.add(&entity.Job{
		ID: id, OwnerID: "alice", JobType: constants.JobKindTranslation,
		Status: constants.JobStatusQueued, InputRef: "inline",
	})

	out := fx.proc.Process(context.Background(), "alice", id, Params{
		Backend: "stub",
		Text:    "some text",
	})

	if out.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want FAILED", out.Status)
	}
	if !strings.Contains(fx.jobs.failedMsg[id], "target language") {
		t.Errorf("failure = %q", fx.jobs.failedMsg[id])
	}
}

func TestWriteSRTFormatsTimestamps(t *testing.T) {
	srt := WriteSRT([]provider.Segment{
		{Start: 0, End: 1.5, Text: "one"},
		{Start: 3661.25, End: 3662, Speaker: "SPEAKER_01", Text: "two"},
	})
	want := "1\n00:00:00,000 --> 00:00:01,500\none\n\n" +
		"2\n01:01:01,250 --> 01:01:02,000\n[SPEAKER_01] two\n\n"
	if srt != want {
		t.Errorf("srt output:\n%q\nwant:\n%q", srt, want)
	}
}
