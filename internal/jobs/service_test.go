package jobs

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/internal/blobstore"
	"github.com/scribepipe/scribepipe/internal/common"
	"github.com/scribepipe/scribepipe/internal/entity"
	"github.com/scribepipe/scribepipe/internal/repository"
)

type fakeRepo struct {
	createErr error
	created   []*entity.Job
	deleted   []uuid.UUID
	deleteErr error
	artifact  *entity.Artifact
	artErr    error
}

func (f *fakeRepo) Create(ctx context.Context, id uuid.UUID, ownerID string, kind constants.JobKind, inputRef string, displayName *string) (*entity.Job, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	j := &entity.Job{
		ID: id, OwnerID: ownerID, JobType: kind,
		Status: constants.JobStatusQueued, InputRef: inputRef,
		DisplayName: displayName, CreatedAt: time.Now(),
	}
	f.created = append(f.created, j)
	return j, nil
}

func (f *fakeRepo) GetForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*entity.Job, error) {
	for _, j := range f.created {
		if j.ID == id && j.OwnerID == ownerID {
			return j, nil
		}
	}
	return nil, common.NotFoundAppError("job not found")
}

func (f *fakeRepo) GetArtifactForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*entity.Artifact, error) {
	if f.artErr != nil {
		return nil, f.artErr
	}
	return f.artifact, nil
}

func (f *fakeRepo) List(ctx context.Context, ownerID string, filters repository.JobFilters) ([]*entity.JobSummary, error) {
	return nil, nil
}

func (f *fakeRepo) MarkProcessing(ctx context.Context, id uuid.UUID, backend string) error {
	return nil
}

func (f *fakeRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	return nil
}

func (f *fakeRepo) CompleteWithArtifacts(ctx context.Context, id uuid.UUID, artifacts []repository.NewArtifact) (*entity.Job, error) {
	return nil, nil
}

func (f *fakeRepo) SoftDelete(ctx context.Context, ownerID string, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemStore() *memStore { return &memStore{objects: map[string][]byte{}} }

func (s *memStore) Upload(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error {
	if err := blobstore.ValidateUpload(size, contentType); err != nil {
		return err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = data
	return nil
}

func (s *memStore) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[path]
	if !ok {
		return nil, common.NotFoundAppError("object not found")
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
	return out, nil
}

func (s *memStore) SignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "https://signed.example/" + path, nil
}

func newService(repo *fakeRepo, store *memStore) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, store, 5*time.Minute, logger)
}

func TestSubmitFilePersistsInputBeforeRow(t *testing.T) {
	repo := &fakeRepo{}
	store := newMemStore()
	svc := newService(repo, store)

	job, err := svc.Submit(context.Background(), SubmitRequest{
		OwnerID:     "alice",
		Kind:        constants.JobKindTranscription,
		DisplayName: "  meeting recording  ",
		File:        &FileInput{Content: []byte("audio-bytes"), ContentType: "audio/mpeg"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if job.Status != constants.JobStatusQueued {
		t.Errorf("status = %s, want QUEUED", job.Status)
	}
	wantRef := blobstore.InputPath("alice", job.ID, ".mp3")
	if job.InputRef != wantRef {
		t.Errorf("input ref = %q, want %q", job.InputRef, wantRef)
	}
	if exists, _ := store.Exists(context.Background(), wantRef); !exists {
		t.Errorf("input object missing at %s", wantRef)
	}
	if job.DisplayName == nil || *job.DisplayName != "meeting recording" {
		t.Errorf("display name = %v, want trimmed value", job.DisplayName)
	}
}

func TestSubmitInlineTextStoredAsPlainText(t *testing.T) {
	repo := &fakeRepo{}
	store := newMemStore()
	svc := newService(repo, store)

	job, err := svc.Submit(context.Background(), SubmitRequest{
		OwnerID: "alice",
		Kind:    constants.JobKindTranslation,
		Text:    "bonjour tout le monde",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.HasSuffix(job.InputRef, ".txt") {
		t.Errorf("input ref = %q, want .txt object", job.InputRef)
	}
	rc, err := store.Download(context.Background(), job.InputRef)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != "bonjour tout le monde" {
		t.Errorf("stored input = %q", data)
	}
}

func TestSubmitValidation(t *testing.T) {
	repo := &fakeRepo{}
	store := newMemStore()
	svc := newService(repo, store)
	ctx := context.Background()

	cases := []struct {
		name string
		req  SubmitRequest
	}{
		{"missing owner", SubmitRequest{Kind: constants.JobKindTranslation, Text: "x"}},
		{"owner with separator", SubmitRequest{OwnerID: "a/b", Kind: constants.JobKindTranslation, Text: "x"}},
		{"unknown kind", SubmitRequest{OwnerID: "alice", Kind: "OCR", Text: "x"}},
		{"neither input", SubmitRequest{OwnerID: "alice", Kind: constants.JobKindTranslation}},
		{"both inputs", SubmitRequest{
			OwnerID: "alice", Kind: constants.JobKindTranslation, Text: "x",
			File: &FileInput{Content: []byte("y"), ContentType: "text/plain"},
		}},
		{"transcription without file", SubmitRequest{
			OwnerID: "alice", Kind: constants.JobKindTranscription, Text: "x",
		}},
		{"disallowed content type", SubmitRequest{
			OwnerID: "alice", Kind: constants.JobKindTranscription,
			File: &FileInput{Content: []byte("x"), ContentType: "application/zip"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tc.req)
			if common.KindOf(err) != common.KindValidation {
				t.Errorf("error = %v, want validation kind", err)
			}
		})
	}
	if len(repo.created) != 0 {
		t.Errorf("no rows should be created on validation failure")
	}
	if objs, _ := store.List(ctx, ""); len(objs) != 0 {
		t.Errorf("no objects should be stored on validation failure, got %v", objs)
	}
}

func TestSubmitCleansUpOrphanOnRowFailure(t *testing.T) {
	repo := &fakeRepo{createErr: common.WrapError(io.ErrClosedPipe, "create job")}
	store := newMemStore()
	svc := newService(repo, store)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		OwnerID: "alice",
		Kind:    constants.JobKindTranslation,
		Text:    "some text",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if objs, _ := store.List(context.Background(), ""); len(objs) != 0 {
		t.Errorf("orphaned input left behind: %v", objs)
	}
}

func TestDeleteRetainsStoredBytes(t *testing.T) {
	id := uuid.New()
	input := blobstore.InputPath("alice", id, ".mp3")
	output := blobstore.OutputPath("alice", id, "transcript.txt")
	repo := &fakeRepo{}
	store := newMemStore()
	store.objects[input] = []byte("a")
	store.objects[output] = []byte("b")
	svc := newService(repo, store)

	if err := svc.Delete(context.Background(), "alice", id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != id {
		t.Errorf("soft delete not recorded for %s", id)
	}
	if objs, _ := store.List(context.Background(), ""); len(objs) != 2 {
		t.Errorf("stored bytes must survive a soft delete, got %v", objs)
	}
}

func TestDeleteRejectsBadOwner(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, newMemStore())

	err := svc.Delete(context.Background(), "a/b", uuid.New())
	if common.KindOf(err) != common.KindValidation {
		t.Errorf("error = %v, want validation kind", err)
	}
	if len(repo.deleted) != 0 {
		t.Errorf("no delete should reach the repository")
	}
}

func TestArtifactDownloadURL(t *testing.T) {
	jobID := uuid.New()
	artID := uuid.New()
	ref := blobstore.OutputPath("alice", jobID, "transcript.txt")
	repo := &fakeRepo{artifact: &entity.Artifact{
		ID: artID, JobID: jobID,
		ArtifactType: constants.ArtifactTranscript,
		StorageRef:   ref,
	}}
	svc := newService(repo, newMemStore())

	url, ttl, err := svc.ArtifactDownloadURL(context.Background(), "alice", artID, 0)
	if err != nil {
		t.Fatalf("download url: %v", err)
	}
	if !strings.Contains(url, ref) {
		t.Errorf("url = %q, want it to reference %q", url, ref)
	}
	if ttl != 5*time.Minute {
		t.Errorf("ttl = %v, want the default", ttl)
	}

	_, ttl, err = svc.ArtifactDownloadURL(context.Background(), "alice", artID, time.Hour)
	if err != nil {
		t.Fatalf("download url: %v", err)
	}
	if ttl != 5*time.Minute {
		t.Errorf("ttl = %v, want clamped to the default", ttl)
	}
}

func TestArtifactDownloadURLEnforcesOwnership(t *testing.T) {
	jobID := uuid.New()
	artID := uuid.New()
	repo := &fakeRepo{artifact: &entity.Artifact{
		ID: artID, JobID: jobID,
		ArtifactType: constants.ArtifactTranscript,
		StorageRef:   blobstore.OutputPath("bob", jobID, "transcript.txt"),
	}}
	svc := newService(repo, newMemStore())

	_, _, err := svc.ArtifactDownloadURL(context.Background(), "alice", artID, 0)
	if common.KindOf(err) != common.KindOwnership {
		t.Errorf("error = %v, want ownership kind", err)
	}
}
