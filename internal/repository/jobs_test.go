package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/gen/ent/artifact"
	"github.com/scribepipe/scribepipe/internal/common"
)

func newTestRepo(t *testing.T) (JobRepository, *DBHandle) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h, err := InitDatabase(context.Background(), common.DatabaseConfig{}, true, logger)
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	t.Cleanup(h.Cleanup)
	return NewJobRepository(h.Client, logger), h
}

func seedJob(t *testing.T, repo JobRepository, owner string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	ref := "users/" + owner + "/jobs/" + id.String() + "/input/original.mp3"
	if _, err := repo.Create(context.Background(), id, owner, constants.JobKindTranscription, ref, nil); err != nil {
		t.Fatalf("create job: %v", err)
	}
	return id
}

func TestTerminalWritesRequireProcessing(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	id := seedJob(t, repo, "alice")

	if _, err := repo.CompleteWithArtifacts(ctx, id, nil); common.KindOf(err) != common.KindValidation {
		t.Errorf("complete from QUEUED: err = %v, want a conflict", err)
	}
	if err := repo.MarkFailed(ctx, id, "boom"); common.KindOf(err) != common.KindValidation {
		t.Errorf("fail from QUEUED: err = %v, want a conflict", err)
	}

	job, err := repo.GetForOwner(ctx, "alice", id)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if job.Status != constants.JobStatusQueued {
		t.Errorf("status = %s, want the row left QUEUED", job.Status)
	}
}

func TestCompleteDoesNotResurrectDeletedJob(t *testing.T) {
	repo, h := newTestRepo(t)
	ctx := context.Background()
	id := seedJob(t, repo, "alice")

	if err := repo.MarkProcessing(ctx, id, constants.BackendDeepgram); err != nil {
		t.Fatalf("mark processing: %v", err)
	}
	if err := repo.SoftDelete(ctx, "alice", id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err := repo.CompleteWithArtifacts(ctx, id, []NewArtifact{{
		Kind:       constants.ArtifactTranscript,
		StorageRef: "users/alice/jobs/" + id.String() + "/output/transcript.txt",
		SizeBytes:  5,
	}})
	if common.KindOf(err) != common.KindValidation {
		t.Fatalf("complete after delete: err = %v, want a conflict", err)
	}

	row, err := h.Client.Job.Get(ctx, id)
	if err != nil {
		t.Fatalf("reload row: %v", err)
	}
	if row.Status != string(constants.JobStatusDeleted) {
		t.Errorf("status = %s, want DELETED to stick", row.Status)
	}
	n, err := h.Client.Artifact.Query().Where(artifact.JobID(id)).Count(ctx)
	if err != nil {
		t.Fatalf("count artifacts: %v", err)
	}
	if n != 0 {
		t.Errorf("artifact rows = %d, want none on a deleted job", n)
	}
}

func TestMarkFailedDoesNotRegressDeletedJob(t *testing.T) {
	repo, h := newTestRepo(t)
	ctx := context.Background()
	id := seedJob(t, repo, "alice")

	if err := repo.MarkProcessing(ctx, id, constants.BackendDeepgram); err != nil {
		t.Fatalf("mark processing: %v", err)
	}
	if err := repo.SoftDelete(ctx, "alice", id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := repo.MarkFailed(ctx, id, "provider blew up"); common.KindOf(err) != common.KindValidation {
		t.Fatalf("fail after delete: err = %v, want a conflict", err)
	}

	row, err := h.Client.Job.Get(ctx, id)
	if err != nil {
		t.Fatalf("reload row: %v", err)
	}
	if row.Status != string(constants.JobStatusDeleted) {
		t.Errorf("status = %s, want DELETED to stick", row.Status)
	}
	if row.ErrorMessage != nil {
		t.Errorf("error message set on a deleted row: %q", *row.ErrorMessage)
	}
}

func TestSoftDeleteTwiceSucceeds(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	id := seedJob(t, repo, "alice")

	if err := repo.SoftDelete(ctx, "alice", id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.SoftDelete(ctx, "alice", id); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := repo.GetForOwner(ctx, "alice", id); common.KindOf(err) != common.KindNotFound {
		t.Errorf("get after delete: err = %v, want not found", err)
	}
}
