package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/gen/ent"
	"github.com/scribepipe/scribepipe/gen/ent/artifact"
	"github.com/scribepipe/scribepipe/gen/ent/job"
	"github.com/scribepipe/scribepipe/internal/common"
	"github.com/scribepipe/scribepipe/internal/entity"
	"github.com/scribepipe/scribepipe/internal/utils"
)

// JobFilters narrow a listing. Zero values mean "no filter".
type JobFilters struct {
	Status constants.JobStatus
	Kind   constants.JobKind
	Limit  int
	Offset int
}

// NewArtifact describes one output to record at completion time.
type NewArtifact struct {
	Kind       constants.ArtifactKind
	StorageRef string
	SizeBytes  int64
}

type JobRepository interface {
	Create(ctx context.Context, id uuid.UUID, ownerID string, kind constants.JobKind, inputRef string, displayName *string) (*entity.Job, error)
	// GetForOwner loads a job with its artifacts. A missing or deleted
	// job is a not-found error; a job owned by another tenant is an
	// ownership error.
	GetForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*entity.Job, error)

	// GetArtifactForOwner resolves an artifact through its job's owner.
	GetArtifactForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*entity.Artifact, error)
	List(ctx context.Context, ownerID string, f JobFilters) ([]*entity.JobSummary, error)
	// MarkProcessing is the durable checkpoint before provider work
	// begins. It only succeeds from QUEUED.
	MarkProcessing(ctx context.Context, id uuid.UUID, backend string) error
	// MarkFailed records the terminal failure. Like
	// CompleteWithArtifacts it only succeeds from PROCESSING, so a job
	// deleted mid-run stays deleted.
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	// CompleteWithArtifacts commits the terminal success state and the
	// artifact rows in one transaction. It only succeeds from
	// PROCESSING.
	CompleteWithArtifacts(ctx context.Context, id uuid.UUID, artifacts []NewArtifact) (*entity.Job, error)
	// SoftDelete hides the job and removes its artifact rows. Stored
	// bytes are retained; reclaiming them is a retention concern, not
	// part of deletion. Deleting an already deleted job is a no-op.
	SoftDelete(ctx context.Context, ownerID string, id uuid.UUID) error
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

// statusesAllowing lists the statuses a row may currently hold for a
// legal move into next. Every status write below is guarded with it so
// a row that raced into a terminal state is left untouched.
func statusesAllowing(next constants.JobStatus) []string {
	var out []string
	for _, s := range constants.JobStatuses {
		if constants.JobStatus(s).CanTransition(next) {
			out = append(out, s)
		}
	}
	return out
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, id uuid.UUID, ownerID string, kind constants.JobKind, inputRef string, displayName *string) (*entity.Job, error) {
	row, err := r.ent.Job.
		Create().
		SetID(id).
		SetOwnerID(ownerID).
		SetJobType(string(kind)).
		SetStatus(string(constants.JobStatusQueued)).
		SetInputRef(inputRef).
		SetNillableDisplayName(displayName).
		Save(ctx)
	if err != nil {
		r.log.Error("job create failed", "owner_id", ownerID, "err", err)
		return nil, common.WrapError(err, "create job")
	}
	r.log.Info("job created", "job_id", row.ID, "owner_id", ownerID, "job_type", kind)
	return utils.ToJob(row), nil
}

func (r *jobRepo) GetForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*entity.Job, error) {
	row, err := r.ent.Job.
		Query().
		Where(job.ID(id)).
		WithArtifacts().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundAppError("job not found")
		}
		return nil, common.WrapError(err, "get job")
	}
	if row.OwnerID != ownerID {
		r.log.Warn("cross-tenant job access denied", "job_id", id, "owner_id", ownerID)
		return nil, common.OwnershipError("job belongs to another owner")
	}
	if row.Status == string(constants.JobStatusDeleted) {
		return nil, common.NotFoundAppError("job not found")
	}
	return utils.ToJob(row), nil
}

func (r *jobRepo) GetArtifactForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*entity.Artifact, error) {
	row, err := r.ent.Artifact.
		Query().
		Where(artifact.ID(id)).
		WithJob().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundAppError("artifact not found")
		}
		return nil, common.WrapError(err, "get artifact")
	}
	parent := row.Edges.Job
	if parent == nil || parent.Status == string(constants.JobStatusDeleted) {
		return nil, common.NotFoundAppError("artifact not found")
	}
	if parent.OwnerID != ownerID {
		r.log.Warn("cross-tenant artifact access denied", "artifact_id", id, "owner_id", ownerID)
		return nil, common.OwnershipError("artifact belongs to another owner")
	}
	return utils.ToArtifact(row), nil
}

func (r *jobRepo) List(ctx context.Context, ownerID string, f JobFilters) ([]*entity.JobSummary, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	q := r.ent.Job.
		Query().
		Where(job.OwnerID(ownerID))
	if f.Status != "" {
		q = q.Where(job.Status(string(f.Status)))
	} else {
		q = q.Where(job.StatusNEQ(string(constants.JobStatusDeleted)))
	}
	if f.Kind != "" {
		q = q.Where(job.JobType(string(f.Kind)))
	}

	rows, err := q.
		Order(ent.Desc(job.FieldCreatedAt)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list jobs")
	}

	out := make([]*entity.JobSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToJobSummary(row))
	}
	return out, nil
}

func (r *jobRepo) MarkProcessing(ctx context.Context, id uuid.UUID, backend string) error {
	n, err := r.ent.Job.
		Update().
		Where(job.ID(id), job.StatusIn(statusesAllowing(constants.JobStatusProcessing)...)).
		SetStatus(string(constants.JobStatusProcessing)).
		SetBackend(backend).
		Save(ctx)
	if err != nil {
		r.log.Error("job mark processing failed", "job_id", id, "err", err)
		return common.WrapError(err, "mark processing")
	}
	if n == 0 {
		return common.InvalidInputError(fmt.Sprintf("job %s is not queued", id), nil)
	}
	r.log.Info("job processing", "job_id", id, "backend", backend)
	return nil
}

// MarkFailed only lands on a row still in flight: a job deleted or
// otherwise settled while the pipeline ran keeps its state.
func (r *jobRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	n, err := r.ent.Job.
		Update().
		Where(job.ID(id), job.StatusIn(statusesAllowing(constants.JobStatusFailed)...)).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("job mark failed failed", "job_id", id, "err", err)
		return common.WrapError(err, "mark failed")
	}
	if n == 0 {
		return common.InvalidInputError(fmt.Sprintf("job %s is not processing", id), nil)
	}
	r.log.Warn("job failed", "job_id", id, "error", message)
	return nil
}

func (r *jobRepo) CompleteWithArtifacts(ctx context.Context, id uuid.UUID, artifacts []NewArtifact) (*entity.Job, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, common.WrapError(err, "begin tx")
	}

	n, err := tx.Job.
		Update().
		Where(job.ID(id), job.StatusIn(statusesAllowing(constants.JobStatusDone)...)).
		SetStatus(string(constants.JobStatusDone)).
		SetCompletedAt(time.Now()).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, common.WrapError(err, "complete job")
	}
	if n == 0 {
		// the row left PROCESSING while the pipeline ran, most likely a
		// concurrent delete; do not resurrect it
		_ = tx.Rollback()
		return nil, common.InvalidInputError(fmt.Sprintf("job %s is not processing", id), nil)
	}

	row, err := tx.Job.
		Query().
		Where(job.ID(id)).
		Only(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, common.WrapError(err, "reload completed job")
	}

	builders := make([]*ent.ArtifactCreate, 0, len(artifacts))
	for _, a := range artifacts {
		builders = append(builders, tx.Artifact.
			Create().
			SetJobID(id).
			SetArtifactType(string(a.Kind)).
			SetStorageRef(a.StorageRef).
			SetSizeBytes(a.SizeBytes))
	}
	rows, err := tx.Artifact.CreateBulk(builders...).Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, common.WrapError(err, "create artifacts")
	}

	if err := tx.Commit(); err != nil {
		return nil, common.WrapError(err, "commit completion")
	}

	out := utils.ToJob(row)
	for _, a := range rows {
		out.Artifacts = append(out.Artifacts, utils.ToArtifact(a))
	}
	r.log.Info("job done", "job_id", id, "artifacts", len(rows))
	return out, nil
}

func (r *jobRepo) SoftDelete(ctx context.Context, ownerID string, id uuid.UUID) error {
	row, err := r.ent.Job.
		Query().
		Where(job.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NotFoundAppError("job not found")
		}
		return common.WrapError(err, "get job")
	}
	if row.OwnerID != ownerID {
		return common.OwnershipError("job belongs to another owner")
	}
	if row.Status == string(constants.JobStatusDeleted) {
		return nil
	}

	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return common.WrapError(err, "begin tx")
	}

	removed, err := tx.Artifact.
		Delete().
		Where(artifact.JobID(id)).
		Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		return common.WrapError(err, "delete artifacts")
	}
	if _, err := tx.Job.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusDeleted)).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return common.WrapError(err, "mark deleted")
	}
	if err := tx.Commit(); err != nil {
		return common.WrapError(err, "commit delete")
	}

	r.log.Info("job deleted", "job_id", id, "owner_id", ownerID, "artifact_rows_removed", removed)
	return nil
}
