package utils

import (
	"time"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/gen/ent"
	jobspb "github.com/scribepipe/scribepipe/gen/proto/jobs/v1"
	"github.com/scribepipe/scribepipe/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToJob(e *ent.Job) *entity.Job {
	j := &entity.Job{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		JobType:      constants.JobKind(e.JobType),
		Status:       constants.JobStatus(e.Status),
		InputRef:     e.InputRef,
		DisplayName:  e.DisplayName,
		Backend:      e.Backend,
		ErrorMessage: e.ErrorMessage,
		CreatedAt:    e.CreatedAt,
		CompletedAt:  e.CompletedAt,
	}
	for _, a := range e.Edges.Artifacts {
		j.Artifacts = append(j.Artifacts, ToArtifact(a))
	}
	return j
}

func ToJobSummary(e *ent.Job) *entity.JobSummary {
	return &entity.JobSummary{
		ID:          e.ID,
		JobType:     constants.JobKind(e.JobType),
		Status:      constants.JobStatus(e.Status),
		DisplayName: e.DisplayName,
		CreatedAt:   e.CreatedAt,
		CompletedAt: e.CompletedAt,
	}
}

func ToArtifact(e *ent.Artifact) *entity.Artifact {
	return &entity.Artifact{
		ID:           e.ID,
		JobID:        e.JobID,
		ArtifactType: constants.ArtifactKind(e.ArtifactType),
		StorageRef:   e.StorageRef,
		SizeBytes:    e.SizeBytes,
		CreatedAt:    e.CreatedAt,
	}
}

func ToPBJob(j *entity.Job) *jobspb.Job {
	out := &jobspb.Job{
		Id:           j.ID.String(),
		OwnerId:      j.OwnerID,
		JobType:      string(j.JobType),
		Status:       string(j.Status),
		InputRef:     j.InputRef,
		DisplayName:  strOrEmpty(j.DisplayName),
		Backend:      strOrEmpty(j.Backend),
		ErrorMessage: strOrEmpty(j.ErrorMessage),
		CreatedAt:    j.CreatedAt.UTC().Format(time.RFC3339),
		CompletedAt:  timeOrEmpty(j.CompletedAt),
	}
	for _, a := range j.Artifacts {
		out.Artifacts = append(out.Artifacts, ToPBArtifact(a))
	}
	return out
}

func ToPBJobSummary(j *entity.JobSummary) *jobspb.JobSummary {
	return &jobspb.JobSummary{
		Id:          j.ID.String(),
		JobType:     string(j.JobType),
		Status:      string(j.Status),
		DisplayName: strOrEmpty(j.DisplayName),
		CreatedAt:   j.CreatedAt.UTC().Format(time.RFC3339),
		CompletedAt: timeOrEmpty(j.CompletedAt),
	}
}

func ToPBArtifact(a *entity.Artifact) *jobspb.Artifact {
	return &jobspb.Artifact{
		Id:           a.ID.String(),
		JobId:        a.JobID.String(),
		ArtifactType: string(a.ArtifactType),
		StorageRef:   a.StorageRef,
		SizeBytes:    a.SizeBytes,
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
