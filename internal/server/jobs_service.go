package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/scribepipe/scribepipe/constants"
	jobspb "github.com/scribepipe/scribepipe/gen/proto/jobs/v1"
	"github.com/scribepipe/scribepipe/internal/common"
	"github.com/scribepipe/scribepipe/internal/jobs"
	"github.com/scribepipe/scribepipe/internal/pipeline"
	"github.com/scribepipe/scribepipe/internal/repository"
	"github.com/scribepipe/scribepipe/internal/utils"
)

// JobsService exposes the job ledger over gRPC.
type JobsService struct {
	jobspb.UnimplementedJobsServiceServer
	svc    *jobs.Service
	proc   *pipeline.Processor
	logger *slog.Logger
}

func NewJobsService(svc *jobs.Service, proc *pipeline.Processor, logger *slog.Logger) *JobsService {
	return &JobsService{svc: svc, proc: proc, logger: logger}
}

func (s *JobsService) SubmitJob(ctx context.Context, req *jobspb.SubmitJobRequest) (*jobspb.SubmitJobResponse, error) {
	sub := jobs.SubmitRequest{
		OwnerID:     strings.TrimSpace(req.GetOwnerId()),
		Kind:        constants.JobKind(strings.ToUpper(strings.TrimSpace(req.GetJobType()))),
		DisplayName: req.GetDisplayName(),
		Text:        req.GetText(),
	}
	if f := req.GetFile(); f != nil {
		sub.File = &jobs.FileInput{Content: f.GetContent(), ContentType: f.GetContentType()}
	}

	job, err := s.svc.Submit(ctx, sub)
	if err != nil {
		s.logger.Error("submit job failed", "owner_id", sub.OwnerID, "error", err)
		return nil, common.ToGRPC(err)
	}
	return &jobspb.SubmitJobResponse{Job: utils.ToPBJob(job)}, nil
}

func (s *JobsService) ProcessJob(ctx context.Context, req *jobspb.ProcessJobRequest) (*jobspb.ProcessJobResponse, error) {
	ownerID, jobID, err := ownerAndJobID(req.GetOwnerId(), req.GetJobId())
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetBackend()) == "" {
		return nil, status.Error(codes.InvalidArgument, "backend is required")
	}
	v := common.NewValidator()
	if lang := strings.TrimSpace(req.GetSourceLanguage()); lang != "" {
		v.Field("source_language", lang, common.LanguageCode)
	}
	if lang := strings.TrimSpace(req.GetTargetLanguage()); lang != "" {
		v.Field("target_language", lang, common.LanguageCode)
	}
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	// Resolve first so missing rows and foreign rows surface as proper
	// codes instead of a FAILED snapshot.
	resolved, err := s.svc.Get(ctx, ownerID, jobID)
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	if resolved.Status.Terminal() {
		return nil, status.Errorf(codes.FailedPrecondition, "job is already %s", resolved.Status)
	}

	job := s.proc.Process(ctx, ownerID, jobID, pipeline.Params{
		Backend:    strings.TrimSpace(req.GetBackend()),
		SourceLang: strings.TrimSpace(req.GetSourceLanguage()),
		TargetLang: strings.TrimSpace(req.GetTargetLanguage()),
		Diarize:    req.GetDiarize(),
		Text:       req.GetText(),
	})
	return &jobspb.ProcessJobResponse{Job: utils.ToPBJob(job)}, nil
}

func (s *JobsService) ListJobs(ctx context.Context, req *jobspb.ListJobsRequest) (*jobspb.ListJobsResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		return nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}

	f := repository.JobFilters{
		Limit:  int(req.GetLimit()),
		Offset: int(req.GetOffset()),
	}
	if v := strings.ToUpper(strings.TrimSpace(req.GetStatus())); v != "" {
		f.Status = constants.JobStatus(v)
		if !validStatus(f.Status) {
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", v)
		}
	}
	if v := strings.ToUpper(strings.TrimSpace(req.GetJobType())); v != "" {
		f.Kind = constants.JobKind(v)
		if f.Kind != constants.JobKindTranscription && f.Kind != constants.JobKindTranslation {
			return nil, status.Errorf(codes.InvalidArgument, "unknown job type %q", v)
		}
	}

	sums, err := s.svc.List(ctx, ownerID, f)
	if err != nil {
		s.logger.Error("list jobs failed", "owner_id", ownerID, "error", err)
		return nil, common.ToGRPC(err)
	}
	out := make([]*jobspb.JobSummary, 0, len(sums))
	for _, j := range sums {
		out = append(out, utils.ToPBJobSummary(j))
	}
	return &jobspb.ListJobsResponse{Jobs: out}, nil
}

func (s *JobsService) GetJob(ctx context.Context, req *jobspb.GetJobRequest) (*jobspb.GetJobResponse, error) {
	ownerID, jobID, err := ownerAndJobID(req.GetOwnerId(), req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.svc.Get(ctx, ownerID, jobID)
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	return &jobspb.GetJobResponse{Job: utils.ToPBJob(job)}, nil
}

func (s *JobsService) DeleteJob(ctx context.Context, req *jobspb.DeleteJobRequest) (*jobspb.DeleteJobResponse, error) {
	ownerID, jobID, err := ownerAndJobID(req.GetOwnerId(), req.GetJobId())
	if err != nil {
		return nil, err
	}
	if err := s.svc.Delete(ctx, ownerID, jobID); err != nil {
		s.logger.Error("delete job failed", "owner_id", ownerID, "job_id", jobID, "error", err)
		return nil, common.ToGRPC(err)
	}
	return &jobspb.DeleteJobResponse{}, nil
}

func (s *JobsService) ListArtifacts(ctx context.Context, req *jobspb.ListArtifactsRequest) (*jobspb.ListArtifactsResponse, error) {
	ownerID, jobID, err := ownerAndJobID(req.GetOwnerId(), req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.svc.Get(ctx, ownerID, jobID)
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	out := make([]*jobspb.Artifact, 0, len(job.Artifacts))
	for _, a := range job.Artifacts {
		out = append(out, utils.ToPBArtifact(a))
	}
	return &jobspb.ListArtifactsResponse{Artifacts: out}, nil
}

func (s *JobsService) GetArtifactDownloadURL(ctx context.Context, req *jobspb.GetArtifactDownloadURLRequest) (*jobspb.GetArtifactDownloadURLResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		return nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}
	artifactID, err := uuid.Parse(strings.TrimSpace(req.GetArtifactId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "artifact_id must be a UUID")
	}

	ttl := time.Duration(req.GetTtlSeconds()) * time.Second
	url, granted, err := s.svc.ArtifactDownloadURL(ctx, ownerID, artifactID, ttl)
	if err != nil {
		s.logger.Error("artifact url failed", "owner_id", ownerID, "artifact_id", artifactID, "error", err)
		return nil, common.ToGRPC(err)
	}
	return &jobspb.GetArtifactDownloadURLResponse{
		Url:       url,
		ExpiresAt: time.Now().Add(granted).UTC().Format(time.RFC3339),
	}, nil
}

func ownerAndJobID(owner, job string) (string, uuid.UUID, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return "", uuid.Nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}
	id, err := uuid.Parse(strings.TrimSpace(job))
	if err != nil {
		return "", uuid.Nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	return owner, id, nil
}

func validStatus(s constants.JobStatus) bool {
	switch s {
	case constants.JobStatusQueued, constants.JobStatusProcessing,
		constants.JobStatusDone, constants.JobStatusFailed, constants.JobStatusDeleted:
		return true
	}
	return false
}
