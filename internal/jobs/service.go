// Package jobs implements the ledger-facing operations: submitting
// work, listing and fetching rows, soft-deleting jobs, and minting
// download URLs for artifacts.
package jobs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/internal/blobstore"
	"github.com/scribepipe/scribepipe/internal/common"
	"github.com/scribepipe/scribepipe/internal/entity"
	"github.com/scribepipe/scribepipe/internal/repository"
)

// FileInput is an uploaded source object.
type FileInput struct {
	Content     []byte
	ContentType string
}

// SubmitRequest describes a new job. Exactly one of File and Text is
// set; transcription always requires File.
type SubmitRequest struct {
	OwnerID     string
	Kind        constants.JobKind
	DisplayName string
	File        *FileInput
	Text        string
}

// Service handles job ledger business logic.
type Service struct {
	logger *slog.Logger
	repo   repository.JobRepository
	store  blobstore.Store
	urlTTL time.Duration
}

func NewService(repo repository.JobRepository, store blobstore.Store, urlTTL time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if urlTTL <= 0 {
		urlTTL = 5 * time.Minute
	}
	return &Service{logger: logger, repo: repo, store: store, urlTTL: urlTTL}
}

// Submit validates the request, persists the input object under the
// owner's prefix, and inserts the QUEUED ledger row. The upload
// happens first: a row never references bytes that are not durable.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*entity.Job, error) {
	if err := validateOwnerID(req.OwnerID); err != nil {
		return nil, err
	}
	switch req.Kind {
	case constants.JobKindTranscription, constants.JobKindTranslation:
	default:
		return nil, common.InvalidInputError(fmt.Sprintf("unknown job type %q", req.Kind), nil)
	}

	hasFile := req.File != nil && len(req.File.Content) > 0
	hasText := strings.TrimSpace(req.Text) != ""
	if hasFile == hasText {
		return nil, common.InvalidInputError("provide exactly one of file and text", nil)
	}
	if req.Kind == constants.JobKindTranscription && !hasFile {
		return nil, common.InvalidInputError("transcription requires a file input", nil)
	}

	content := req.Text
	contentType := "text/plain"
	if hasFile {
		content = string(req.File.Content)
		contentType = constants.NormalizeContentType(req.File.ContentType)
	}
	if err := blobstore.ValidateUpload(int64(len(content)), contentType); err != nil {
		return nil, err
	}

	id := uuid.New()
	ref := blobstore.InputPath(req.OwnerID, id, constants.ExtForContentType(contentType))
	if err := s.store.Upload(ctx, ref, bytes.NewReader([]byte(content)), int64(len(content)), contentType); err != nil {
		return nil, err
	}

	var displayName *string
	if name := strings.TrimSpace(req.DisplayName); name != "" {
		displayName = &name
	}
	job, err := s.repo.Create(ctx, id, req.OwnerID, req.Kind, ref, displayName)
	if err != nil {
		// best effort: do not leak an orphaned input object
		if derr := s.store.Delete(ctx, ref); derr != nil {
			s.logger.Warn("jobs.submit.orphan_cleanup_failed", "ref", ref, "err", derr)
		}
		return nil, err
	}
	s.logger.Info("jobs.submitted",
		"job_id", job.ID,
		"owner_id", req.OwnerID,
		"job_type", req.Kind,
		"input_bytes", len(content),
	)
	return job, nil
}

// Get returns one job with its artifacts.
func (s *Service) Get(ctx context.Context, ownerID string, jobID uuid.UUID) (*entity.Job, error) {
	if err := validateOwnerID(ownerID); err != nil {
		return nil, err
	}
	return s.repo.GetForOwner(ctx, ownerID, jobID)
}

// List returns job summaries for an owner, newest first.
func (s *Service) List(ctx context.Context, ownerID string, f repository.JobFilters) ([]*entity.JobSummary, error) {
	if err := validateOwnerID(ownerID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, ownerID, f)
}

// Delete soft-deletes the ledger row. Artifact rows go with it; the
// stored bytes stay where they are. Deleting an already deleted job
// succeeds again.
func (s *Service) Delete(ctx context.Context, ownerID string, jobID uuid.UUID) error {
	if err := validateOwnerID(ownerID); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, ownerID, jobID); err != nil {
		return err
	}
	s.logger.Info("jobs.deleted", "job_id", jobID, "owner_id", ownerID)
	return nil
}

// ArtifactDownloadURL mints a time-limited URL for one artifact. A ttl
// of zero uses the service default; the default also caps requests.
func (s *Service) ArtifactDownloadURL(ctx context.Context, ownerID string, artifactID uuid.UUID, ttl time.Duration) (string, time.Duration, error) {
	if err := validateOwnerID(ownerID); err != nil {
		return "", 0, err
	}
	if ttl <= 0 || ttl > s.urlTTL {
		ttl = s.urlTTL
	}
	art, err := s.repo.GetArtifactForOwner(ctx, ownerID, artifactID)
	if err != nil {
		return "", 0, err
	}
	if err := blobstore.VerifyOwnership(art.StorageRef, ownerID); err != nil {
		return "", 0, err
	}
	url, err := s.store.SignedURL(ctx, art.StorageRef, ttl)
	if err != nil {
		return "", 0, err
	}
	return url, ttl, nil
}

func validateOwnerID(ownerID string) error {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return common.InvalidInputError("owner_id is required", nil)
	}
	if strings.Contains(ownerID, "/") || strings.Contains(ownerID, "..") {
		return common.InvalidInputError("owner_id contains path separators", nil)
	}
	return nil
}
