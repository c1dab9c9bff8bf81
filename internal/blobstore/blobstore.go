// Package blobstore provides tenant-scoped object storage for job
// inputs and artifacts. Supported backends: local filesystem, Amazon
// S3 (and S3-compatible services).
package blobstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/internal/common"
)

// FileInfo contains metadata about a stored object.
type FileInfo struct {
	Path         string
	Size         int64
	LastModified time.Time
}

// Store defines the interface for tenant-scoped object storage.
// Writes go through Upload, which enforces the size and content-type
// limits before any byte is persisted.
type Store interface {
	// Upload writes data from reader to the given path after
	// validating declared size and content type.
	Upload(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error

	// Download returns a reader for the object at the given path.
	// The caller is responsible for closing the returned ReadCloser.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the object at the given path. Returns nil if the
	// object does not exist.
	Delete(ctx context.Context, path string) error

	// Exists checks whether an object exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// List returns metadata for all objects whose path starts with prefix.
	List(ctx context.Context, prefix string) ([]FileInfo, error)

	// SignedURL returns a time-limited URL for private object access.
	SignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

// InputPath builds the canonical location of a job's original input.
func InputPath(ownerID string, jobID uuid.UUID, ext string) string {
	return fmt.Sprintf("users/%s/jobs/%s/input/original%s", ownerID, jobID, ext)
}

// OutputPath builds the canonical location of a named artifact.
func OutputPath(ownerID string, jobID uuid.UUID, name string) string {
	return fmt.Sprintf("users/%s/jobs/%s/output/%s", ownerID, jobID, name)
}

// OwnerPrefix is the path prefix every object belonging to a tenant
// lives under.
func OwnerPrefix(ownerID string) string {
	return fmt.Sprintf("users/%s/", ownerID)
}

// VerifyOwnership checks structurally that path belongs to ownerID.
// This is the sole byte-level authorization in the system, so every
// read, delete, and URL-signing path must call it first.
func VerifyOwnership(path, ownerID string) error {
	if ownerID == "" || strings.Contains(ownerID, "/") || strings.Contains(ownerID, "..") {
		return common.OwnershipError("invalid owner id")
	}
	clean := strings.TrimPrefix(path, "/")
	if strings.Contains(clean, "..") || !strings.HasPrefix(clean, OwnerPrefix(ownerID)) {
		return common.OwnershipError(fmt.Sprintf("path does not belong to owner %s", ownerID))
	}
	return nil
}

// ValidateUpload applies the size cap and content-type allow-list.
// Called by every backend before persisting anything.
func ValidateUpload(size int64, contentType string) error {
	if size <= 0 {
		return common.InvalidInputError("upload size must be positive", nil)
	}
	if size > constants.MaxUploadSizeBytes {
		return common.InvalidInputError(
			fmt.Sprintf("upload exceeds %dMB limit", constants.MaxUploadSizeMB), nil)
	}
	if !constants.ContentTypeAllowed(contentType) {
		return common.InvalidInputError(
			fmt.Sprintf("content type %q is not allowed", contentType), nil)
	}
	return nil
}
