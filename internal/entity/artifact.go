package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/scribepipe/scribepipe/constants"
)

// Artifact represents an output object reference, never its content.
type Artifact struct {
	ID           uuid.UUID              `json:"id"`
	JobID        uuid.UUID              `json:"job_id"`
	ArtifactType constants.ArtifactKind `json:"artifact_type"`
	StorageRef   string                 `json:"storage_ref"`
	SizeBytes    int64                  `json:"size_bytes"`
	CreatedAt    time.Time              `json:"created_at"`
}
