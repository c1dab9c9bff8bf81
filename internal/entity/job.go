package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/scribepipe/scribepipe/constants"
)

// Job represents a ledger row for data transfer between layers.
type Job struct {
	ID           uuid.UUID           `json:"id"`
	OwnerID      string              `json:"owner_id"`
	JobType      constants.JobKind   `json:"job_type"`
	Status       constants.JobStatus `json:"status"`
	InputRef     string              `json:"input_ref"`
	DisplayName  *string             `json:"display_name,omitempty"`
	Backend      *string             `json:"backend,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
	Artifacts    []*Artifact         `json:"artifacts,omitempty"`
}

// JobSummary is the lightweight projection returned by listings.
type JobSummary struct {
	ID          uuid.UUID           `json:"id"`
	JobType     constants.JobKind   `json:"job_type"`
	Status      constants.JobStatus `json:"status"`
	DisplayName *string             `json:"display_name,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
}
