package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/scribepipe/scribepipe/constants"
)

// UsageRecord represents one billable unit of provider work.
type UsageRecord struct {
	ID                  uuid.UUID         `json:"id"`
	OwnerID             string            `json:"owner_id"`
	JobID               *uuid.UUID        `json:"job_id,omitempty"`
	Service             constants.JobKind `json:"service"`
	Backend             string            `json:"backend"`
	AudioSeconds        float64           `json:"audio_seconds"`
	TokensUsed          int64             `json:"tokens_used"`
	CharactersProcessed int64             `json:"characters_processed"`
	CostUSD             float64           `json:"cost_usd"`
	CreatedAt           time.Time         `json:"created_at"`
}
