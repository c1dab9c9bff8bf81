// Package usage appends billable-usage records. Rows are write-only
// from this package; aggregation happens on the read side.
package usage

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/internal/common"
	"github.com/scribepipe/scribepipe/internal/entity"
)

// Recorder persists one usage row. Implemented by the repository
// layer.
type Recorder interface {
	Append(ctx context.Context, rec *entity.UsageRecord) error
}

// Quantity expresses the billable size of one provider call. Exactly
// one field is non-zero, matching how the backend bills.
type Quantity struct {
	AudioSeconds float64
	Tokens       int64
	Characters   int64
}

// per-unit USD rates by backend: minutes for audio, single tokens or
// characters for text
var perMinuteRates = map[string]float64{
	constants.BackendDeepgram:   0.0043,
	constants.BackendWhisper:    0.006,
	constants.BackendAssemblyAI: 0.0062,
}

var perTokenRates = map[string]float64{
	constants.BackendOpenAI:   0.00000075,
	constants.BackendDeepSeek: 0.00000027,
}

var perCharacterRates = map[string]float64{
	constants.BackendGoogle: 0.00002,
}

// Meter converts provider quantities into priced usage rows.
type Meter struct {
	recorder Recorder
	logger   *slog.Logger
}

func NewMeter(recorder Recorder, logger *slog.Logger) *Meter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Meter{recorder: recorder, logger: logger}
}

// Record appends one usage row for a single provider invocation.
func (m *Meter) Record(ctx context.Context, ownerID string, jobID uuid.UUID, service constants.JobKind, backend string, q Quantity) error {
	if err := validateQuantity(q); err != nil {
		return err
	}

	rec := &entity.UsageRecord{
		OwnerID:             ownerID,
		Service:             service,
		Backend:             backend,
		AudioSeconds:        q.AudioSeconds,
		TokensUsed:          q.Tokens,
		CharactersProcessed: q.Characters,
		CostUSD:             Cost(backend, q),
	}
	if jobID != uuid.Nil {
		rec.JobID = &jobID
	}

	if err := m.recorder.Append(ctx, rec); err != nil {
		return err
	}
	m.logger.Info("usage.recorded",
		"owner_id", ownerID,
		"job_id", jobID,
		"service", service,
		"backend", backend,
		"audio_s", q.AudioSeconds,
		"tokens", q.Tokens,
		"characters", q.Characters,
		"cost_usd", rec.CostUSD,
	)
	return nil
}

// Cost prices a quantity for a backend. Unknown backends price at
// zero rather than failing the job.
func Cost(backend string, q Quantity) float64 {
	switch {
	case q.AudioSeconds > 0:
		return q.AudioSeconds / 60 * perMinuteRates[backend]
	case q.Tokens > 0:
		return float64(q.Tokens) * perTokenRates[backend]
	case q.Characters > 0:
		return float64(q.Characters) * perCharacterRates[backend]
	}
	return 0
}

func validateQuantity(q Quantity) error {
	set := 0
	if q.AudioSeconds > 0 {
		set++
	}
	if q.Tokens > 0 {
		set++
	}
	if q.Characters > 0 {
		set++
	}
	if set != 1 {
		return common.InvalidInputError("usage quantity must populate exactly one dimension", nil)
	}
	return nil
}
