package repository

import (
	"context"
	"log/slog"

	"github.com/scribepipe/scribepipe/gen/ent"
	"github.com/scribepipe/scribepipe/internal/common"
	"github.com/scribepipe/scribepipe/internal/entity"
)

// UsageRecordRepository appends usage rows. There is deliberately no
// update or delete surface.
type UsageRecordRepository interface {
	Append(ctx context.Context, rec *entity.UsageRecord) error
}

type usageRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewUsageRecordRepository(entc *ent.Client, log *slog.Logger) UsageRecordRepository {
	return &usageRepo{ent: entc, log: log}
}

func (r *usageRepo) Append(ctx context.Context, rec *entity.UsageRecord) error {
	c := r.ent.UsageRecord.
		Create().
		SetOwnerID(rec.OwnerID).
		SetService(string(rec.Service)).
		SetBackend(rec.Backend).
		SetAudioSeconds(rec.AudioSeconds).
		SetTokensUsed(rec.TokensUsed).
		SetCharactersProcessed(rec.CharactersProcessed).
		SetCostUsd(rec.CostUSD)
	if rec.JobID != nil {
		c = c.SetJobID(*rec.JobID)
	}
	if _, err := c.Save(ctx); err != nil {
		r.log.Error("usage append failed", "owner_id", rec.OwnerID, "backend", rec.Backend, "err", err)
		return common.WrapError(err, "append usage record")
	}
	return nil
}
