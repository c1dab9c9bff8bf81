package usage

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/internal/common"
	"github.com/scribepipe/scribepipe/internal/entity"
)

type captureRecorder struct {
	records []*entity.UsageRecord
	err     error
}

func (r *captureRecorder) Append(_ context.Context, rec *entity.UsageRecord) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, rec)
	return nil
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRecordAudioUsage(t *testing.T) {
	rec := &captureRecorder{}
	m := NewMeter(rec, nil)
	jobID := uuid.New()

	err := m.Record(context.Background(), "tenant-a", jobID,
		constants.JobKindTranscription, constants.BackendDeepgram,
		Quantity{AudioSeconds: 600})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if len(rec.records) != 1 {
		t.Fatalf("records = %d", len(rec.records))
	}
	got := rec.records[0]
	if got.OwnerID != "tenant-a" || got.Backend != constants.BackendDeepgram {
		t.Errorf("record = %+v", got)
	}
	if got.JobID == nil || *got.JobID != jobID {
		t.Errorf("job id not carried")
	}
	if got.AudioSeconds != 600 || got.TokensUsed != 0 || got.CharactersProcessed != 0 {
		t.Errorf("quantities = %+v", got)
	}
	// 10 minutes at the deepgram rate
	if !almostEqual(got.CostUSD, 10*0.0043) {
		t.Errorf("cost = %f", got.CostUSD)
	}
}

func TestRecordRejectsAmbiguousQuantity(t *testing.T) {
	m := NewMeter(&captureRecorder{}, nil)

	cases := []Quantity{
		{},
		{AudioSeconds: 10, Tokens: 10},
		{Tokens: 10, Characters: 10},
	}
	for i, q := range cases {
		err := m.Record(context.Background(), "tenant-a", uuid.Nil,
			constants.JobKindTranslation, constants.BackendOpenAI, q)
		if common.KindOf(err) != common.KindValidation {
			t.Errorf("case %d: kind = %s, want %s", i, common.KindOf(err), common.KindValidation)
		}
	}
}

func TestCostTable(t *testing.T) {
	cases := []struct {
		backend string
		q       Quantity
		want    float64
	}{
		{constants.BackendWhisper, Quantity{AudioSeconds: 60}, 0.006},
		{constants.BackendAssemblyAI, Quantity{AudioSeconds: 3600}, 60 * 0.0062},
		{constants.BackendGoogle, Quantity{Characters: 1_000_000}, 20},
		{constants.BackendOpenAI, Quantity{Tokens: 1_000_000}, 0.75},
		{constants.BackendDeepSeek, Quantity{Tokens: 1_000_000}, 0.27},
		{"unknown", Quantity{Tokens: 1000}, 0},
	}
	for _, tc := range cases {
		if got := Cost(tc.backend, tc.q); !almostEqual(got, tc.want) {
			t.Errorf("Cost(%s, %+v) = %f, want %f", tc.backend, tc.q, got, tc.want)
		}
	}
}
